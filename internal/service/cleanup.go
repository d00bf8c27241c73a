package service

import (
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
)

// CleanupReport summarizes a best-effort deletion batch
type CleanupReport struct {
	Attempted int
	Failed    int
	// Err combines every per-message failure; it is informational only
	Err error
}

// deleteBestEffort calls del once for every id, concurrently.
// A failing id never stops the others; failures are collected, not returned.
func deleteBestEffort(ids []int, del func(messageID int) error) CleanupReport {
	report := CleanupReport{Attempted: len(ids)}
	if len(ids) == 0 {
		return report
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, id := range ids {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if err := del(id); err != nil {
				mu.Lock()
				report.Failed++
				report.Err = multierr.Append(report.Err, errors.Wrapf(err, "delete message %d", id))
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	return report
}
