package memory

import (
	"sync"
	"testing"

	"coursebot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestExpectationRepo_SetOverwrites(t *testing.T) {
	repo := NewExpectationRepo()

	repo.Set(1, domain.Expectation{AdminID: 10, CourseID: "express"})
	repo.Set(1, domain.Expectation{AdminID: 20, CourseID: "author_premium"})

	exp, ok := repo.Get(1)
	assert.True(t, ok)
	assert.Equal(t, domain.Expectation{UserID: 1, AdminID: 20, CourseID: "author_premium"}, exp)
}

func TestExpectationRepo_Take(t *testing.T) {
	repo := NewExpectationRepo()
	repo.Set(1, domain.Expectation{AdminID: 10, CourseID: "express"})

	exp, ok := repo.Take(1)
	assert.True(t, ok)
	assert.Equal(t, int64(10), exp.AdminID)

	_, ok = repo.Take(1)
	assert.False(t, ok)
	_, ok = repo.Get(1)
	assert.False(t, ok)
}

func TestExpectationRepo_DeleteMissing(t *testing.T) {
	repo := NewExpectationRepo()

	assert.NotPanics(t, func() { repo.Delete(42) })

	_, ok := repo.Get(42)
	assert.False(t, ok)
}

func TestExpectationRepo_ConcurrentTakeOnce(t *testing.T) {
	repo := NewExpectationRepo()
	repo.Set(1, domain.Expectation{AdminID: 10})

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		taken int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := repo.Take(1); ok {
				mu.Lock()
				taken++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, taken)
}
