package memory

import (
	"sync"

	"coursebot/internal/domain"
)

// ExpectationRepo implements repository.ExpectationRepository in process memory
type ExpectationRepo struct {
	mu    sync.Mutex
	items map[int64]domain.Expectation
}

// NewExpectationRepo creates an empty expectation store
func NewExpectationRepo() *ExpectationRepo {
	return &ExpectationRepo{items: make(map[int64]domain.Expectation)}
}

// Set stores the expectation, replacing any previous one
func (r *ExpectationRepo) Set(userID int64, exp domain.Expectation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp.UserID = userID
	r.items[userID] = exp
}

// Get returns the current expectation of the user
func (r *ExpectationRepo) Get(userID int64) (domain.Expectation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.items[userID]
	return exp, ok
}

// Take returns and removes the expectation in one step
func (r *ExpectationRepo) Take(userID int64) (domain.Expectation, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	exp, ok := r.items[userID]
	if ok {
		delete(r.items, userID)
	}
	return exp, ok
}

// Delete removes the expectation; missing entries are ignored
func (r *ExpectationRepo) Delete(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, userID)
}
