package memory

import (
	"sync"

	"coursebot/internal/domain"
)

// TrailRepo implements repository.TrailRepository in process memory
type TrailRepo struct {
	mu     sync.Mutex
	trails map[int64]*domain.Trail
}

// NewTrailRepo creates an empty trail store
func NewTrailRepo() *TrailRepo {
	return &TrailRepo{trails: make(map[int64]*domain.Trail)}
}

// RecordMain starts a fresh trail whose main message is messageID
func (r *TrailRepo) RecordMain(userID int64, messageID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trails[userID] = &domain.Trail{MainMessageID: messageID, HasMain: true}
}

// AppendSub adds a sub-menu message, creating a trail without main if needed
func (r *TrailRepo) AppendSub(userID int64, messageID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trail, ok := r.trails[userID]
	if !ok {
		trail = &domain.Trail{}
		r.trails[userID] = trail
	}
	trail.SubMessageIDs = append(trail.SubMessageIDs, messageID)
}

// Get returns a copy of the user's trail
func (r *TrailRepo) Get(userID int64) (domain.Trail, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trail, ok := r.trails[userID]
	if !ok {
		return domain.Trail{}, false
	}
	cp := *trail
	cp.SubMessageIDs = append([]int(nil), trail.SubMessageIDs...)
	return cp, true
}

// TakeAll removes the trail and returns every tracked message id
func (r *TrailRepo) TakeAll(userID int64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	trail, ok := r.trails[userID]
	if !ok {
		return nil
	}
	delete(r.trails, userID)
	return trail.MessageIDs()
}

// TakeSub clears the sub-menu ids in place and returns them
func (r *TrailRepo) TakeSub(userID int64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	trail, ok := r.trails[userID]
	if !ok {
		return nil
	}
	ids := trail.SubMessageIDs
	trail.SubMessageIDs = nil
	return ids
}
