package repository

import (
	"coursebot/internal/domain"
)

// ExpectationRepository defines payment expectation operations.
// Every method is atomic per user id.
type ExpectationRepository interface {
	Set(userID int64, exp domain.Expectation)
	Get(userID int64) (domain.Expectation, bool)
	Take(userID int64) (domain.Expectation, bool)
	Delete(userID int64)
}

// TrailRepository defines message trail operations.
// Every method is atomic per user id.
type TrailRepository interface {
	RecordMain(userID int64, messageID int)
	AppendSub(userID int64, messageID int)
	Get(userID int64) (domain.Trail, bool)
	// TakeAll removes the entry and returns main + sub ids
	TakeAll(userID int64) []int
	// TakeSub empties the sub list, keeping main, and returns the removed ids
	TakeSub(userID int64) []int
}
