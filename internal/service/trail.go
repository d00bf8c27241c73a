package service

import (
	"coursebot/internal/repository"

	"go.uber.org/zap"
)

// TrailService tracks the bot's own flow messages per user and deletes them on re-entry.
// Users are addressed in their private chat, so chat id equals user id.
type TrailService struct {
	trailRepo repository.TrailRepository
	messenger Messenger
	logger    *zap.Logger
}

// NewTrailService creates a new trail service
func NewTrailService(trailRepo repository.TrailRepository, messenger Messenger, logger *zap.Logger) *TrailService {
	return &TrailService{
		trailRepo: trailRepo,
		messenger: messenger,
		logger:    logger,
	}
}

// RecordMain starts a new trail with the currency menu message
func (s *TrailService) RecordMain(userID int64, messageID int) {
	s.trailRepo.RecordMain(userID, messageID)
}

// AppendSub tracks a message sent deeper in the flow
func (s *TrailService) AppendSub(userID int64, messageID int) {
	s.trailRepo.AppendSub(userID, messageID)
}

// CleanupAll deletes every tracked message and forgets the trail
func (s *TrailService) CleanupAll(userID int64) CleanupReport {
	return s.cleanup(userID, "all", s.trailRepo.TakeAll(userID))
}

// CleanupSub deletes the sub-menu messages, keeping the currency menu
func (s *TrailService) CleanupSub(userID int64) CleanupReport {
	return s.cleanup(userID, "sub", s.trailRepo.TakeSub(userID))
}

func (s *TrailService) cleanup(userID int64, scope string, ids []int) CleanupReport {
	report := deleteBestEffort(ids, func(messageID int) error {
		return s.messenger.Delete(userID, messageID)
	})

	if report.Failed > 0 {
		// Already deleted or too old to delete; nothing to do about it
		s.logger.Debug("Some trail messages were not deleted",
			zap.Int64("user_id", userID),
			zap.String("scope", scope),
			zap.Int("attempted", report.Attempted),
			zap.Int("failed", report.Failed),
			zap.Error(report.Err),
		)
	}
	return report
}
