package service

import (
	"context"

	"video_studio/internal/models"
	"video_studio/internal/repository"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

// ActivityService exposes the caller's recent audit entries.
type ActivityService struct {
	activity repository.Activity
}

func NewActivityService(activity repository.Activity) *ActivityService {
	return &ActivityService{activity: activity}
}

func (s *ActivityService) Recent(ctx context.Context, userID string, limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	return s.activity.ListRecent(ctx, userID, limit)
}
