package mentor

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"venturelink/internal/activity"
	"venturelink/internal/common"
	"venturelink/internal/dbmysql"
)

// RequestLister is the slice of the request queue the mentor dashboard reads.
type RequestLister interface {
	ListForMentor(ctx context.Context, mentorID uint64, status string) ([]*dbmysql.MentorshipRequest, error)
}

// Overview is the mentor dashboard payload.
type Overview struct {
	Available      bool                         `json:"available"`
	Stats          activity.Summary             `json:"stats"`
	RecentRequests []*dbmysql.MentorshipRequest `json:"recent_requests"`
}

type Service interface {
	GetAvailability(ctx context.Context, mentorID uint64) (bool, error)
	ToggleAvailability(ctx context.Context, session *common.Session) (bool, error)
	GetOverview(ctx context.Context, session *common.Session) (*Overview, error)
	GetProfile(ctx context.Context, mentorID uint64) (*dbmysql.Mentor, error)
}

type mentorService struct {
	repo       Repository
	requests   RequestLister
	aggregator *activity.Aggregator
}

func NewService(repo Repository, requests RequestLister, aggregator *activity.Aggregator) Service {
	return &mentorService{repo: repo, requests: requests, aggregator: aggregator}
}

func (s *mentorService) GetAvailability(ctx context.Context, mentorID uint64) (bool, error) {
	m, err := s.repo.GetByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, common.ErrNotFound
		}
		return false, err
	}
	return m.Available, nil
}

// ToggleAvailability flips the flag and returns the new state. Flipping to
// false only blocks new request creation; approved conversations stay open.
func (s *mentorService) ToggleAvailability(ctx context.Context, session *common.Session) (bool, error) {
	if !session.IsMentor() {
		return false, common.ErrForbidden
	}

	m, err := s.repo.GetByID(ctx, session.MentorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, common.ErrNotFound
		}
		return false, err
	}

	next := !m.Available
	if err := s.repo.SetAvailability(ctx, m.ID, next); err != nil {
		return false, err
	}
	return next, nil
}

func (s *mentorService) GetOverview(ctx context.Context, session *common.Session) (*Overview, error) {
	if !session.IsMentor() {
		return nil, common.ErrForbidden
	}

	m, err := s.repo.GetByID(ctx, session.MentorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	recent, err := s.requests.ListForMentor(ctx, m.ID, dbmysql.RequestPending)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Available:      m.Available,
		Stats:          s.aggregator.Summary(ctx, m.ID, 7*24*time.Hour),
		RecentRequests: recent,
	}, nil
}

func (s *mentorService) GetProfile(ctx context.Context, mentorID uint64) (*dbmysql.Mentor, error) {
	m, err := s.repo.GetByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}
