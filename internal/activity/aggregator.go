package activity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"venturelink/internal/dbmysql"
)

// RequestCounter is the read-only slice of the request queue the aggregator
// consumes.
type RequestCounter interface {
	CountForMentorSince(ctx context.Context, mentorID uint64, since time.Time) (int64, error)
	CountForMentorByStatus(ctx context.Context, mentorID uint64, status string) (int64, error)
}

type MentorReader interface {
	GetByID(ctx context.Context, id uint64) (*dbmysql.Mentor, error)
}

// Summary holds the dashboard rollups. It carries no state of its own and is
// recomputed on demand.
type Summary struct {
	NewRequests       int64 `json:"new_requests"`
	ActiveMentorships int64 `json:"active"`
	Industries        int   `json:"industries"`
	Expertise         int   `json:"expertise"`
}

type Aggregator struct {
	requests RequestCounter
	mentors  MentorReader
	logger   *zap.Logger
}

func NewAggregator(requests RequestCounter, mentors MentorReader, logger *zap.Logger) *Aggregator {
	return &Aggregator{requests: requests, mentors: mentors, logger: logger}
}

// Summary rolls up activity for one mentor. A failed underlying read degrades
// the affected counts to zero instead of failing the dashboard.
func (a *Aggregator) Summary(ctx context.Context, mentorID uint64, window time.Duration) Summary {
	var out Summary

	newRequests, err := a.requests.CountForMentorSince(ctx, mentorID, time.Now().Add(-window))
	if err != nil {
		a.logger.Warn("new request count unavailable", zap.Uint64("mentor_id", mentorID), zap.Error(err))
	} else {
		out.NewRequests = newRequests
	}

	active, err := a.requests.CountForMentorByStatus(ctx, mentorID, dbmysql.RequestApproved)
	if err != nil {
		a.logger.Warn("active mentorship count unavailable", zap.Uint64("mentor_id", mentorID), zap.Error(err))
	} else {
		out.ActiveMentorships = active
	}

	m, err := a.mentors.GetByID(ctx, mentorID)
	if err != nil {
		a.logger.Warn("mentor profile unavailable", zap.Uint64("mentor_id", mentorID), zap.Error(err))
		return out
	}
	out.Industries = distinct(m.Industries)
	out.Expertise = distinct(m.Expertise)
	return out
}

func distinct(tags dbmysql.TagList) int {
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		seen[tag] = struct{}{}
	}
	return len(seen)
}
