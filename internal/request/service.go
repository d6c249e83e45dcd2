package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"venturelink/internal/common"
	"venturelink/internal/dbmysql"
)

const (
	OutcomeApprove = "approve"
	OutcomeDecline = "decline"
)

// MentorReader supplies the availability flag gating request creation.
type MentorReader interface {
	GetByID(ctx context.Context, id uint64) (*dbmysql.Mentor, error)
}

// TranscriptArchiver copies a conversation transcript into the archive store
// before its backing approval is revoked.
type TranscriptArchiver interface {
	Archive(ctx context.Context, startupID, mentorID, requestID uint64) error
}

type Service interface {
	Create(ctx context.Context, session *common.Session, mentorID uint64) (*dbmysql.MentorshipRequest, error)
	Decide(ctx context.Context, session *common.Session, requestID uint64, outcome string) (*dbmysql.MentorshipRequest, error)
	Revoke(ctx context.Context, session *common.Session, requestID uint64) (*dbmysql.MentorshipRequest, error)
	ListForMentor(ctx context.Context, session *common.Session, status string) ([]*dbmysql.MentorshipRequest, error)
	ListForStartup(ctx context.Context, session *common.Session, status string) ([]*dbmysql.MentorshipRequest, error)
}

type requestService struct {
	repo      Repository
	mentors   MentorReader
	archiver  TranscriptArchiver
	locks     *common.PairLocks
	publisher common.Subject
	logger    *zap.Logger
}

func NewService(
	repo Repository,
	mentors MentorReader,
	archiver TranscriptArchiver,
	locks *common.PairLocks,
	publisher common.Subject,
	logger *zap.Logger,
) Service {
	return &requestService{
		repo:      repo,
		mentors:   mentors,
		archiver:  archiver,
		locks:     locks,
		publisher: publisher,
		logger:    logger,
	}
}

// Create inserts a new pending request for (session.StartupID, mentorID).
// The availability and duplicate checks run under the pair lock so two
// concurrent creates for the same pair cannot both pass.
func (s *requestService) Create(ctx context.Context, session *common.Session, mentorID uint64) (*dbmysql.MentorshipRequest, error) {
	if !session.IsStartup() {
		return nil, common.ErrForbidden
	}

	m, err := s.mentors.GetByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	unlock := s.locks.Lock(session.StartupID, mentorID)
	defer unlock()

	if !m.Available {
		return nil, common.ErrMentorUnavailable
	}

	active, err := s.repo.HasActiveForPair(ctx, session.StartupID, mentorID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, common.ErrDuplicateActiveRequest
	}

	req := &dbmysql.MentorshipRequest{
		StartupID: session.StartupID,
		MentorID:  mentorID,
		Status:    dbmysql.RequestPending,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.publisher.NotifyAsync(common.Event{
		Type:       common.EventRequestCreated,
		StartupID:  req.StartupID,
		MentorID:   req.MentorID,
		RequestID:  req.ID,
		ActorRole:  common.RoleStartup,
		Header:     "New mentorship request",
		Content:    "A startup has requested your mentorship.",
		OccurredAt: time.Now().UTC(),
	})
	return req, nil
}

// Decide moves a pending request to approved or declined. Approved and
// declined are terminal for Decide; a second call fails rather than
// re-transitioning, so a retried decision is never silently absorbed.
func (s *requestService) Decide(ctx context.Context, session *common.Session, requestID uint64, outcome string) (*dbmysql.MentorshipRequest, error) {
	if outcome != OutcomeApprove && outcome != OutcomeDecline {
		return nil, fmt.Errorf("%w: unknown outcome %q", common.ErrInvalidTransition, outcome)
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	if !session.IsMentor() || req.MentorID != session.MentorID {
		return nil, common.ErrForbidden
	}

	unlock := s.locks.Lock(req.StartupID, req.MentorID)
	defer unlock()

	// Re-read under the lock: a concurrent decision may have landed.
	req, err = s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != dbmysql.RequestPending {
		return nil, common.ErrInvalidTransition
	}

	now := time.Now().UTC()
	req.DecidedAt = &now
	eventType := common.EventRequestApproved
	header := "Mentorship request approved"
	if outcome == OutcomeApprove {
		req.Status = dbmysql.RequestApproved
	} else {
		req.Status = dbmysql.RequestDeclined
		eventType = common.EventRequestDeclined
		header = "Mentorship request declined"
	}

	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	s.publisher.NotifyAsync(common.Event{
		Type:       eventType,
		StartupID:  req.StartupID,
		MentorID:   req.MentorID,
		RequestID:  req.ID,
		ActorRole:  common.RoleMentor,
		Header:     header,
		Content:    "Your mentorship request has been decided.",
		OccurredAt: now,
	})
	return req, nil
}

// Revoke ends an approved mentorship. The transcript is archived first; the
// status only flips once the archive write succeeded, so history is never
// lost.
func (s *requestService) Revoke(ctx context.Context, session *common.Session, requestID uint64) (*dbmysql.MentorshipRequest, error) {
	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	if !session.IsMentor() || req.MentorID != session.MentorID {
		return nil, common.ErrForbidden
	}

	unlock := s.locks.Lock(req.StartupID, req.MentorID)
	defer unlock()

	req, err = s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != dbmysql.RequestApproved {
		return nil, common.ErrInvalidTransition
	}

	if err := s.archiver.Archive(ctx, req.StartupID, req.MentorID, req.ID); err != nil {
		return nil, fmt.Errorf("archive before revoke: %w", err)
	}

	now := time.Now().UTC()
	req.Status = dbmysql.RequestRevoked
	req.DecidedAt = &now
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	s.publisher.NotifyAsync(common.Event{
		Type:       common.EventRequestRevoked,
		StartupID:  req.StartupID,
		MentorID:   req.MentorID,
		RequestID:  req.ID,
		ActorRole:  common.RoleMentor,
		Header:     "Mentorship ended",
		Content:    "The mentorship has been ended; the conversation history was archived.",
		OccurredAt: now,
	})
	return req, nil
}

func (s *requestService) ListForMentor(ctx context.Context, session *common.Session, status string) ([]*dbmysql.MentorshipRequest, error) {
	if !session.IsMentor() {
		return nil, common.ErrForbidden
	}
	return s.repo.ListForMentor(ctx, session.MentorID, status)
}

func (s *requestService) ListForStartup(ctx context.Context, session *common.Session, status string) ([]*dbmysql.MentorshipRequest, error) {
	if !session.IsStartup() {
		return nil, common.ErrForbidden
	}
	return s.repo.ListForStartup(ctx, session.StartupID, status)
}
