package request

import (
	"context"
	"time"

	"gorm.io/gorm"

	"venturelink/internal/dbmysql"
)

type Repository interface {
	Create(ctx context.Context, req *dbmysql.MentorshipRequest) error
	GetByID(ctx context.Context, id uint64) (*dbmysql.MentorshipRequest, error)
	Update(ctx context.Context, req *dbmysql.MentorshipRequest) error
	HasActiveForPair(ctx context.Context, startupID, mentorID uint64) (bool, error)
	HasApprovedForPair(ctx context.Context, startupID, mentorID uint64) (bool, error)
	ListForMentor(ctx context.Context, mentorID uint64, status string) ([]*dbmysql.MentorshipRequest, error)
	ListForStartup(ctx context.Context, startupID uint64, status string) ([]*dbmysql.MentorshipRequest, error)
	LatestApprovedForStartup(ctx context.Context, startupID uint64) (*dbmysql.MentorshipRequest, error)
	ListApprovedForMentor(ctx context.Context, mentorID uint64) ([]*dbmysql.MentorshipRequest, error)
	CountForMentorSince(ctx context.Context, mentorID uint64, since time.Time) (int64, error)
	CountForMentorByStatus(ctx context.Context, mentorID uint64, status string) (int64, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *dbmysql.MentorshipRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *requestRepository) GetByID(ctx context.Context, id uint64) (*dbmysql.MentorshipRequest, error) {
	var req dbmysql.MentorshipRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) Update(ctx context.Context, req *dbmysql.MentorshipRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

// HasActiveForPair reports whether a pending or approved request already
// exists for the pair; at most one may be active at a time.
func (r *requestRepository) HasActiveForPair(ctx context.Context, startupID, mentorID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.MentorshipRequest{}).
		Where("startup_id = ? AND mentor_id = ? AND status IN ?",
			startupID, mentorID, []string{dbmysql.RequestPending, dbmysql.RequestApproved}).
		Count(&count).Error
	return count > 0, err
}

func (r *requestRepository) HasApprovedForPair(ctx context.Context, startupID, mentorID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.MentorshipRequest{}).
		Where("startup_id = ? AND mentor_id = ? AND status = ?",
			startupID, mentorID, dbmysql.RequestApproved).
		Count(&count).Error
	return count > 0, err
}

// Reviewers triage newest first, so queue listings order by creation time
// descending with id as the tiebreak.
func (r *requestRepository) ListForMentor(ctx context.Context, mentorID uint64, status string) ([]*dbmysql.MentorshipRequest, error) {
	q := r.db.WithContext(ctx).Where("mentor_id = ?", mentorID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var requests []*dbmysql.MentorshipRequest
	err := q.Order("created_at DESC").Order("id DESC").Find(&requests).Error
	return requests, err
}

func (r *requestRepository) ListForStartup(ctx context.Context, startupID uint64, status string) ([]*dbmysql.MentorshipRequest, error) {
	q := r.db.WithContext(ctx).Where("startup_id = ?", startupID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var requests []*dbmysql.MentorshipRequest
	err := q.Order("created_at DESC").Order("id DESC").Find(&requests).Error
	return requests, err
}

// LatestApprovedForStartup backs the "last approved wins" conversation rule:
// most recent decision first, id as the tiebreak.
func (r *requestRepository) LatestApprovedForStartup(ctx context.Context, startupID uint64) (*dbmysql.MentorshipRequest, error) {
	var req dbmysql.MentorshipRequest
	err := r.db.WithContext(ctx).
		Where("startup_id = ? AND status = ?", startupID, dbmysql.RequestApproved).
		Order("decided_at DESC").Order("id DESC").
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) ListApprovedForMentor(ctx context.Context, mentorID uint64) ([]*dbmysql.MentorshipRequest, error) {
	var requests []*dbmysql.MentorshipRequest
	err := r.db.WithContext(ctx).
		Where("mentor_id = ? AND status = ?", mentorID, dbmysql.RequestApproved).
		Order("decided_at DESC").Order("id DESC").
		Find(&requests).Error
	return requests, err
}

func (r *requestRepository) CountForMentorSince(ctx context.Context, mentorID uint64, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.MentorshipRequest{}).
		Where("mentor_id = ? AND created_at >= ?", mentorID, since).
		Count(&count).Error
	return count, err
}

func (r *requestRepository) CountForMentorByStatus(ctx context.Context, mentorID uint64, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.MentorshipRequest{}).
		Where("mentor_id = ? AND status = ?", mentorID, status).
		Count(&count).Error
	return count, err
}
