package mentor

import (
	"context"

	"gorm.io/gorm"

	"venturelink/internal/dbmysql"
)

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*dbmysql.Mentor, error)
	GetByAccountID(ctx context.Context, accountID uint64) (*dbmysql.Mentor, error)
	ListByIDs(ctx context.Context, ids []uint64) ([]*dbmysql.Mentor, error)
	SetAvailability(ctx context.Context, id uint64, available bool) error
	Create(ctx context.Context, m *dbmysql.Mentor) error
}

type mentorRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &mentorRepository{db: db}
}

func (r *mentorRepository) GetByID(ctx context.Context, id uint64) (*dbmysql.Mentor, error) {
	var m dbmysql.Mentor
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mentorRepository) GetByAccountID(ctx context.Context, accountID uint64) (*dbmysql.Mentor, error) {
	var m dbmysql.Mentor
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mentorRepository) ListByIDs(ctx context.Context, ids []uint64) ([]*dbmysql.Mentor, error) {
	if len(ids) == 0 {
		return []*dbmysql.Mentor{}, nil
	}
	var mentors []*dbmysql.Mentor
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&mentors).Error
	return mentors, err
}

func (r *mentorRepository) SetAvailability(ctx context.Context, id uint64, available bool) error {
	result := r.db.WithContext(ctx).
		Model(&dbmysql.Mentor{}).
		Where("id = ?", id).
		Update("available", available)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *mentorRepository) Create(ctx context.Context, m *dbmysql.Mentor) error {
	return r.db.WithContext(ctx).Create(m).Error
}
