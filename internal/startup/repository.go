package startup

import (
	"context"

	"gorm.io/gorm"

	"venturelink/internal/dbmysql"
)

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*dbmysql.Startup, error)
	GetByAccountID(ctx context.Context, accountID uint64) (*dbmysql.Startup, error)
	ListByIDs(ctx context.Context, ids []uint64) ([]*dbmysql.Startup, error)
	Create(ctx context.Context, s *dbmysql.Startup) error
}

type startupRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &startupRepository{db: db}
}

func (r *startupRepository) GetByID(ctx context.Context, id uint64) (*dbmysql.Startup, error) {
	var s dbmysql.Startup
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *startupRepository) GetByAccountID(ctx context.Context, accountID uint64) (*dbmysql.Startup, error) {
	var s dbmysql.Startup
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *startupRepository) ListByIDs(ctx context.Context, ids []uint64) ([]*dbmysql.Startup, error) {
	if len(ids) == 0 {
		return []*dbmysql.Startup{}, nil
	}
	var startups []*dbmysql.Startup
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&startups).Error
	return startups, err
}

func (r *startupRepository) Create(ctx context.Context, s *dbmysql.Startup) error {
	return r.db.WithContext(ctx).Create(s).Error
}
