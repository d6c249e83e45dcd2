package identity

import (
	"context"

	"gorm.io/gorm"

	"venturelink/internal/dbmysql"
)

type AccountRepository interface {
	Create(ctx context.Context, account *dbmysql.Account) error
	GetByEmail(ctx context.Context, email string) (*dbmysql.Account, error)
	GetByID(ctx context.Context, id uint64) (*dbmysql.Account, error)
	FindByMentorID(ctx context.Context, mentorID uint64) (*dbmysql.Account, error)
	FindByStartupID(ctx context.Context, startupID uint64) (*dbmysql.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *dbmysql.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*dbmysql.Account, error) {
	var account dbmysql.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id uint64) (*dbmysql.Account, error) {
	var account dbmysql.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByMentorID(ctx context.Context, mentorID uint64) (*dbmysql.Account, error) {
	var account dbmysql.Account
	if err := r.db.WithContext(ctx).Where("mentor_id = ?", mentorID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByStartupID(ctx context.Context, startupID uint64) (*dbmysql.Account, error) {
	var account dbmysql.Account
	if err := r.db.WithContext(ctx).Where("startup_id = ?", startupID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
