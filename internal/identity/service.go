package identity

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"venturelink/internal/common"
	"venturelink/internal/dbmysql"
)

// Service issues the bearer credential the core consumes. Everything past
// this boundary trusts the parsed session; no credential logic leaks into
// business packages.
type Service interface {
	Login(ctx context.Context, email, password string) (string, *dbmysql.Account, error)
}

type identityService struct {
	accounts AccountRepository
}

func NewService(accounts AccountRepository) Service {
	return &identityService{accounts: accounts}
}

func (s *identityService) Login(ctx context.Context, email, password string) (string, *dbmysql.Account, error) {
	if email == "" || password == "" {
		return "", nil, common.ErrUnauthenticated
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, common.ErrUnauthenticated
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, common.ErrUnauthenticated
	}

	token, err := common.GenerateToken(account.ID, common.Role(account.Role), account.MentorID, account.StartupID)
	if err != nil {
		return "", nil, err
	}
	return token, account, nil
}

// HashPassword is used by the migrate/seed tooling when creating accounts.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
