package common

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret = []byte(os.Getenv("JWT_SECRET"))

// Claims carried in the bearer token issued by the identity collaborator.
type Claims struct {
	AccountID uint64 `json:"account_id"`
	Role      string `json:"role"`
	MentorID  uint64 `json:"mentor_id,omitempty"`
	StartupID uint64 `json:"startup_id,omitempty"`
	jwt.RegisteredClaims
}

func GenerateToken(accountID uint64, role Role, mentorID, startupID uint64) (string, error) {
	claims := &Claims{
		AccountID: accountID,
		Role:      string(role),
		MentorID:  mentorID,
		StartupID: startupID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "venturelink",
			Subject:   "session",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidToken parses and verifies a bearer token. Expiry is enforced here, at
// the boundary, so business logic never re-checks it.
func ValidToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
