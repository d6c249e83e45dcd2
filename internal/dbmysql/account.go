package dbmysql

import "time"

// Account backs the identity collaborator. The core trusts the session built
// from it and never touches credentials outside internal/identity.
type Account struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;size:255;not null" json:"-"`
	Role         string `gorm:"column:role;type:enum('mentor','startup');not null" json:"role"`
	MentorID     uint64 `gorm:"column:mentor_id;index" json:"mentor_id,omitempty"`
	StartupID    uint64 `gorm:"column:startup_id;index" json:"startup_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
