package dbmysql

import "time"

// Request lifecycle. Transitions are monotonic: pending goes to approved or
// declined exactly once; revoked is only reachable from approved. A new
// decision needs a new request record.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestDeclined = "declined"
	RequestRevoked  = "revoked"
)

type MentorshipRequest struct {
	ID        uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	StartupID uint64     `gorm:"column:startup_id;not null;index:idx_pair" json:"startup_id"`
	MentorID  uint64     `gorm:"column:mentor_id;not null;index:idx_pair;index:idx_mentor_status" json:"mentor_id"`
	Status    string     `gorm:"column:status;type:enum('pending','approved','declined','revoked');default:'pending';index:idx_mentor_status" json:"status"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DecidedAt *time.Time `gorm:"column:decided_at" json:"decided_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Startup *Startup `gorm:"-" json:"startup,omitempty"`
	Mentor  *Mentor  `gorm:"-" json:"mentor,omitempty"`
}
