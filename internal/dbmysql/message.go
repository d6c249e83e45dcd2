package dbmysql

import "time"

// Message rows are immutable once created. Total order within a conversation
// is (sent_at, id); the auto-increment id breaks timestamp ties.
type Message struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	StartupID   uint64    `gorm:"column:startup_id;not null;index:idx_conversation" json:"startup_id"`
	MentorID    uint64    `gorm:"column:mentor_id;not null;index:idx_conversation" json:"mentor_id"`
	SenderRole  string    `gorm:"column:sender_role;type:enum('mentor','startup');not null" json:"sender_role"`
	Body        string    `gorm:"column:body;type:text;not null" json:"body"`
	ClientMsgID string    `gorm:"column:client_msg_id;size:36;uniqueIndex" json:"client_msg_id"`
	SentAt      time.Time `gorm:"column:sent_at;not null;index:idx_conversation" json:"sent_at"`
	CreatedAt   time.Time `json:"created_at"`
}
