package dbmysql

import "time"

type Notification struct {
	ID                 uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipientAccountID uint64     `gorm:"column:recipient_account_id;not null;index" json:"recipient_account_id"`
	EventType          string     `gorm:"column:event_type;size:40;not null" json:"event_type"`
	Header             string     `gorm:"column:header;size:200" json:"header"`
	Content            string     `gorm:"column:content;type:text" json:"content"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ReadAt             *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
}
