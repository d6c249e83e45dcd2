package dbmysql

import "time"

type Mentor struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID   uint64  `gorm:"column:account_id;not null;index" json:"account_id"`
	DisplayName string  `gorm:"column:display_name;size:120;not null" json:"display_name"`
	AvatarURL   string  `gorm:"column:avatar_url;size:255" json:"avatar_url"`
	Available   bool    `gorm:"column:available;not null;default:false" json:"available"`
	Expertise   TagList `gorm:"column:expertise;type:json" json:"expertise"`
	Industries  TagList `gorm:"column:industries;type:json" json:"industries"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
