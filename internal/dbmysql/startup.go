package dbmysql

import "time"

type Startup struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID   uint64 `gorm:"column:account_id;not null;index" json:"account_id"`
	DisplayName string `gorm:"column:display_name;size:120;not null" json:"display_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
