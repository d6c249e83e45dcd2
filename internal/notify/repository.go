package notify

import (
	"context"
	"time"

	"gorm.io/gorm"

	"venturelink/internal/dbmysql"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *dbmysql.Notification) error
	ListForAccount(ctx context.Context, accountID uint64, limit int) ([]*dbmysql.Notification, error)
	MarkRead(ctx context.Context, id, accountID uint64) error
	UnreadCount(ctx context.Context, accountID uint64) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *dbmysql.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepository) ListForAccount(ctx context.Context, accountID uint64, limit int) ([]*dbmysql.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	var notifications []*dbmysql.Notification
	err := r.db.WithContext(ctx).
		Where("recipient_account_id = ?", accountID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, accountID uint64) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&dbmysql.Notification{}).
		Where("id = ? AND recipient_account_id = ?", id, accountID).
		Update("read_at", &now).Error
}

func (r *notificationRepository) UnreadCount(ctx context.Context, accountID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Notification{}).
		Where("recipient_account_id = ? AND read_at IS NULL", accountID).
		Count(&count).Error
	return count, err
}
