package conversation

import (
	"context"
	"time"

	"gorm.io/gorm"

	"venturelink/internal/dbmysql"
)

// Key addresses one conversation. A conversation has no identity beyond the
// approved (startup, mentor) pair.
type Key struct {
	StartupID uint64 `json:"startup_id"`
	MentorID  uint64 `json:"mentor_id"`
}

type MessageRepository interface {
	Save(ctx context.Context, msg *dbmysql.Message) error
	FindByClientMsgID(ctx context.Context, clientMsgID string) (*dbmysql.Message, error)
	List(ctx context.Context, key Key, since time.Time, afterID uint64, limit int) ([]*dbmysql.Message, error)
	ListAll(ctx context.Context, key Key) ([]*dbmysql.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Save(ctx context.Context, msg *dbmysql.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) FindByClientMsgID(ctx context.Context, clientMsgID string) (*dbmysql.Message, error) {
	var msg dbmysql.Message
	if err := r.db.WithContext(ctx).Where("client_msg_id = ?", clientMsgID).First(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// List pages by a (sent_at, id) cursor rather than an offset, so concurrent
// sends never shift a page boundary. Results ascend by (sent_at, id), which
// is the conversation's total order.
func (r *messageRepository) List(ctx context.Context, key Key, since time.Time, afterID uint64, limit int) ([]*dbmysql.Message, error) {
	q := r.db.WithContext(ctx).
		Where("startup_id = ? AND mentor_id = ?", key.StartupID, key.MentorID)
	if !since.IsZero() {
		q = q.Where("sent_at > ? OR (sent_at = ? AND id > ?)", since, since, afterID)
	}

	var messages []*dbmysql.Message
	err := q.Order("sent_at ASC").Order("id ASC").Limit(limit).Find(&messages).Error
	return messages, err
}

func (r *messageRepository) ListAll(ctx context.Context, key Key) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message
	err := r.db.WithContext(ctx).
		Where("startup_id = ? AND mentor_id = ?", key.StartupID, key.MentorID).
		Order("sent_at ASC").Order("id ASC").
		Find(&messages).Error
	return messages, err
}
