package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"venturelink/internal/common"
	"venturelink/internal/dbmysql"
)

// AccountDirectory resolves event parties to notification recipients.
type AccountDirectory interface {
	FindByMentorID(ctx context.Context, mentorID uint64) (*dbmysql.Account, error)
	FindByStartupID(ctx context.Context, startupID uint64) (*dbmysql.Account, error)
}

// DatabaseObserver persists one notification row per event for the recipient
// party, for the dashboard bell to read.
type DatabaseObserver struct {
	repo     NotificationRepository
	accounts AccountDirectory
}

func NewDatabaseObserver(repo NotificationRepository, accounts AccountDirectory) *DatabaseObserver {
	return &DatabaseObserver{repo: repo, accounts: accounts}
}

func (d *DatabaseObserver) Name() string {
	return "database_observer"
}

func (d *DatabaseObserver) Update(event common.Event) error {
	ctx := context.Background()

	recipient, err := d.recipient(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to resolve recipient: %w", err)
	}

	notification := &dbmysql.Notification{
		RecipientAccountID: recipient,
		EventType:          string(event.Type),
		Header:             event.Header,
		Content:            event.Content,
	}
	if err := d.repo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

// recipient picks the party on the other side of the action.
func (d *DatabaseObserver) recipient(ctx context.Context, event common.Event) (uint64, error) {
	mentorSide := func() (uint64, error) {
		acc, err := d.accounts.FindByMentorID(ctx, event.MentorID)
		if err != nil {
			return 0, err
		}
		return acc.ID, nil
	}
	startupSide := func() (uint64, error) {
		acc, err := d.accounts.FindByStartupID(ctx, event.StartupID)
		if err != nil {
			return 0, err
		}
		return acc.ID, nil
	}

	switch event.Type {
	case common.EventRequestCreated:
		return mentorSide()
	case common.EventRequestApproved, common.EventRequestDeclined, common.EventRequestRevoked:
		return startupSide()
	case common.EventMessageSent:
		if event.ActorRole == common.RoleMentor {
			return startupSide()
		}
		return mentorSide()
	default:
		return 0, fmt.Errorf("unknown event type %q", event.Type)
	}
}

// LogObserver mirrors every event into the structured log.
type LogObserver struct {
	logger *zap.Logger
}

func NewLogObserver(logger *zap.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (l *LogObserver) Name() string {
	return "log_observer"
}

func (l *LogObserver) Update(event common.Event) error {
	l.logger.Info("event",
		zap.String("type", string(event.Type)),
		zap.Uint64("startup_id", event.StartupID),
		zap.Uint64("mentor_id", event.MentorID),
		zap.Uint64("request_id", event.RequestID),
		zap.Uint64("message_id", event.MessageID),
	)
	return nil
}
