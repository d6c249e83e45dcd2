package conversation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"venturelink/internal/common"
	"venturelink/internal/dbmongo"
	"venturelink/internal/dbmysql"
)

const (
	defaultFetchLimit = 100
	maxFetchLimit     = 500
)

// ArchiveStore persists immutable transcripts of ended conversations.
type ArchiveStore interface {
	Save(ctx context.Context, archive *dbmongo.ConversationArchive) (string, error)
}

type Service interface {
	Send(ctx context.Context, session *common.Session, startupID uint64, body, clientMsgID string) (*dbmysql.Message, error)
	Fetch(ctx context.Context, session *common.Session, startupID uint64, since time.Time, afterID uint64, limit int) ([]*dbmysql.Message, error)
	Archive(ctx context.Context, startupID, mentorID, requestID uint64) error
}

type conversationService struct {
	messages  MessageRepository
	approvals ApprovalSource
	router    *Router
	archives  ArchiveStore
	locks     *common.PairLocks
	publisher common.Subject
	logger    *zap.Logger
}

func NewService(
	messages MessageRepository,
	approvals ApprovalSource,
	router *Router,
	archives ArchiveStore,
	locks *common.PairLocks,
	publisher common.Subject,
	logger *zap.Logger,
) Service {
	return &conversationService{
		messages:  messages,
		approvals: approvals,
		router:    router,
		archives:  archives,
		locks:     locks,
		publisher: publisher,
		logger:    logger,
	}
}

// keyFor resolves the conversation key the caller may address. A mentor
// addresses any startup on its roster; a startup addresses only its own
// effective conversation.
func (s *conversationService) keyFor(ctx context.Context, session *common.Session, startupID uint64) (Key, error) {
	switch {
	case session.IsMentor():
		return Key{StartupID: startupID, MentorID: session.MentorID}, nil
	case session.IsStartup():
		if session.StartupID != startupID {
			return Key{}, common.ErrForbidden
		}
		resolved, err := s.router.ResolveConversation(ctx, startupID)
		if err != nil {
			return Key{}, err
		}
		if resolved == nil {
			return Key{}, common.ErrConversationNotApproved
		}
		return resolved.Key, nil
	default:
		return Key{}, common.ErrForbidden
	}
}

// Send appends one message. The write is committed before returning, so a
// successful send is immediately visible to every participant's fetch. A
// retried send with the same client message id returns the stored message
// instead of appending twice.
func (s *conversationService) Send(ctx context.Context, session *common.Session, startupID uint64, body, clientMsgID string) (*dbmysql.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, common.ErrEmptyBody
	}

	key, err := s.keyFor(ctx, session, startupID)
	if err != nil {
		return nil, err
	}

	approved, err := s.approvals.HasApprovedForPair(ctx, key.StartupID, key.MentorID)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, common.ErrConversationNotApproved
	}

	if clientMsgID != "" {
		existing, err := s.messages.FindByClientMsgID(ctx, clientMsgID)
		if err == nil {
			if existing.StartupID != key.StartupID || existing.MentorID != key.MentorID {
				return nil, common.ErrForbidden
			}
			return existing, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else {
		clientMsgID = uuid.NewString()
	}

	unlock := s.locks.Lock(key.StartupID, key.MentorID)
	defer unlock()

	msg := &dbmysql.Message{
		StartupID:   key.StartupID,
		MentorID:    key.MentorID,
		SenderRole:  string(session.Role),
		Body:        body,
		ClientMsgID: clientMsgID,
		SentAt:      time.Now().UTC(),
	}
	if err := s.messages.Save(ctx, msg); err != nil {
		return nil, err
	}

	s.publisher.NotifyAsync(common.Event{
		Type:       common.EventMessageSent,
		StartupID:  key.StartupID,
		MentorID:   key.MentorID,
		MessageID:  msg.ID,
		ActorRole:  session.Role,
		Header:     "New message",
		Content:    body,
		OccurredAt: msg.SentAt,
	})
	return msg, nil
}

// Fetch is a pure read: it may be abandoned at any time and repeated calls
// with no intervening send return identical sequences.
func (s *conversationService) Fetch(ctx context.Context, session *common.Session, startupID uint64, since time.Time, afterID uint64, limit int) ([]*dbmysql.Message, error) {
	key, err := s.keyFor(ctx, session, startupID)
	if err != nil {
		return nil, err
	}

	approved, err := s.approvals.HasApprovedForPair(ctx, key.StartupID, key.MentorID)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, common.ErrConversationNotApproved
	}

	if limit <= 0 || limit > maxFetchLimit {
		limit = defaultFetchLimit
	}
	return s.messages.List(ctx, key, since, afterID, limit)
}

// Archive copies the full transcript into the archive store. Called before a
// revocation flips the request status, so history survives the revoke.
func (s *conversationService) Archive(ctx context.Context, startupID, mentorID, requestID uint64) error {
	key := Key{StartupID: startupID, MentorID: mentorID}
	msgs, err := s.messages.ListAll(ctx, key)
	if err != nil {
		return err
	}

	archived := make([]dbmongo.ArchivedMessage, 0, len(msgs))
	for _, m := range msgs {
		archived = append(archived, dbmongo.ArchivedMessage{
			MessageID:  m.ID,
			SenderRole: m.SenderRole,
			Body:       m.Body,
			SentAt:     m.SentAt,
		})
	}

	id, err := s.archives.Save(ctx, &dbmongo.ConversationArchive{
		StartupID: startupID,
		MentorID:  mentorID,
		RequestID: requestID,
		Messages:  archived,
	})
	if err != nil {
		return err
	}

	s.logger.Info("conversation archived",
		zap.String("archive_id", id),
		zap.Uint64("startup_id", startupID),
		zap.Uint64("mentor_id", mentorID),
		zap.Int("messages", len(archived)),
	)
	return nil
}
