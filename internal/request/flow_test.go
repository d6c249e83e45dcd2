package request_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"venturelink/internal/activity"
	"venturelink/internal/common"
	"venturelink/internal/conversation"
	"venturelink/internal/dbmongo"
	"venturelink/internal/dbmysql"
	"venturelink/internal/mentor"
	"venturelink/internal/request"
)

// memStore is a single in-memory backing store shared by every repository
// interface the flow needs, so the test exercises the real services end to
// end without a database.
type memStore struct {
	mu       sync.Mutex
	mentors  map[uint64]*dbmysql.Mentor
	startups map[uint64]*dbmysql.Startup
	requests []*dbmysql.MentorshipRequest
	messages []*dbmysql.Message
	archives []*dbmongo.ConversationArchive

	nextRequestID uint64
	nextMessageID uint64
}

func newMemStore() *memStore {
	return &memStore{
		mentors:       make(map[uint64]*dbmysql.Mentor),
		startups:      make(map[uint64]*dbmysql.Startup),
		nextRequestID: 1,
		nextMessageID: 1,
	}
}

// request.Repository

func (s *memStore) Create(ctx context.Context, req *dbmysql.MentorshipRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	req.ID = s.nextRequestID
	s.nextRequestID++
	req.CreatedAt = time.Now().UTC()
	clone := *req
	s.requests = append(s.requests, &clone)
	return nil
}

func (s *memStore) GetByID(ctx context.Context, id uint64) (*dbmysql.MentorshipRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.ID == id {
			clone := *r
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memStore) Update(ctx context.Context, req *dbmysql.MentorshipRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.requests {
		if r.ID == req.ID {
			clone := *req
			s.requests[i] = &clone
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *memStore) HasActiveForPair(ctx context.Context, startupID, mentorID uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.StartupID == startupID && r.MentorID == mentorID &&
			(r.Status == dbmysql.RequestPending || r.Status == dbmysql.RequestApproved) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) HasApprovedForPair(ctx context.Context, startupID, mentorID uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.StartupID == startupID && r.MentorID == mentorID && r.Status == dbmysql.RequestApproved {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) ListForMentor(ctx context.Context, mentorID uint64, status string) ([]*dbmysql.MentorshipRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*dbmysql.MentorshipRequest
	for _, r := range s.requests {
		if r.MentorID == mentorID && (status == "" || r.Status == status) {
			clone := *r
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *memStore) ListForStartup(ctx context.Context, startupID uint64, status string) ([]*dbmysql.MentorshipRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*dbmysql.MentorshipRequest
	for _, r := range s.requests {
		if r.StartupID == startupID && (status == "" || r.Status == status) {
			clone := *r
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s *memStore) LatestApprovedForStartup(ctx context.Context, startupID uint64) (*dbmysql.MentorshipRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var latest *dbmysql.MentorshipRequest
	for _, r := range s.requests {
		if r.StartupID != startupID || r.Status != dbmysql.RequestApproved {
			continue
		}
		if latest == nil || decidedAfter(r, latest) {
			latest = r
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *latest
	return &clone, nil
}

func decidedAfter(a, b *dbmysql.MentorshipRequest) bool {
	if a.DecidedAt == nil || b.DecidedAt == nil {
		return a.ID > b.ID
	}
	if !a.DecidedAt.Equal(*b.DecidedAt) {
		return a.DecidedAt.After(*b.DecidedAt)
	}
	return a.ID > b.ID
}

func (s *memStore) ListApprovedForMentor(ctx context.Context, mentorID uint64) ([]*dbmysql.MentorshipRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*dbmysql.MentorshipRequest
	for _, r := range s.requests {
		if r.MentorID == mentorID && r.Status == dbmysql.RequestApproved {
			clone := *r
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return decidedAfter(out[i], out[j]) })
	return out, nil
}

func (s *memStore) CountForMentorSince(ctx context.Context, mentorID uint64, since time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, r := range s.requests {
		if r.MentorID == mentorID && !r.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (s *memStore) CountForMentorByStatus(ctx context.Context, mentorID uint64, status string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, r := range s.requests {
		if r.MentorID == mentorID && r.Status == status {
			count++
		}
	}
	return count, nil
}

// mentor.Repository

func (s *memStore) GetMentor(ctx context.Context, id uint64) (*dbmysql.Mentor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mentors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *m
	return &clone, nil
}

func (s *memStore) SetAvailability(ctx context.Context, id uint64, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mentors[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Available = available
	return nil
}

// mentorRepo adapts memStore to the mentor package's full repository surface.
type mentorRepo struct{ store *memStore }

func (r *mentorRepo) GetByID(ctx context.Context, id uint64) (*dbmysql.Mentor, error) {
	return r.store.GetMentor(ctx, id)
}

func (r *mentorRepo) GetByAccountID(ctx context.Context, accountID uint64) (*dbmysql.Mentor, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *mentorRepo) ListByIDs(ctx context.Context, ids []uint64) ([]*dbmysql.Mentor, error) {
	var out []*dbmysql.Mentor
	for _, id := range ids {
		if m, err := r.store.GetMentor(ctx, id); err == nil {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *mentorRepo) SetAvailability(ctx context.Context, id uint64, available bool) error {
	return r.store.SetAvailability(ctx, id, available)
}

func (r *mentorRepo) Create(ctx context.Context, m *dbmysql.Mentor) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.mentors[m.ID] = m
	return nil
}

// startupRepo adapts memStore to conversation.StartupReader.
type startupRepo struct{ store *memStore }

func (r *startupRepo) GetByID(ctx context.Context, id uint64) (*dbmysql.Startup, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s, ok := r.store.startups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *startupRepo) ListByIDs(ctx context.Context, ids []uint64) ([]*dbmysql.Startup, error) {
	var out []*dbmysql.Startup
	for _, id := range ids {
		if s, err := r.GetByID(ctx, id); err == nil {
			out = append(out, s)
		}
	}
	return out, nil
}

// messageRepo adapts memStore to conversation.MessageRepository.
type messageRepo struct{ store *memStore }

func (r *messageRepo) Save(ctx context.Context, msg *dbmysql.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	msg.ID = r.store.nextMessageID
	r.store.nextMessageID++
	clone := *msg
	r.store.messages = append(r.store.messages, &clone)
	return nil
}

func (r *messageRepo) FindByClientMsgID(ctx context.Context, clientMsgID string) (*dbmysql.Message, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, m := range r.store.messages {
		if m.ClientMsgID == clientMsgID {
			clone := *m
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *messageRepo) List(ctx context.Context, key conversation.Key, since time.Time, afterID uint64, limit int) ([]*dbmysql.Message, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*dbmysql.Message
	for _, m := range r.store.messages {
		if m.StartupID != key.StartupID || m.MentorID != key.MentorID {
			continue
		}
		if !since.IsZero() {
			if m.SentAt.Before(since) || (m.SentAt.Equal(since) && m.ID <= afterID) {
				continue
			}
		}
		clone := *m
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SentAt.Equal(out[j].SentAt) {
			return out[i].SentAt.Before(out[j].SentAt)
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *messageRepo) ListAll(ctx context.Context, key conversation.Key) ([]*dbmysql.Message, error) {
	return r.List(ctx, key, time.Time{}, 0, len(r.store.messages)+1)
}

// archiveRepo adapts memStore to the conversation archive store.
type archiveRepo struct{ store *memStore }

func (r *archiveRepo) Save(ctx context.Context, archive *dbmongo.ConversationArchive) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.archives = append(r.store.archives, archive)
	return "archive-1", nil
}

type silentPublisher struct{}

func (silentPublisher) Subscribe(common.Observer)   {}
func (silentPublisher) Unsubscribe(common.Observer) {}
func (silentPublisher) Notify(common.Event)         {}
func (silentPublisher) NotifyAsync(common.Event)    {}

type flowEnv struct {
	store         *memStore
	mentors       mentor.Service
	requests      request.Service
	conversations conversation.Service
	router        *conversation.Router
}

func newFlowEnv(t *testing.T) *flowEnv {
	store := newMemStore()
	logger := zap.NewNop()
	locks := common.NewPairLocks()
	publisher := silentPublisher{}

	mentorsRepo := &mentorRepo{store: store}
	router := conversation.NewRouter(store, mentorsRepo, &startupRepo{store: store})
	conversations := conversation.NewService(
		&messageRepo{store: store}, store, router, &archiveRepo{store: store}, locks, publisher, logger)
	requests := request.NewService(store, mentorsRepo, conversations, locks, publisher, logger)
	aggregator := activity.NewAggregator(store, mentorsRepo, logger)
	mentors := mentor.NewService(mentorsRepo, store, aggregator)

	return &flowEnv{
		store:         store,
		mentors:       mentors,
		requests:      requests,
		conversations: conversations,
		router:        router,
	}
}

// TestMentorshipFlow walks the whole lifecycle: request, approval, messaging,
// availability toggle, and revocation with its archive.
func TestMentorshipFlow(t *testing.T) {
	ctx := context.Background()
	env := newFlowEnv(t)

	env.store.mentors[7] = &dbmysql.Mentor{ID: 7, DisplayName: "Dana", Available: true}
	env.store.startups[1] = &dbmysql.Startup{ID: 1, DisplayName: "Acme"}
	env.store.startups[2] = &dbmysql.Startup{ID: 2, DisplayName: "Borealis"}

	s1 := &common.Session{AccountID: 101, Role: common.RoleStartup, StartupID: 1}
	s2 := &common.Session{AccountID: 102, Role: common.RoleStartup, StartupID: 2}
	m := &common.Session{AccountID: 201, Role: common.RoleMentor, MentorID: 7}

	// Startup one asks for mentorship.
	req, err := env.requests.Create(ctx, s1, 7)
	require.NoError(t, err)
	assert.Equal(t, dbmysql.RequestPending, req.Status)

	// No conversation exists until the mentor approves.
	_, err = env.conversations.Send(ctx, s1, 1, "too early", "")
	require.ErrorIs(t, err, common.ErrConversationNotApproved)

	// A second request for the same pair is rejected while one is active.
	_, err = env.requests.Create(ctx, s1, 7)
	require.ErrorIs(t, err, common.ErrDuplicateActiveRequest)

	// Mentor approves.
	approved, err := env.requests.Decide(ctx, m, req.ID, request.OutcomeApprove)
	require.NoError(t, err)
	assert.Equal(t, dbmysql.RequestApproved, approved.Status)

	// Approval is final.
	_, err = env.requests.Decide(ctx, m, req.ID, request.OutcomeDecline)
	require.ErrorIs(t, err, common.ErrInvalidTransition)

	// The startup's conversation now routes to the mentor.
	resolved, err := env.router.ResolveConversation(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, uint64(7), resolved.Key.MentorID)

	// Messages flow both ways and come back in send order.
	hello, err := env.conversations.Send(ctx, s1, 1, "Hello", "flow-1")
	require.NoError(t, err)
	_, err = env.conversations.Send(ctx, m, 1, "Welcome aboard", "flow-2")
	require.NoError(t, err)

	msgs, err := env.conversations.Fetch(ctx, m, 1, time.Time{}, 0, 50)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Hello", msgs[0].Body)
	assert.Equal(t, "Welcome aboard", msgs[1].Body)

	// A retried send is absorbed, not duplicated.
	again, err := env.conversations.Send(ctx, s1, 1, "Hello", "flow-1")
	require.NoError(t, err)
	assert.Equal(t, hello.ID, again.ID)
	msgs, err = env.conversations.Fetch(ctx, m, 1, time.Time{}, 0, 50)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	// Cursor pagination picks up after the last seen message.
	tail, err := env.conversations.Fetch(ctx, s1, 1, msgs[0].SentAt, msgs[0].ID, 50)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, "Welcome aboard", tail[0].Body)

	// Mentor goes unavailable; new requests are blocked but the approved
	// conversation keeps working.
	available, err := env.mentors.ToggleAvailability(ctx, m)
	require.NoError(t, err)
	assert.False(t, available)

	_, err = env.requests.Create(ctx, s2, 7)
	require.ErrorIs(t, err, common.ErrMentorUnavailable)

	_, err = env.conversations.Send(ctx, s1, 1, "still here", "flow-3")
	require.NoError(t, err)

	// Revocation archives the transcript before closing the conversation.
	revoked, err := env.requests.Revoke(ctx, m, req.ID)
	require.NoError(t, err)
	assert.Equal(t, dbmysql.RequestRevoked, revoked.Status)

	require.Len(t, env.store.archives, 1)
	assert.Len(t, env.store.archives[0].Messages, 3)

	_, err = env.conversations.Send(ctx, s1, 1, "anyone there?", "flow-4")
	require.ErrorIs(t, err, common.ErrConversationNotApproved)
}
