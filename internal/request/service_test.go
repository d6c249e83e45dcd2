package request

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"venturelink/internal/common"
	"venturelink/internal/dbmysql"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []common.Event
}

func (p *recordingPublisher) Subscribe(common.Observer)   {}
func (p *recordingPublisher) Unsubscribe(common.Observer) {}

func (p *recordingPublisher) Notify(e common.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) NotifyAsync(e common.Event) { p.Notify(e) }

func (p *recordingPublisher) types() []common.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]common.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func newTestService(t *testing.T) (Service, *MockRepository, *MockMentorReader, *MockTranscriptArchiver, *recordingPublisher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := NewMockRepository(ctrl)
	mentors := NewMockMentorReader(ctrl)
	archiver := NewMockTranscriptArchiver(ctrl)
	publisher := &recordingPublisher{}
	svc := NewService(repo, mentors, archiver, common.NewPairLocks(), publisher, zap.NewNop())
	return svc, repo, mentors, archiver, publisher
}

func startupSession(startupID uint64) *common.Session {
	return &common.Session{AccountID: 100 + startupID, Role: common.RoleStartup, StartupID: startupID}
}

func mentorSession(mentorID uint64) *common.Session {
	return &common.Session{AccountID: 200 + mentorID, Role: common.RoleMentor, MentorID: mentorID}
}

func TestRequestService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		session *common.Session
		setup   func(repo *MockRepository, mentors *MockMentorReader)
		wantErr error
	}{
		{
			name:    "success",
			session: startupSession(1),
			setup: func(repo *MockRepository, mentors *MockMentorReader) {
				mentors.EXPECT().GetByID(ctx, uint64(7)).Return(&dbmysql.Mentor{ID: 7, Available: true}, nil)
				repo.EXPECT().HasActiveForPair(ctx, uint64(1), uint64(7)).Return(false, nil)
				repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, req *dbmysql.MentorshipRequest) error {
						req.ID = 11
						return nil
					})
			},
		},
		{
			name:    "mentor unavailable",
			session: startupSession(1),
			setup: func(repo *MockRepository, mentors *MockMentorReader) {
				mentors.EXPECT().GetByID(ctx, uint64(7)).Return(&dbmysql.Mentor{ID: 7, Available: false}, nil)
			},
			wantErr: common.ErrMentorUnavailable,
		},
		{
			name:    "duplicate active request",
			session: startupSession(1),
			setup: func(repo *MockRepository, mentors *MockMentorReader) {
				mentors.EXPECT().GetByID(ctx, uint64(7)).Return(&dbmysql.Mentor{ID: 7, Available: true}, nil)
				repo.EXPECT().HasActiveForPair(ctx, uint64(1), uint64(7)).Return(true, nil)
			},
			wantErr: common.ErrDuplicateActiveRequest,
		},
		{
			name:    "mentor not found",
			session: startupSession(1),
			setup: func(repo *MockRepository, mentors *MockMentorReader) {
				mentors.EXPECT().GetByID(ctx, uint64(7)).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: common.ErrNotFound,
		},
		{
			name:    "mentor cannot create",
			session: mentorSession(3),
			setup:   func(repo *MockRepository, mentors *MockMentorReader) {},
			wantErr: common.ErrForbidden,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, mentors, _, publisher := newTestService(t)
			tc.setup(repo, mentors)

			req, err := svc.Create(ctx, tc.session, 7)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, publisher.types())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, dbmysql.RequestPending, req.Status)
			assert.Equal(t, uint64(1), req.StartupID)
			assert.Equal(t, uint64(7), req.MentorID)
			assert.Equal(t, []common.EventType{common.EventRequestCreated}, publisher.types())
		})
	}
}

func TestRequestService_Decide(t *testing.T) {
	ctx := context.Background()

	pending := func() *dbmysql.MentorshipRequest {
		return &dbmysql.MentorshipRequest{ID: 11, StartupID: 1, MentorID: 7, Status: dbmysql.RequestPending}
	}

	t.Run("approve", func(t *testing.T) {
		svc, repo, _, _, publisher := newTestService(t)
		repo.EXPECT().GetByID(ctx, uint64(11)).Return(pending(), nil).Times(2)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req *dbmysql.MentorshipRequest) error {
				assert.Equal(t, dbmysql.RequestApproved, req.Status)
				assert.NotNil(t, req.DecidedAt)
				return nil
			})

		req, err := svc.Decide(ctx, mentorSession(7), 11, OutcomeApprove)
		require.NoError(t, err)
		assert.Equal(t, dbmysql.RequestApproved, req.Status)
		assert.Equal(t, []common.EventType{common.EventRequestApproved}, publisher.types())
	})

	t.Run("decline", func(t *testing.T) {
		svc, repo, _, _, publisher := newTestService(t)
		repo.EXPECT().GetByID(ctx, uint64(11)).Return(pending(), nil).Times(2)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		req, err := svc.Decide(ctx, mentorSession(7), 11, OutcomeDecline)
		require.NoError(t, err)
		assert.Equal(t, dbmysql.RequestDeclined, req.Status)
		assert.Equal(t, []common.EventType{common.EventRequestDeclined}, publisher.types())
	})

	t.Run("wrong mentor is forbidden", func(t *testing.T) {
		svc, repo, _, _, _ := newTestService(t)
		repo.EXPECT().GetByID(ctx, uint64(11)).Return(pending(), nil)

		_, err := svc.Decide(ctx, mentorSession(99), 11, OutcomeApprove)
		require.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("startup cannot decide", func(t *testing.T) {
		svc, repo, _, _, _ := newTestService(t)
		repo.EXPECT().GetByID(ctx, uint64(11)).Return(pending(), nil)

		_, err := svc.Decide(ctx, startupSession(1), 11, OutcomeApprove)
		require.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("already decided", func(t *testing.T) {
		svc, repo, _, _, _ := newTestService(t)
		now := time.Now().UTC()
		decided := &dbmysql.MentorshipRequest{ID: 11, StartupID: 1, MentorID: 7, Status: dbmysql.RequestApproved, DecidedAt: &now}
		repo.EXPECT().GetByID(ctx, uint64(11)).Return(decided, nil).Times(2)

		_, err := svc.Decide(ctx, mentorSession(7), 11, OutcomeApprove)
		require.ErrorIs(t, err, common.ErrInvalidTransition)
	})

	t.Run("unknown outcome", func(t *testing.T) {
		svc, _, _, _, _ := newTestService(t)
		_, err := svc.Decide(ctx, mentorSession(7), 11, "maybe")
		require.ErrorIs(t, err, common.ErrInvalidTransition)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, _, _, _ := newTestService(t)
		repo.EXPECT().GetByID(ctx, uint64(11)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Decide(ctx, mentorSession(7), 11, OutcomeApprove)
		require.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestRequestService_Revoke(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	approved := func() *dbmysql.MentorshipRequest {
		return &dbmysql.MentorshipRequest{ID: 11, StartupID: 1, MentorID: 7, Status: dbmysql.RequestApproved, DecidedAt: &now}
	}

	t.Run("archives then revokes", func(t *testing.T) {
		svc, repo, _, archiver, publisher := newTestService(t)
		repo.EXPECT().GetByID(ctx, uint64(11)).Return(approved(), nil).Times(2)
		archiver.EXPECT().Archive(ctx, uint64(1), uint64(7), uint64(11)).Return(nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req *dbmysql.MentorshipRequest) error {
				assert.Equal(t, dbmysql.RequestRevoked, req.Status)
				return nil
			})

		req, err := svc.Revoke(ctx, mentorSession(7), 11)
		require.NoError(t, err)
		assert.Equal(t, dbmysql.RequestRevoked, req.Status)
		assert.Equal(t, []common.EventType{common.EventRequestRevoked}, publisher.types())
	})

	t.Run("archive failure keeps status", func(t *testing.T) {
		svc, repo, _, archiver, _ := newTestService(t)
		repo.EXPECT().GetByID(ctx, uint64(11)).Return(approved(), nil).Times(2)
		archiver.EXPECT().Archive(ctx, uint64(1), uint64(7), uint64(11)).Return(errors.New("mongo down"))

		_, err := svc.Revoke(ctx, mentorSession(7), 11)
		require.Error(t, err)
		require.NotErrorIs(t, err, common.ErrInvalidTransition)
	})

	t.Run("pending cannot be revoked", func(t *testing.T) {
		svc, repo, _, _, _ := newTestService(t)
		pending := &dbmysql.MentorshipRequest{ID: 11, StartupID: 1, MentorID: 7, Status: dbmysql.RequestPending}
		repo.EXPECT().GetByID(ctx, uint64(11)).Return(pending, nil).Times(2)

		_, err := svc.Revoke(ctx, mentorSession(7), 11)
		require.ErrorIs(t, err, common.ErrInvalidTransition)
	})
}

func TestRequestService_Listings(t *testing.T) {
	ctx := context.Background()

	t.Run("mentor listing is role scoped", func(t *testing.T) {
		svc, repo, _, _, _ := newTestService(t)
		repo.EXPECT().ListForMentor(ctx, uint64(7), dbmysql.RequestPending).
			Return([]*dbmysql.MentorshipRequest{{ID: 2}, {ID: 1}}, nil)

		requests, err := svc.ListForMentor(ctx, mentorSession(7), dbmysql.RequestPending)
		require.NoError(t, err)
		assert.Len(t, requests, 2)

		_, err = svc.ListForMentor(ctx, startupSession(1), "")
		require.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("startup listing is role scoped", func(t *testing.T) {
		svc, repo, _, _, _ := newTestService(t)
		repo.EXPECT().ListForStartup(ctx, uint64(1), "").
			Return([]*dbmysql.MentorshipRequest{{ID: 3}}, nil)

		requests, err := svc.ListForStartup(ctx, startupSession(1), "")
		require.NoError(t, err)
		assert.Len(t, requests, 1)

		_, err = svc.ListForStartup(ctx, mentorSession(7), "")
		require.ErrorIs(t, err, common.ErrForbidden)
	})
}
