package conversation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"venturelink/internal/dbmysql"
)

// ApprovalSource is the slice of the request queue the router reads.
type ApprovalSource interface {
	HasApprovedForPair(ctx context.Context, startupID, mentorID uint64) (bool, error)
	LatestApprovedForStartup(ctx context.Context, startupID uint64) (*dbmysql.MentorshipRequest, error)
	ListApprovedForMentor(ctx context.Context, mentorID uint64) ([]*dbmysql.MentorshipRequest, error)
}

type MentorReader interface {
	GetByID(ctx context.Context, id uint64) (*dbmysql.Mentor, error)
}

type StartupReader interface {
	GetByID(ctx context.Context, id uint64) (*dbmysql.Startup, error)
	ListByIDs(ctx context.Context, ids []uint64) ([]*dbmysql.Startup, error)
}

// Resolved names the effective mentor conversation for a startup.
type Resolved struct {
	Mentor *dbmysql.Mentor `json:"mentor"`
	Key    Key             `json:"key"`
}

// Router derives which conversation is live for each party from the set of
// approved requests. It holds no state of its own.
type Router struct {
	approvals ApprovalSource
	mentors   MentorReader
	startups  StartupReader
}

func NewRouter(approvals ApprovalSource, mentors MentorReader, startups StartupReader) *Router {
	return &Router{approvals: approvals, mentors: mentors, startups: startups}
}

// ResolveConversation picks the startup's most recently approved request as
// the effective mentor relationship. The UI surfaces a single mentor slot per
// startup, so last approved wins; (nil, nil) means no approved mentor.
func (rt *Router) ResolveConversation(ctx context.Context, startupID uint64) (*Resolved, error) {
	req, err := rt.approvals.LatestApprovedForStartup(ctx, startupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	m, err := rt.mentors.GetByID(ctx, req.MentorID)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Mentor: m,
		Key:    Key{StartupID: startupID, MentorID: req.MentorID},
	}, nil
}

// ListStartupsForMentor returns the mentor's roster of active conversations,
// most recently approved first.
func (rt *Router) ListStartupsForMentor(ctx context.Context, mentorID uint64) ([]*dbmysql.Startup, error) {
	approvals, err := rt.approvals.ListApprovedForMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(approvals))
	for _, req := range approvals {
		ids = append(ids, req.StartupID)
	}

	startups, err := rt.startups.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// ListByIDs loses the approval order; rebuild it.
	byID := make(map[uint64]*dbmysql.Startup, len(startups))
	for _, s := range startups {
		byID[s.ID] = s
	}
	ordered := make([]*dbmysql.Startup, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}
	return ordered, nil
}

// MentorPairing is a startup together with its effective mentor, nil when no
// approval stands.
type MentorPairing struct {
	Startup *dbmysql.Startup `json:"startup"`
	Mentor  *dbmysql.Mentor  `json:"mentor"`
}

// MentorsWithStatus seeds the startup-side conversation view.
func (rt *Router) MentorsWithStatus(ctx context.Context, startupID uint64) ([]*MentorPairing, error) {
	s, err := rt.startups.GetByID(ctx, startupID)
	if err != nil {
		return nil, err
	}

	resolved, err := rt.ResolveConversation(ctx, startupID)
	if err != nil {
		return nil, err
	}

	pairing := &MentorPairing{Startup: s}
	if resolved != nil {
		pairing.Mentor = resolved.Mentor
	}
	return []*MentorPairing{pairing}, nil
}
