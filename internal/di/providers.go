package di

import (
	"venturelink/internal/activity"
	"venturelink/internal/common"
	"venturelink/internal/conversation"
	"venturelink/internal/dbmongo"
	"venturelink/internal/identity"
	"venturelink/internal/mentor"
	"venturelink/internal/notify"
	"venturelink/internal/request"
	"venturelink/internal/startup"
)

// App bundles everything the server wires onto the router.
type App struct {
	IdentityHandler     *identity.Handler
	MentorHandler       *mentor.Handler
	RequestHandler      *request.Handler
	ConversationHandler *conversation.Handler
	NotifyHandler       *notify.Handler
	Notifier            *notify.Manager
}

func newApp(
	identityHandler *identity.Handler,
	mentorHandler *mentor.Handler,
	requestHandler *request.Handler,
	conversationHandler *conversation.Handler,
	notifyHandler *notify.Handler,
	notifier *notify.Manager,
) *App {
	return &App{
		IdentityHandler:     identityHandler,
		MentorHandler:       mentorHandler,
		RequestHandler:      requestHandler,
		ConversationHandler: conversationHandler,
		NotifyHandler:       notifyHandler,
		Notifier:            notifier,
	}
}

// Adapter providers: each consumer declares the narrow interface it reads;
// these map the concrete repositories onto them.

func provideApprovalSource(r request.Repository) conversation.ApprovalSource { return r }

func provideConversationMentorReader(r mentor.Repository) conversation.MentorReader { return r }

func provideConversationStartupReader(r startup.Repository) conversation.StartupReader { return r }

func provideArchiveStore(s *dbmongo.ArchiveStorage) conversation.ArchiveStore { return s }

func provideRequestMentorReader(r mentor.Repository) request.MentorReader { return r }

func provideTranscriptArchiver(s conversation.Service) request.TranscriptArchiver { return s }

func provideRequestCounter(r request.Repository) activity.RequestCounter { return r }

func provideActivityMentorReader(r mentor.Repository) activity.MentorReader { return r }

func provideRequestLister(r request.Repository) mentor.RequestLister { return r }

func provideAccountDirectory(r identity.AccountRepository) notify.AccountDirectory { return r }

func providePublisher(m *notify.Manager) common.Subject { return m }
