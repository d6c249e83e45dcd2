//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"venturelink/internal/common"
	"venturelink/internal/config"
	"venturelink/internal/conversation"
	"venturelink/internal/dbmongo"
	"venturelink/internal/identity"
	"venturelink/internal/mentor"
	"venturelink/internal/notify"
	"venturelink/internal/request"
	"venturelink/internal/startup"

	"venturelink/internal/activity"
)

// InitApp is the injector declaration; wire generates the real body.
func InitApp(cfg *config.Config, db *gorm.DB, mongoClient *dbmongo.MongoClient, logger *zap.Logger) *App {
	wire.Build(
		common.NewPairLocks,
		dbmongo.NewArchiveStorage,

		identity.NewAccountRepository,
		identity.NewService,
		identity.NewHandler,

		mentor.NewRepository,
		mentor.NewService,
		mentor.NewHandler,

		startup.NewRepository,

		request.NewRepository,
		request.NewService,
		request.NewHandler,

		conversation.NewMessageRepository,
		conversation.NewRouter,
		conversation.NewService,
		conversation.NewHandler,

		activity.NewAggregator,

		notify.NewNotificationRepository,
		notify.NewNotifier,
		notify.NewHandler,

		provideApprovalSource,
		provideConversationMentorReader,
		provideConversationStartupReader,
		provideArchiveStore,
		provideRequestMentorReader,
		provideTranscriptArchiver,
		provideRequestCounter,
		provideActivityMentorReader,
		provideRequestLister,
		provideAccountDirectory,
		providePublisher,

		newApp,
	)
	return nil
}
