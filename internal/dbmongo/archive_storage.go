package dbmongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const archiveCollection = "conversation_archives"

// ArchivedMessage is the immutable transcript entry stored alongside the
// archived conversation.
type ArchivedMessage struct {
	MessageID  uint64    `bson:"message_id"`
	SenderRole string    `bson:"sender_role"`
	Body       string    `bson:"body"`
	SentAt     time.Time `bson:"sent_at"`
}

// ConversationArchive holds the full transcript of a revoked mentorship.
// Archives are written once and never deleted; message history survives the
// revocation.
type ConversationArchive struct {
	ID         string            `bson:"_id"`
	StartupID  uint64            `bson:"startup_id"`
	MentorID   uint64            `bson:"mentor_id"`
	RequestID  uint64            `bson:"request_id"`
	ArchivedAt time.Time         `bson:"archived_at"`
	Messages   []ArchivedMessage `bson:"messages"`
}

type ArchiveStorage struct {
	collection *mongo.Collection
}

func NewArchiveStorage(mongoClient *MongoClient) *ArchiveStorage {
	return &ArchiveStorage{
		collection: mongoClient.Database.Collection(archiveCollection),
	}
}

func (as *ArchiveStorage) Save(ctx context.Context, archive *ConversationArchive) (string, error) {
	if archive.ID == "" {
		archive.ID = uuid.NewString()
	}
	if archive.ArchivedAt.IsZero() {
		archive.ArchivedAt = time.Now().UTC()
	}

	if _, err := as.collection.InsertOne(ctx, archive); err != nil {
		return "", fmt.Errorf("failed to store archive: %w", err)
	}
	return archive.ID, nil
}

// ListForPair returns every archive ever written for the pair, newest first.
func (as *ArchiveStorage) ListForPair(ctx context.Context, startupID, mentorID uint64) ([]*ConversationArchive, error) {
	filter := bson.M{"startup_id": startupID, "mentor_id": mentorID}
	opts := options.Find().SetSort(bson.D{{Key: "archived_at", Value: -1}})

	cursor, err := as.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list archives: %w", err)
	}
	defer cursor.Close(ctx)

	var archives []*ConversationArchive
	if err := cursor.All(ctx, &archives); err != nil {
		return nil, fmt.Errorf("failed to decode archives: %w", err)
	}
	return archives, nil
}
