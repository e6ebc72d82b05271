package services

import (
	"context"
	"time"

	"github.com/lumimood/lumimood-backend/internal/database"
	"github.com/lumimood/lumimood-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const chatCollection = "chat_messages"

// ChatHistoryLimit caps how many exchanges history retrieval returns.
const ChatHistoryLimit = 50

// EnsureChatIndexes configures indexes for the chat_messages collection.
// Called on startup from main after Mongo has connected.
func EnsureChatIndexes(ctx context.Context) error {
	col := database.DB.Collection(chatCollection)

	// Descending created_at index to support newest-first history reads.
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("idx_created_at"),
	}

	_, err := col.Indexes().CreateOne(ctx, model)
	return err
}

// SaveChatMessage persists one exchange (user message + reply).
func SaveChatMessage(ctx context.Context, message, response string) error {
	msg := models.ChatMessage{
		ID:        primitive.NewObjectID(),
		Message:   message,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}

	_, err := database.DB.Collection(chatCollection).InsertOne(ctx, msg)
	return err
}

// LoadChatHistory returns the most recent exchanges, newest first.
func LoadChatHistory(ctx context.Context) ([]models.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(ChatHistoryLimit)

	cursor, err := database.DB.Collection(chatCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	msgs := make([]models.ChatMessage, 0)
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
