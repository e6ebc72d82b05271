package services

import (
	"context"
	"time"

	"github.com/lumimood/lumimood-backend/internal/database"
	"github.com/lumimood/lumimood-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const assessmentCollection = "mood_entries"

// InsertMoodEntry persists an assessment intake record. Append-only.
func InsertMoodEntry(ctx context.Context, entry *models.MoodEntry) error {
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = time.Now().UTC()

	_, err := database.DB.Collection(assessmentCollection).InsertOne(ctx, entry)
	return err
}

// ListMoodEntries returns all assessment records, newest first by created_at.
func ListMoodEntries(ctx context.Context) ([]models.MoodEntry, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.M{"created_at": -1})

	cursor, err := database.DB.Collection(assessmentCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]models.MoodEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
