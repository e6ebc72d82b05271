package services

import (
	"context"
	"errors"
	"time"

	"github.com/lumimood/lumimood-backend/internal/database"
	"github.com/lumimood/lumimood-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const journalCollection = "journal_entries"

// ErrNotFound is returned when a document lookup matches nothing. A malformed
// id is treated the same way: callers see not-found, not a decode error.
var ErrNotFound = errors.New("entry not found")

// InsertJournalEntry assigns id and timestamps and persists the entry.
func InsertJournalEntry(ctx context.Context, entry *models.JournalEntry) error {
	now := time.Now().UTC()
	entry.ID = primitive.NewObjectID()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	if entry.Tags == nil {
		entry.Tags = []string{}
	}

	_, err := database.DB.Collection(journalCollection).InsertOne(ctx, entry)
	return err
}

// ListJournalEntries returns all journal entries, newest first.
func ListJournalEntries(ctx context.Context) ([]models.JournalEntry, error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.M{"created_at": -1})

	cursor, err := database.DB.Collection(journalCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]models.JournalEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetJournalEntry fetches a single entry by its hex id.
func GetJournalEntry(ctx context.Context, id string) (*models.JournalEntry, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var entry models.JournalEntry
	err = database.DB.Collection(journalCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateJournalEntry merges the given fields into the entry and returns the
// post-update document.
func UpdateJournalEntry(ctx context.Context, id string, set bson.M) (*models.JournalEntry, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var entry models.JournalEntry
	err = database.DB.Collection(journalCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).
		Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteJournalEntry removes an entry by id.
func DeleteJournalEntry(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := database.DB.Collection(journalCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
