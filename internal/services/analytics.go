package services

import (
	"context"
	"time"

	"github.com/lumimood/lumimood-backend/internal/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// moodTrendWindowDays is the trailing analytics window.
const moodTrendWindowDays = 30

// MoodTrend is one aggregated (calendar day, mood) row. AvgScore is nil when
// no entry in the group carried a mood score.
type MoodTrend struct {
	Date     string   `bson:"date" json:"date"`
	Mood     string   `bson:"mood" json:"mood"`
	Count    int      `bson:"count" json:"count"`
	AvgScore *float64 `bson:"avg_score" json:"avgScore"`
}

func moodTrendsPipeline(since time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"date": bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}},
				"mood": "$mood",
			},
			"count":     bson.M{"$sum": 1},
			"avg_score": bson.M{"$avg": "$mood_score"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id.date": 1}}},
		{{Key: "$project", Value: bson.M{
			"_id":       0,
			"date":      "$_id.date",
			"mood":      "$_id.mood",
			"count":     1,
			"avg_score": 1,
		}}},
	}
}

// MoodTrends groups journal entries from the trailing window by day and mood,
// computing count and average mood score per group, ordered by ascending day.
func MoodTrends(ctx context.Context) ([]MoodTrend, error) {
	since := time.Now().UTC().AddDate(0, 0, -moodTrendWindowDays)

	cursor, err := database.DB.Collection(journalCollection).Aggregate(ctx, moodTrendsPipeline(since))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trends := make([]MoodTrend, 0)
	if err := cursor.All(ctx, &trends); err != nil {
		return nil, err
	}
	return trends, nil
}
