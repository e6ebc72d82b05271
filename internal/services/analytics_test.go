package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMoodTrendsPipeline(t *testing.T) {
	since := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	pipeline := moodTrendsPipeline(since)

	require.Len(t, pipeline, 4)

	match := pipeline[0]
	require.Equal(t, "$match", match[0].Key)
	filter, ok := match[0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"created_at": bson.M{"$gte": since}}, filter)

	group := pipeline[1]
	require.Equal(t, "$group", group[0].Key)
	fields, ok := group[0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$sum": 1}, fields["count"])
	assert.Equal(t, bson.M{"$avg": "$mood_score"}, fields["avg_score"])

	sort := pipeline[2]
	require.Equal(t, "$sort", sort[0].Key)
	assert.Equal(t, bson.M{"_id.date": 1}, sort[0].Value)

	project := pipeline[3]
	assert.Equal(t, "$project", project[0].Key)
}

func TestMoodTrendWindow(t *testing.T) {
	// The analytics window is a fixed trailing 30 days.
	assert.Equal(t, 30, moodTrendWindowDays)
}
