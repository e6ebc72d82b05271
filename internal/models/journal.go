package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mood is one of the fixed set of moods a journal entry can carry.
type Mood string

const (
	MoodVeryHappy Mood = "very-happy"
	MoodHappy     Mood = "happy"
	MoodNeutral   Mood = "neutral"
	MoodSad       Mood = "sad"
	MoodVerySad   Mood = "very-sad"
	MoodAnxious   Mood = "anxious"
	MoodExcited   Mood = "excited"
	MoodCalm      Mood = "calm"
)

// Moods lists every valid mood value (frontend picker order).
var Moods = []Mood{
	MoodVeryHappy, MoodHappy, MoodNeutral, MoodSad,
	MoodVerySad, MoodAnxious, MoodExcited, MoodCalm,
}

// ValidMood reports whether s is a member of the mood enumeration.
func ValidMood(s string) bool {
	for _, m := range Moods {
		if string(m) == s {
			return true
		}
	}
	return false
}

// JournalEntry is the single canonical journal entry document.
// mood_score is a pointer so "no score" stays distinguishable from 0.
type JournalEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
	Mood      Mood               `bson:"mood" json:"mood"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Tags      []string           `bson:"tags" json:"tags"`
	MoodScore *int               `bson:"mood_score,omitempty" json:"moodScore,omitempty"`
}
