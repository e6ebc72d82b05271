package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rewritten holds optional paraphrases of an assessment's free text.
// The intake path never fills these in; they exist so stored documents
// written by older tooling still decode.
type Rewritten struct {
	Positive string `bson:"positive,omitempty" json:"positive,omitempty"`
	Neutral  string `bson:"neutral,omitempty" json:"neutral,omitempty"`
	Negative string `bson:"negative,omitempty" json:"negative,omitempty"`
}

// MoodEntry is a self-assessment intake record. Append-only: there is no
// update or delete path for these.
type MoodEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Score     string             `bson:"score" json:"score"`
	Rewritten *Rewritten         `bson:"rewritten,omitempty" json:"rewritten,omitempty"`
}
