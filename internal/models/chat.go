package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage is one chatbot exchange: the user's message paired with the
// reply that was actually sent back, whichever path produced it.
type ChatMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Message   string             `bson:"message" json:"message"`
	Response  string             `bson:"response" json:"response"`
	CreatedAt time.Time          `bson:"created_at" json:"timestamp"`
}
