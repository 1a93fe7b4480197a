package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ConversationCollection = "conversations"
)

const (
	ConversationKindGroup  = "group"
	ConversationKindDirect = "direct"
)

// Participant is a user currently associated with a conversation. Only
// participants may send messages or add further participants.
type Participant struct {
	AccountNumber string    `bson:"account_number" json:"account_number"`
	Name          string    `bson:"name" json:"name"`
	JoinedAt      time.Time `bson:"joined_at" json:"joined_at"`
}

// Message is embedded in its conversation and immutable once appended.
// Insertion order is chronological order.
type Message struct {
	ID         primitive.ObjectID `bson:"id" json:"id"`
	Sender     string             `bson:"sender" json:"sender"`
	SenderName string             `bson:"sender_name" json:"sender_name"`
	Avatar     string             `bson:"avatar" json:"avatar"`
	Content    string             `bson:"content" json:"content"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// LastMessage is a derived cache kept on the conversation so listings
// don't need to touch the message array.
type LastMessage struct {
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Sender    string    `bson:"sender" json:"sender"`
}

type Conversation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Kind         string             `bson:"kind" json:"kind"`
	CreatedBy    string             `bson:"created_by" json:"created_by"`
	Participants []Participant      `bson:"participants" json:"participants"`
	Messages     []Message          `bson:"messages" json:"messages"`
	LastMessage  *LastMessage       `bson:"last_message,omitempty" json:"last_message,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// HasParticipant reports whether the account currently belongs to the
// conversation.
func (c *Conversation) HasParticipant(accountNumber string) bool {
	for _, p := range c.Participants {
		if p.AccountNumber == accountNumber {
			return true
		}
	}
	return false
}
