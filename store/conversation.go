package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusconnect-inc/campus-api/schema"
)

var (
	ErrConversationNotFound = fmt.Errorf("conversation not found")
	ErrNotParticipant       = fmt.Errorf("not a participant of this conversation")
	ErrParticipantExists    = fmt.Errorf("user is already a participant")
)

type ConversationOperator interface {
	CreateConversation(conversation schema.Conversation) (*schema.Conversation, error)
	ListAccountConversations(accountNumber string) ([]schema.Conversation, error)
	GetConversation(conversationID primitive.ObjectID) (*schema.Conversation, error)

	AppendMessage(conversationID primitive.ObjectID, message schema.Message) (*schema.Conversation, error)
	AddParticipant(conversationID primitive.ObjectID, actor string, participant schema.Participant) (*schema.Conversation, error)
	ListMessages(conversationID primitive.ObjectID, page, limit int64) ([]schema.Message, error)
}

// CreateConversation inserts a new conversation document. The caller is
// responsible for the participant set already containing the creator
// exactly once.
func (m *mongoDB) CreateConversation(conversation schema.Conversation) (*schema.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ConversationCollection)

	now := time.Now().UTC()
	conversation.ID = primitive.NewObjectID()
	conversation.Messages = []schema.Message{}
	conversation.CreatedAt = now
	conversation.UpdatedAt = now
	for i := range conversation.Participants {
		if conversation.Participants[i].JoinedAt.IsZero() {
			conversation.Participants[i].JoinedAt = now
		}
	}

	if _, err := c.InsertOne(ctx, conversation); err != nil {
		return nil, err
	}

	return &conversation, nil
}

// ListAccountConversations returns every conversation the account
// participates in, most recently updated first.
func (m *mongoDB) ListAccountConversations(accountNumber string) ([]schema.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ConversationCollection)

	cursor, err := c.Find(ctx, bson.M{"participants.account_number": accountNumber},
		options.Find().SetSort(bson.M{"updated_at": -1}))
	if err != nil {
		return nil, err
	}

	conversations := make([]schema.Conversation, 0)
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}

	return conversations, nil
}

// GetConversation finds a conversation by its ID
func (m *mongoDB) GetConversation(conversationID primitive.ObjectID) (*schema.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ConversationCollection)

	var conversation schema.Conversation
	if err := c.FindOne(ctx, bson.M{"_id": conversationID}).Decode(&conversation); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}

	return &conversation, nil
}

// AppendMessage appends a message and refreshes the last-message cache
// in one update. The filter requires the sender to be a current
// participant, so the append and the authorization check are atomic and
// a rejected sender leaves the document untouched.
func (m *mongoDB) AppendMessage(conversationID primitive.ObjectID, message schema.Message) (*schema.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ConversationCollection)

	now := time.Now().UTC()
	message.ID = primitive.NewObjectID()
	message.CreatedAt = now

	query := bson.M{
		"_id":                         conversationID,
		"participants.account_number": message.Sender,
	}
	update := bson.M{
		"$push": bson.M{"messages": message},
		"$set": bson.M{
			"last_message": schema.LastMessage{
				Content:   message.Content,
				Timestamp: now,
				Sender:    message.SenderName,
			},
			"updated_at": now,
		},
	}

	var conversation schema.Conversation
	err := c.FindOneAndUpdate(ctx, query, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&conversation)
	if err == nil {
		return &conversation, nil
	}
	if err != mongo.ErrNoDocuments {
		log.WithFields(log.Fields{
			"prefix":          mongoLogPrefix,
			"conversation_id": conversationID.Hex(),
			"error":           err,
		}).Error("append message")
		return nil, err
	}

	// no match: either the conversation is gone or the sender is not in it
	count, err := c.CountDocuments(ctx, bson.M{"_id": conversationID})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrConversationNotFound
	}

	return nil, ErrNotParticipant
}

// AddParticipant appends a new participant. The filter requires the
// acting account to be a participant and the new account to be absent,
// so duplicates are rejected without mutating the document.
func (m *mongoDB) AddParticipant(conversationID primitive.ObjectID, actor string, participant schema.Participant) (*schema.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ConversationCollection)

	if participant.JoinedAt.IsZero() {
		participant.JoinedAt = time.Now().UTC()
	}

	query := bson.M{
		"_id":                         conversationID,
		"participants.account_number": actor,
		"participants": bson.M{
			"$not": bson.M{"$elemMatch": bson.M{"account_number": participant.AccountNumber}},
		},
	}
	update := bson.M{
		"$push": bson.M{"participants": participant},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}

	var conversation schema.Conversation
	err := c.FindOneAndUpdate(ctx, query, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&conversation)
	if err == nil {
		return &conversation, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	// diagnose which precondition failed
	existing, err := m.GetConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if !existing.HasParticipant(actor) {
		return nil, ErrNotParticipant
	}

	return nil, ErrParticipantExists
}

// ListMessages returns an oldest-to-newest slice of the embedded message
// sequence. Pages are offset-based; clients poll this endpoint to pick
// up new messages.
func (m *mongoDB) ListMessages(conversationID primitive.ObjectID, page, limit int64) ([]schema.Message, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ConversationCollection)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	var result struct {
		Messages []schema.Message `bson:"messages"`
	}
	err := c.FindOne(ctx, bson.M{"_id": conversationID},
		options.FindOne().SetProjection(bson.M{
			"messages": bson.M{"$slice": bson.A{(page - 1) * limit, limit}},
		})).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}

	if result.Messages == nil {
		return []schema.Message{}, nil
	}

	return result.Messages, nil
}
