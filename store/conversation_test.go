package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusconnect-inc/campus-api/schema"
)

var (
	groupChatID  = primitive.NewObjectID()
	pagedChatID  = primitive.NewObjectID()
	pagedChatLen = 5
)

type ConversationTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewConversationTestSuite(connURI, dbName string) *ConversationTestSuite {
	return &ConversationTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ConversationTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *ConversationTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	pagedMessages := make([]schema.Message, 0, pagedChatLen)
	for i := 0; i < pagedChatLen; i++ {
		pagedMessages = append(pagedMessages, schema.Message{
			ID:         primitive.NewObjectID(),
			Sender:     "account-chatter-a",
			SenderName: "Rina Chen",
			Content:    fmt.Sprintf("message %d", i+1),
			CreatedAt:  time.Now().Add(time.Duration(i) * time.Minute),
		})
	}

	if _, err := s.testDatabase.Collection(schema.ConversationCollection).InsertMany(ctx, []interface{}{
		schema.Conversation{
			ID:    groupChatID,
			Title: "Study Group",
			Kind:  schema.ConversationKindGroup,
			Participants: []schema.Participant{
				{AccountNumber: "account-chatter-a", Name: "Rina Chen", JoinedAt: time.Now()},
				{AccountNumber: "account-chatter-b", Name: "Omar Haddad", JoinedAt: time.Now()},
			},
			Messages: []schema.Message{
				{
					ID:         primitive.NewObjectID(),
					Sender:     "account-chatter-a",
					SenderName: "Rina Chen",
					Content:    "welcome everyone",
					CreatedAt:  time.Now(),
				},
			},
		},
		schema.Conversation{
			ID:    pagedChatID,
			Title: "Archive",
			Kind:  schema.ConversationKindDirect,
			Participants: []schema.Participant{
				{AccountNumber: "account-chatter-a", Name: "Rina Chen", JoinedAt: time.Now()},
				{AccountNumber: "account-chatter-b", Name: "Omar Haddad", JoinedAt: time.Now()},
			},
			Messages: pagedMessages,
		},
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *ConversationTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// TestAddParticipant tests a participant inviting somebody new
func (s *ConversationTestSuite) TestAddParticipant() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	before, err := store.GetConversation(groupChatID)
	s.NoError(err)

	conversation, err := store.AddParticipant(groupChatID, "account-chatter-a", schema.Participant{
		AccountNumber: "account-chatter-c",
		Name:          "Dana Petrov",
	})
	s.NoError(err)
	s.Len(conversation.Participants, len(before.Participants)+1)
	s.True(conversation.HasParticipant("account-chatter-c"))
	s.False(conversation.Participants[len(conversation.Participants)-1].JoinedAt.IsZero())
}

// TestAddParticipantByOutsider tests that only current participants
// may invite
func (s *ConversationTestSuite) TestAddParticipantByOutsider() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.AddParticipant(groupChatID, "account-stranger", schema.Participant{
		AccountNumber: "account-chatter-d",
		Name:          "Lee Park",
	})
	s.Equal(ErrNotParticipant, err)
}

// TestAddParticipantDuplicate tests inviting somebody who is already in
func (s *ConversationTestSuite) TestAddParticipantDuplicate() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	before, err := store.GetConversation(groupChatID)
	s.NoError(err)

	_, err = store.AddParticipant(groupChatID, "account-chatter-a", schema.Participant{
		AccountNumber: "account-chatter-b",
		Name:          "Omar Haddad",
	})
	s.Equal(ErrParticipantExists, err)

	after, err := store.GetConversation(groupChatID)
	s.NoError(err)
	s.Len(after.Participants, len(before.Participants))
}

// TestAddParticipantMissingConversation tests inviting into a
// conversation that does not exist
func (s *ConversationTestSuite) TestAddParticipantMissingConversation() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.AddParticipant(primitive.NewObjectID(), "account-chatter-a", schema.Participant{
		AccountNumber: "account-chatter-c",
		Name:          "Dana Petrov",
	})
	s.Equal(ErrConversationNotFound, err)
}

// TestAppendMessage tests a participant posting a message
func (s *ConversationTestSuite) TestAppendMessage() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	before, err := store.GetConversation(groupChatID)
	s.NoError(err)

	conversation, err := store.AppendMessage(groupChatID, schema.Message{
		Sender:     "account-chatter-b",
		SenderName: "Omar Haddad",
		Content:    "thanks for the invite",
	})
	s.NoError(err)
	s.Len(conversation.Messages, len(before.Messages)+1)

	appended := conversation.Messages[len(conversation.Messages)-1]
	s.False(appended.ID.IsZero())
	s.False(appended.CreatedAt.IsZero())

	s.NotNil(conversation.LastMessage)
	s.Equal("thanks for the invite", conversation.LastMessage.Content)
	s.Equal("Omar Haddad", conversation.LastMessage.Sender)
	s.True(conversation.UpdatedAt.After(before.UpdatedAt))
}

// TestAppendMessageMissingConversation tests posting into a
// conversation that does not exist
func (s *ConversationTestSuite) TestAppendMessageMissingConversation() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.AppendMessage(primitive.NewObjectID(), schema.Message{
		Sender:  "account-chatter-a",
		Content: "hello?",
	})
	s.Equal(ErrConversationNotFound, err)
}

// TestAppendMessageNotParticipant tests that outsiders cannot post and
// nothing is written when they try
func (s *ConversationTestSuite) TestAppendMessageNotParticipant() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	before, err := store.GetConversation(groupChatID)
	s.NoError(err)

	_, err = store.AppendMessage(groupChatID, schema.Message{
		Sender:  "account-stranger",
		Content: "let me in",
	})
	s.Equal(ErrNotParticipant, err)

	after, err := store.GetConversation(groupChatID)
	s.NoError(err)
	s.Len(after.Messages, len(before.Messages))
	s.Equal(before.LastMessage, after.LastMessage)
}

// TestConcurrentAppendMessages tests that messages sent at the same
// moment all survive
func (s *ConversationTestSuite) TestConcurrentAppendMessages() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	conversation, err := store.CreateConversation(schema.Conversation{
		Title: "Race",
		Kind:  schema.ConversationKindDirect,
		Participants: []schema.Participant{
			{AccountNumber: "account-chatter-a", Name: "Rina Chen"},
			{AccountNumber: "account-chatter-b", Name: "Omar Haddad"},
		},
	})
	s.NoError(err)

	const senders = 6

	var wg sync.WaitGroup
	wg.Add(senders)
	for i := 0; i < senders; i++ {
		sender := "account-chatter-a"
		if i%2 == 1 {
			sender = "account-chatter-b"
		}
		go func(sender string) {
			defer wg.Done()
			_, err := store.AppendMessage(conversation.ID, schema.Message{
				Sender:  sender,
				Content: "racing",
			})
			s.NoError(err)
		}(sender)
	}
	wg.Wait()

	final, err := store.GetConversation(conversation.ID)
	s.NoError(err)
	s.Len(final.Messages, senders)
	s.NotNil(final.LastMessage)
}

// TestCreateConversation tests creating a conversation with fresh
// membership timestamps and no messages
func (s *ConversationTestSuite) TestCreateConversation() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	conversation, err := store.CreateConversation(schema.Conversation{
		Title: "Lab Partners",
		Kind:  schema.ConversationKindDirect,
		Participants: []schema.Participant{
			{AccountNumber: "account-chatter-a", Name: "Rina Chen"},
			{AccountNumber: "account-chatter-b", Name: "Omar Haddad"},
		},
	})
	s.NoError(err)
	s.False(conversation.ID.IsZero())
	s.Len(conversation.Messages, 0)
	s.Nil(conversation.LastMessage)
	s.False(conversation.CreatedAt.IsZero())
	for _, p := range conversation.Participants {
		s.False(p.JoinedAt.IsZero())
	}
}

// TestListAccountConversations tests listing by membership
func (s *ConversationTestSuite) TestListAccountConversations() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	conversations, err := store.ListAccountConversations("account-chatter-b")
	s.NoError(err)
	s.True(len(conversations) >= 2)
	for _, c := range conversations {
		s.True(c.HasParticipant("account-chatter-b"))
	}

	conversations, err = store.ListAccountConversations("account-nobody")
	s.NoError(err)
	s.Len(conversations, 0)
}

// TestListMessages tests the paged message window in chronological order
func (s *ConversationTestSuite) TestListMessages() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	messages, err := store.ListMessages(pagedChatID, 1, 2)
	s.NoError(err)
	s.Len(messages, 2)
	s.Equal("message 1", messages[0].Content)
	s.Equal("message 2", messages[1].Content)

	messages, err = store.ListMessages(pagedChatID, 3, 2)
	s.NoError(err)
	s.Len(messages, 1)
	s.Equal("message 5", messages[0].Content)

	messages, err = store.ListMessages(pagedChatID, 4, 2)
	s.NoError(err)
	s.Len(messages, 0)

	_, err = store.ListMessages(primitive.NewObjectID(), 1, 50)
	s.Equal(ErrConversationNotFound, err)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to s.Run
func TestConversationTestSuite(t *testing.T) {
	suite.Run(t, NewConversationTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-conversation-db"))
}
