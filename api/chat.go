package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campusconnect-inc/campus-api/schema"
	"github.com/campusconnect-inc/campus-api/store"
)

// createChat is the API for opening a conversation. Participant refs
// are account numbers or emails; refs that don't resolve are reported
// back and the conversation proceeds with the rest. The creator is
// always the first participant, deduplicated if listed again.
func (s *Server) createChat(c *gin.Context) {
	account := currentAccount(c)
	if account == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		Participants []string `json:"participants"`
		Kind         string   `json:"kind"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if strings.TrimSpace(params.Title) == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	participants := []schema.Participant{{
		AccountNumber: account.AccountNumber,
		Name:          account.Profile.Name,
	}}
	unresolved := make([]string, 0)

	for _, ref := range params.Participants {
		other, err := s.resolveParticipantRef(ref)
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		if other == nil {
			unresolved = append(unresolved, ref)
			continue
		}

		duplicate := false
		for _, p := range participants {
			if p.AccountNumber == other.AccountNumber {
				duplicate = true
				break
			}
		}
		if !duplicate {
			participants = append(participants, schema.Participant{
				AccountNumber: other.AccountNumber,
				Name:          other.Profile.Name,
			})
		}
	}

	kind := params.Kind
	if kind == "" {
		if len(participants) == 2 {
			kind = schema.ConversationKindDirect
		} else {
			kind = schema.ConversationKindGroup
		}
	}
	if kind != schema.ConversationKindDirect && kind != schema.ConversationKindGroup {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	if kind == schema.ConversationKindDirect && len(participants) != 2 {
		abortWithEncoding(c, http.StatusBadRequest, errorDirectParticipantCount)
		return
	}

	conversation, err := s.mongoStore.CreateConversation(schema.Conversation{
		Title:        strings.TrimSpace(params.Title),
		Description:  params.Description,
		Kind:         kind,
		CreatedBy:    account.AccountNumber,
		Participants: participants,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"chat":       conversation,
		"unresolved": unresolved,
	})
}

// listAccountChats is the API for listing the conversations an account
// participates in
func (s *Server) listAccountChats(c *gin.Context) {
	conversations, err := s.mongoStore.ListAccountConversations(c.Param("accountNumber"))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chats": conversations})
}

// getChat is the API for reading a full conversation aggregate. Clients
// poll this endpoint while a conversation is open.
func (s *Server) getChat(c *gin.Context) {
	chatID, err := primitive.ObjectIDFromHex(c.Param("chatID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorConversationNotFound)
		return
	}

	conversation, err := s.mongoStore.GetConversation(chatID)
	if err != nil {
		if err == store.ErrConversationNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorConversationNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chat": conversation})
}

// sendMessage is the API for appending a message to a conversation.
// Only current participants may send; the check happens before any
// mutation.
func (s *Server) sendMessage(c *gin.Context) {
	account := currentAccount(c)
	if account == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	chatID, err := primitive.ObjectIDFromHex(c.Param("chatID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorConversationNotFound)
		return
	}

	var params struct {
		Content string `json:"content"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Content == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	conversation, err := s.mongoStore.AppendMessage(chatID, schema.Message{
		Sender:     account.AccountNumber,
		SenderName: account.Profile.Name,
		Avatar:     account.Profile.Avatar,
		Content:    params.Content,
	})
	if err != nil {
		switch err {
		case store.ErrConversationNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorConversationNotFound)
		case store.ErrNotParticipant:
			abortWithEncoding(c, http.StatusForbidden, errorNotParticipant)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"chat": conversation})
}

// listMessages is the API for reading a page of a conversation's message
// sequence, oldest first. Clients re-issue this on a fixed interval to
// approximate real-time delivery.
func (s *Server) listMessages(c *gin.Context) {
	chatID, err := primitive.ObjectIDFromHex(c.Param("chatID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorConversationNotFound)
		return
	}

	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	messages, err := s.mongoStore.ListMessages(chatID, page, limit)
	if err != nil {
		if err == store.ErrConversationNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorConversationNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// addParticipant is the API for bringing a user into a conversation.
// Only existing participants may add; duplicates are rejected.
func (s *Server) addParticipant(c *gin.Context) {
	account := currentAccount(c)
	if account == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	chatID, err := primitive.ObjectIDFromHex(c.Param("chatID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorConversationNotFound)
		return
	}

	var params struct {
		Participant string `json:"participant"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	other, err := s.resolveParticipantRef(params.Participant)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if other == nil {
		abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		return
	}

	conversation, err := s.mongoStore.AddParticipant(chatID, account.AccountNumber, schema.Participant{
		AccountNumber: other.AccountNumber,
		Name:          other.Profile.Name,
	})
	if err != nil {
		switch err {
		case store.ErrConversationNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorConversationNotFound)
		case store.ErrNotParticipant:
			abortWithEncoding(c, http.StatusForbidden, errorNotParticipant)
		case store.ErrParticipantExists:
			abortWithEncoding(c, http.StatusConflict, errorParticipantExists)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"chat": conversation})
}

// resolveParticipantRef looks a participant reference up in the account
// registry. A ref containing "@" is treated as an email, anything else
// as an account number. An unknown ref resolves to nil without error.
func (s *Server) resolveParticipantRef(ref string) (*schema.Account, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, nil
	}

	var (
		account *schema.Account
		err     error
	)
	if strings.Contains(ref, "@") {
		account, err = s.store.GetAccountByEmail(ref)
	} else {
		account, err = s.store.GetAccount(ref)
	}

	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}
