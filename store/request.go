package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusconnect-inc/campus-api/schema"
)

var (
	ErrRequestNotFound    = fmt.Errorf("request not found")
	ErrEmptyResponse      = fmt.Errorf("a response requires a message or an attachment")
	ErrResponseNotFound   = fmt.Errorf("response not found")
	ErrAttachmentNotFound = fmt.Errorf("attachment not found")
)

// RequestFilter narrows a request listing. Zero values and the literal
// "all" leave a dimension unfiltered.
type RequestFilter struct {
	Category string
	Urgency  string
	Status   string
	Search   string
	Page     int64
	Limit    int64
}

type RequestOperator interface {
	CreateRequest(request schema.Request) (*schema.Request, error)
	ListRequests(filter RequestFilter) ([]schema.Request, int64, error)
	ListAccountRequests(accountNumber string) ([]schema.Request, error)
	GetRequest(requestID primitive.ObjectID) (*schema.Request, error)

	AppendResponse(requestID primitive.ObjectID, response schema.Response) (*schema.Request, error)
	UpdateRequestStatus(requestID primitive.ObjectID, status string) (*schema.Request, error)
	ListResponses(requestID primitive.ObjectID) ([]schema.Response, error)
	GetResponse(requestID, responseID primitive.ObjectID) (*schema.Response, error)

	ReconcileResponseCounts() (int64, error)
}

// CreateRequest inserts a new help request document. The caller provides
// the requester snapshot; status and the response sequence are reset
// here so every request starts pending and empty.
func (m *mongoDB) CreateRequest(request schema.Request) (*schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	now := time.Now().UTC()
	request.ID = primitive.NewObjectID()
	request.Status = schema.RequestStatusPending
	request.Responses = []schema.Response{}
	request.ResponseCount = 0
	request.CreatedAt = now
	request.UpdatedAt = now
	if request.Tags == nil {
		request.Tags = []string{}
	}

	if _, err := c.InsertOne(ctx, request); err != nil {
		return nil, err
	}

	return &request, nil
}

// ListRequests returns a newest-first page of requests along with the
// total count of documents matching the filter.
func (m *mongoDB) ListRequests(filter RequestFilter) ([]schema.Request, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	query := bson.M{}
	if filter.Category != "" && filter.Category != "all" {
		query["category"] = filter.Category
	}
	if filter.Urgency != "" && filter.Urgency != "all" {
		query["urgency"] = filter.Urgency
	}
	if filter.Status != "" && filter.Status != "all" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
			bson.M{"tags": pattern},
		}
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	requests := make([]schema.Request, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, 0, err
	}

	total, err := c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ListAccountRequests returns all requests filed by an account,
// newest first.
func (m *mongoDB) ListAccountRequests(accountNumber string) ([]schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	cursor, err := c.Find(ctx, bson.M{"requester": accountNumber},
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, err
	}

	requests := make([]schema.Request, 0)
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// GetRequest finds a request by its ID
func (m *mongoDB) GetRequest(requestID primitive.ObjectID) (*schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	var request schema.Request
	if err := c.FindOne(ctx, bson.M{"_id": requestID}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// AppendResponse appends a response to a request in a single update so
// concurrent responders never lose an append: the array push and the
// cached counter increment ride the same per-document write.
func (m *mongoDB) AppendResponse(requestID primitive.ObjectID, response schema.Response) (*schema.Request, error) {
	if response.Message == "" && !response.HasAttachment() {
		return nil, ErrEmptyResponse
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	now := time.Now().UTC()
	response.ID = primitive.NewObjectID()
	response.RespondedAt = now

	update := bson.M{
		"$push": bson.M{"responses": response},
		"$inc":  bson.M{"response_count": 1},
		"$set":  bson.M{"updated_at": now},
	}

	var request schema.Request
	err := c.FindOneAndUpdate(ctx, bson.M{"_id": requestID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"request_id": requestID.Hex(),
			"error":      err,
		}).Error("append response")
		return nil, err
	}

	return &request, nil
}

// UpdateRequestStatus overwrites the status of a request. Transitions
// are unconstrained; whoever calls decides the new state.
func (m *mongoDB) UpdateRequestStatus(requestID primitive.ObjectID, status string) (*schema.Request, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC(),
		},
	}

	var request schema.Request
	err := c.FindOneAndUpdate(ctx, bson.M{"_id": requestID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// ListResponses returns the embedded response sequence of a request in
// insertion order.
func (m *mongoDB) ListResponses(requestID primitive.ObjectID) ([]schema.Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	var result struct {
		Responses []schema.Response `bson:"responses"`
	}
	err := c.FindOne(ctx, bson.M{"_id": requestID},
		options.FindOne().SetProjection(bson.M{"responses": 1})).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if result.Responses == nil {
		return []schema.Response{}, nil
	}

	return result.Responses, nil
}

// GetResponse finds a single embedded response of a request
func (m *mongoDB) GetResponse(requestID, responseID primitive.ObjectID) (*schema.Response, error) {
	responses, err := m.ListResponses(requestID)
	if err != nil {
		return nil, err
	}

	for i := range responses {
		if responses[i].ID == responseID {
			return &responses[i], nil
		}
	}

	return nil, ErrResponseNotFound
}

// ReconcileResponseCounts rewrites every cached response_count to the
// length of the embedded array. This is the compensating sweep behind
// the best-effort counter updates.
func (m *mongoDB) ReconcileResponseCounts() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	result, err := c.UpdateMany(ctx, bson.M{}, mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{"response_count": bson.M{"$size": "$responses"}}}},
	})
	if err != nil {
		return 0, err
	}

	return result.ModifiedCount, nil
}
