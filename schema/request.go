package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RequestCollection = "requests"
)

const (
	RequestStatusPending    = "pending"
	RequestStatusInProgress = "in-progress"
	RequestStatusComplete   = "complete"
)

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

const (
	FileTypeImage = "Image"
	FileTypeVideo = "Video"
	FileTypeFile  = "File"
)

// RequestCategories is the closed set of categories a help request
// can be filed under.
var RequestCategories = []string{
	"Study Material",
	"Study Partner",
	"Project Team",
	"Textbook",
	"Equipment",
	"Tutoring",
	"Study Group",
	"Other",
}

func IsValidCategory(category string) bool {
	for _, c := range RequestCategories {
		if c == category {
			return true
		}
	}
	return false
}

func IsValidUrgency(urgency string) bool {
	switch urgency {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

func IsValidRequestStatus(status string) bool {
	switch status {
	case RequestStatusPending, RequestStatusInProgress, RequestStatusComplete:
		return true
	}
	return false
}

// RequesterDetails is the display snapshot of a requester taken at
// creation time.
type RequesterDetails struct {
	Year   string `bson:"year" json:"year"`
	Major  string `bson:"major" json:"major"`
	Avatar string `bson:"avatar" json:"avatar"`
}

// Response is a reply embedded in its parent request. It never outlives
// the request and is immutable once appended.
type Response struct {
	ID            primitive.ObjectID `bson:"id" json:"id"`
	Responder     string             `bson:"responder" json:"responder"`
	ResponderName string             `bson:"responder_name" json:"responder_name"`
	Message       string             `bson:"message" json:"message"`
	StorageRef    string             `bson:"storage_ref,omitempty" json:"-"`
	FileName      string             `bson:"file_name,omitempty" json:"file_name,omitempty"`
	FileType      string             `bson:"file_type,omitempty" json:"file_type,omitempty"`
	RespondedAt   time.Time          `bson:"responded_at" json:"responded_at"`
}

// HasAttachment reports whether a stored file rides along the response.
func (r Response) HasAttachment() bool {
	return r.StorageRef != ""
}

type Request struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description" json:"description"`
	Requester        string             `bson:"requester" json:"requester"`
	RequesterName    string             `bson:"requester_name" json:"requester_name"`
	RequesterDetails RequesterDetails   `bson:"requester_details" json:"requester_details"`
	Category         string             `bson:"category" json:"category"`
	Urgency          string             `bson:"urgency" json:"urgency"`
	Status           string             `bson:"status" json:"status"`
	Location         string             `bson:"location" json:"location"`
	Tags             []string           `bson:"tags" json:"tags"`
	Responses        []Response         `bson:"responses" json:"responses"`
	ResponseCount    int                `bson:"response_count" json:"response_count"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}
