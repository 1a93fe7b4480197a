package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campusconnect-inc/campus-api/api/mocks"
	"github.com/campusconnect-inc/campus-api/schema"
	"github.com/campusconnect-inc/campus-api/store"
)

func testAccount() *schema.Account {
	return &schema.Account{
		AccountNumber: "account-requester",
		Email:         "rina@campus.edu",
		Profile: schema.AccountProfile{
			AccountNumber: "account-requester",
			Name:          "Rina Chen",
			Year:          "Junior",
			Major:         "Mathematics",
			Avatar:        "/placeholder.svg",
		},
	}
}

func newTestRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.POST("/requests", s.createRequest)
	router.GET("/requests", s.listRequests)
	router.POST("/requests/:requestID/respond", s.respondToRequest)
	router.PATCH("/requests/:requestID/status", s.updateRequestStatus)
	router.GET("/requests/:requestID/responses", s.listResponses)
	return router
}

func TestCreateRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCampusCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)
	m.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(func(r schema.Request) (*schema.Request, error) {
		assert.Equal(t, "Need a calculus textbook", r.Title)
		assert.Equal(t, "account-requester", r.Requester)
		assert.Equal(t, "Rina Chen", r.RequesterName)
		assert.Equal(t, "Junior", r.RequesterDetails.Year)
		assert.Equal(t, []string{"calculus", "textbook"}, r.Tags)

		r.ID = primitive.NewObjectID()
		r.Status = schema.RequestStatusPending
		return &r, nil
	}).Times(1)

	body := `{
		"title": "Need a calculus textbook",
		"description": "Stewart 8th edition",
		"category": "Textbook",
		"urgency": "high",
		"tags": ["Calculus", " Textbook "]
	}`

	req := httptest.NewRequest("POST", "/requests", strings.NewReader(body))
	w := httptest.NewRecorder()
	newTestRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")
}

func TestCreateRequestInvalidCategory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCampusCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)

	body := `{
		"title": "Need a calculus textbook",
		"description": "Stewart 8th edition",
		"category": "Contraband",
		"urgency": "high"
	}`

	req := httptest.NewRequest("POST", "/requests", strings.NewReader(body))
	w := httptest.NewRecorder()
	newTestRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1010), jResp.Code, "wrong error code")
}

func TestListRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCampusCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)
	m.EXPECT().ListRequests(store.RequestFilter{
		Category: "Textbook",
		Page:     1,
		Limit:    10,
	}).Return([]schema.Request{{Title: "Need Notes"}}, int64(25), nil).Times(1)

	req := httptest.NewRequest("GET", "/requests?category=Textbook", nil)
	w := httptest.NewRecorder()
	newTestRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]json.RawMessage
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "25", string(jResp["total"]), "wrong total")
	assert.Equal(t, "3", string(jResp["totalPages"]), "wrong total pages")
	assert.Equal(t, "1", string(jResp["currentPage"]), "wrong current page")
}

func TestRespondToRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCampusCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	requestID := primitive.NewObjectID()

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)
	m.EXPECT().AppendResponse(requestID, gomock.Any()).DoAndReturn(
		func(id primitive.ObjectID, r schema.Response) (*schema.Request, error) {
			assert.Equal(t, "account-requester", r.Responder)
			assert.Equal(t, "I have a spare copy", r.Message)
			return &schema.Request{ID: id, ResponseCount: 1}, nil
		}).Times(1)

	req := httptest.NewRequest("POST", "/requests/"+requestID.Hex()+"/respond",
		strings.NewReader(`{"message": "I have a spare copy"}`))
	w := httptest.NewRecorder()
	newTestRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestRespondToRequestEmpty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCampusCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)
	m.EXPECT().AppendResponse(gomock.Any(), gomock.Any()).Return(nil, store.ErrEmptyResponse).Times(1)

	req := httptest.NewRequest("POST", "/requests/"+primitive.NewObjectID().Hex()+"/respond",
		strings.NewReader(`{"message": ""}`))
	w := httptest.NewRecorder()
	newTestRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1201), jResp.Code, "wrong error code")
}

func TestRespondToRequestBadID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCampusCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)

	req := httptest.NewRequest("POST", "/requests/not-a-hex-id/respond",
		strings.NewReader(`{"message": "hello"}`))
	w := httptest.NewRecorder()
	newTestRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestUpdateRequestStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCampusCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	requestID := primitive.NewObjectID()

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)
	m.EXPECT().UpdateRequestStatus(requestID, schema.RequestStatusComplete).Return(&schema.Request{
		ID:     requestID,
		Status: schema.RequestStatusComplete,
	}, nil).Times(1)

	req := httptest.NewRequest("PATCH", "/requests/"+requestID.Hex()+"/status",
		strings.NewReader(`{"status": "complete"}`))
	w := httptest.NewRecorder()
	newTestRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdateRequestStatusInvalid(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCampusCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)

	req := httptest.NewRequest("PATCH", "/requests/"+primitive.NewObjectID().Hex()+"/status",
		strings.NewReader(`{"status": "done"}`))
	w := httptest.NewRecorder()
	newTestRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1204), jResp.Code, "wrong error code")
}

func TestUpdateRequestStatusEnforcedOwnership(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCampusCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	viper.Set("server.enforce_status_ownership", true)
	defer viper.Set("server.enforce_status_ownership", false)

	requestID := primitive.NewObjectID()

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)
	m.EXPECT().GetRequest(requestID).Return(&schema.Request{
		ID:        requestID,
		Requester: "account-somebody-else",
	}, nil).Times(1)

	req := httptest.NewRequest("PATCH", "/requests/"+requestID.Hex()+"/status",
		strings.NewReader(`{"status": "complete"}`))
	w := httptest.NewRecorder()
	newTestRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1205), jResp.Code, "wrong error code")
}

func TestListResponsesMissingRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCampusCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		store:      a,
		mongoStore: m,
	}

	a.EXPECT().GetAccount(gomock.Any()).Return(testAccount(), nil).Times(1)
	m.EXPECT().ListResponses(gomock.Any()).Return(nil, store.ErrRequestNotFound).Times(1)

	req := httptest.NewRequest("GET", "/requests/"+primitive.NewObjectID().Hex()+"/responses", nil)
	w := httptest.NewRecorder()
	newTestRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1200), jResp.Code, "wrong error code")
}
