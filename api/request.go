package api

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campusconnect-inc/campus-api/external/filestore"
	"github.com/campusconnect-inc/campus-api/schema"
	"github.com/campusconnect-inc/campus-api/store"
)

// createRequest is the API for posting a new help request. The
// requester display snapshot is taken from the authenticated account
// and never refreshed afterwards.
func (s *Server) createRequest(c *gin.Context) {
	account := currentAccount(c)
	if account == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		Urgency     string   `json:"urgency"`
		Location    string   `json:"location"`
		Tags        []string `json:"tags"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Title == "" || params.Description == "" ||
		!schema.IsValidCategory(params.Category) || !schema.IsValidUrgency(params.Urgency) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	tags := make([]string, 0, len(params.Tags))
	for _, t := range params.Tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			tags = append(tags, t)
		}
	}

	request, err := s.mongoStore.CreateRequest(schema.Request{
		Title:         strings.TrimSpace(params.Title),
		Description:   params.Description,
		Requester:     account.AccountNumber,
		RequesterName: account.Profile.Name,
		RequesterDetails: schema.RequesterDetails{
			Year:   account.Profile.Year,
			Major:  account.Profile.Major,
			Avatar: account.Profile.Avatar,
		},
		Category: params.Category,
		Urgency:  params.Urgency,
		Location: params.Location,
		Tags:     tags,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"request": request})
}

// listRequests is the API for browsing help requests with filters and
// pagination
func (s *Server) listRequests(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	requests, total, err := s.mongoStore.ListRequests(store.RequestFilter{
		Category: c.Query("category"),
		Urgency:  c.Query("urgency"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests":    requests,
		"total":       total,
		"totalPages":  int64(math.Ceil(float64(total) / float64(limit))),
		"currentPage": page,
	})
}

// listAccountRequests is the API for listing the requests filed by one
// account
func (s *Server) listAccountRequests(c *gin.Context) {
	requests, err := s.mongoStore.ListAccountRequests(c.Param("accountNumber"))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// respondToRequest is the API for replying to a help request, optionally
// with an uploaded file. A response needs a message or an attachment.
// The responses-given counter on the responder profile is updated in the
// background and never blocks the append.
func (s *Server) respondToRequest(c *gin.Context) {
	logger := log.WithField("api", "respondToRequest")

	account := currentAccount(c)
	if account == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	requestID, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	}

	response := schema.Response{
		Responder:     account.AccountNumber,
		ResponderName: account.Profile.Name,
	}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		response.Message = c.PostForm("message")

		if file, err := c.FormFile("file"); err == nil && file != nil {
			src, err := file.Open()
			if err != nil {
				abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
				return
			}
			defer src.Close()

			ref, err := s.fileStore.Save(file.Filename, src)
			if err != nil {
				abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
				return
			}

			response.StorageRef = ref
			response.FileName = file.Filename
			response.FileType = fileTypeOf(file.Header.Get("Content-Type"))
		}
	} else {
		var params struct {
			Message string `json:"message"`
		}
		if err := c.BindJSON(&params); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
			return
		}
		response.Message = params.Message
	}

	request, err := s.mongoStore.AppendResponse(requestID, response)
	if err != nil {
		switch err {
		case store.ErrEmptyResponse:
			abortWithEncoding(c, http.StatusBadRequest, errorEmptyResponse)
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	// best-effort counter on the responder profile; the append already
	// succeeded so a failure here is only logged
	if s.background != nil {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "count_response_given",
			Args: []tasks.Arg{{Type: "string", Value: account.AccountNumber}},
		}); err != nil {
			logger.WithError(err).Error("enqueue responses-given counter")
		}
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

// updateRequestStatus is the API for overwriting a request status. Any
// state is reachable from any other.
func (s *Server) updateRequestStatus(c *gin.Context) {
	account := currentAccount(c)
	if account == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	requestID, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	}

	var params struct {
		Status string `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !schema.IsValidRequestStatus(params.Status) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidRequestStatus)
		return
	}

	if viper.GetBool("server.enforce_status_ownership") {
		request, err := s.mongoStore.GetRequest(requestID)
		if err != nil {
			if err == store.ErrRequestNotFound {
				abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
				return
			}
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		if request.Requester != account.AccountNumber {
			abortWithEncoding(c, http.StatusForbidden, errorNotRequester)
			return
		}
	}

	request, err := s.mongoStore.UpdateRequestStatus(requestID, params.Status)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

// listResponses is the API for reading the full response sequence of a
// request
func (s *Server) listResponses(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	}

	responses, err := s.mongoStore.ListResponses(requestID)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"responses": responses})
}

// downloadResponseFile is the API for streaming a response attachment
// back to the client
func (s *Server) downloadResponseFile(c *gin.Context) {
	requestID, err := primitive.ObjectIDFromHex(c.Param("requestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	}
	responseID, err := primitive.ObjectIDFromHex(c.Param("responseID"))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorResponseNotFound)
		return
	}

	response, err := s.mongoStore.GetResponse(requestID, responseID)
	if err != nil {
		switch err {
		case store.ErrRequestNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		case store.ErrResponseNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorResponseNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	if !response.HasAttachment() {
		abortWithEncoding(c, http.StatusNotFound, errorAttachmentNotFound)
		return
	}

	reader, size, err := s.fileStore.Open(response.StorageRef)
	if err != nil {
		if err == filestore.ErrFileNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAttachmentNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, size, "application/octet-stream", reader, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, response.FileName),
	})
}

// fileTypeOf maps an upload content type to the stored attachment kind
func fileTypeOf(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return schema.FileTypeImage
	case strings.HasPrefix(contentType, "video/"):
		return schema.FileTypeVideo
	default:
		return schema.FileTypeFile
	}
}
