package api

import "github.com/campusconnect-inc/campus-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid email or password",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: store.ErrAccountNotFound.Error(),

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrEmptyResponse.Error(),
		1202: store.ErrResponseNotFound.Error(),
		1203: store.ErrAttachmentNotFound.Error(),
		1204: "invalid request status",
		1205: "only the requester may update the status",

		1300: store.ErrConversationNotFound.Error(),
		1301: store.ErrNotParticipant.Error(),
		1302: store.ErrParticipantExists.Error(),
		1303: "a direct conversation has exactly two participants",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidCredentials         = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorRequestNotFound      = errorJSON(1200)
	errorEmptyResponse        = errorJSON(1201)
	errorResponseNotFound     = errorJSON(1202)
	errorAttachmentNotFound   = errorJSON(1203)
	errorInvalidRequestStatus = errorJSON(1204)
	errorNotRequester         = errorJSON(1205)

	errorConversationNotFound   = errorJSON(1300)
	errorNotParticipant         = errorJSON(1301)
	errorParticipantExists      = errorJSON(1302)
	errorDirectParticipantCount = errorJSON(1303)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
