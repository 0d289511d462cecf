package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes, carried over from the backend's numeric scheme. The set is
// closed: every error a controller can surface is one of these pairs.
const (
	CodeWrongRequestType = "100"
	CodeMissingFields    = "110"
	CodeBadRequestData   = "199"
	CodeBackendTrouble   = "200"
	CodeSchemaBroken     = "201"
	CodeImageDelete      = "203"
	CodeUsernameTaken    = "301"
	CodeEmailTaken       = "302"
	CodeBadCredentials   = "303"
	CodeUserNotFound     = "304"
	CodeWrongPassword    = "305"
	CodeGroupNotFound    = "306"
	CodeAlreadyInGroup   = "307"
	CodeNotInGroup       = "308"
	CodeTaskNotFound     = "309"
	CodeNotGroupMember   = "310"
	CodeDuplicateInvite  = "311"
	CodeInvalidFileType  = "312"
	CodeImageNotFound    = "313"
	CodeInviteResolved   = "314"
	CodeNotInvitee       = "315"
)

// DomainError is the typed (message, code) pair every controller operation
// surfaces on a rule violation. Callers match on the value, not the text.
type DomainError struct {
	Code    string `json:"error_no"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// New creates a DomainError outside the predefined set. Reserved for wrapping
// request-level failures; domain code should use the variables below.
func New(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Predefined errors
var (
	ErrWrongRequestType = New(CodeWrongRequestType, "Wrong request type!")
	ErrMissingFields    = New(CodeMissingFields, "Required fields are empty!")
	ErrBadRequestData   = New(CodeBadRequestData, "Failed to retrieve data from request!")
	ErrBackendTrouble   = New(CodeBackendTrouble, "Trouble with backend! Sorry, but please notify the devs!")
	ErrSchemaBroken     = New(CodeSchemaBroken, "Backend Error: Not Been Configured Correctly, Ask Developers")
	ErrImageDelete      = New(CodeImageDelete, "Backend Error: Unable to delete image.")
	ErrUsernameTaken    = New(CodeUsernameTaken, "Backend Error: Username already exists")
	ErrEmailTaken       = New(CodeEmailTaken, "Backend Error: Email already exists")
	ErrBadCredentials   = New(CodeBadCredentials, "Backend Error: Email or Password is incorrect")
	ErrUserNotFound     = New(CodeUserNotFound, "Backend Error: User does not exist")
	ErrWrongPassword    = New(CodeWrongPassword, "Backend Error: Password is incorrect")
	ErrGroupNotFound    = New(CodeGroupNotFound, "Backend Error: Group does not exist")
	ErrAlreadyInGroup   = New(CodeAlreadyInGroup, "Backend Error: User already in group")
	ErrNotInGroup       = New(CodeNotInGroup, "Backend Error: User not in group")
	ErrNotGroupOwner    = New(CodeNotInGroup, "Backend Error: User is not the owner of the group")
	ErrInviteNotFound   = New(CodeNotInGroup, "Backend Error: Invite does not exist")
	ErrTaskNotFound     = New(CodeTaskNotFound, "Backend Error: Task does not exist")
	ErrNotGroupMember   = New(CodeNotGroupMember, "Backend Error: User is not in the group")
	ErrDuplicateInvite  = New(CodeDuplicateInvite, "Backend Error: Invitee already has an invite.")
	ErrInvalidFileType  = New(CodeInvalidFileType, "Backend Error: Invalid file type")
	ErrImageNotFound    = New(CodeImageNotFound, "Backend Error: Image does not exist")
	ErrInviteResolved   = New(CodeInviteResolved, "Backend Error: Invite has already been resolved")
	ErrNotInvitee       = New(CodeNotInvitee, "Backend Error: Invite is not addressed to this user")
)

// httpStatus maps an error code to the HTTP status the wire layer reports.
func httpStatus(code string) int {
	switch code {
	case CodeUserNotFound, CodeGroupNotFound, CodeTaskNotFound, CodeImageNotFound:
		return http.StatusNotFound
	case CodeUsernameTaken, CodeEmailTaken, CodeAlreadyInGroup, CodeDuplicateInvite, CodeInviteResolved:
		return http.StatusConflict
	case CodeBadCredentials, CodeWrongPassword:
		return http.StatusUnauthorized
	case CodeNotInGroup, CodeNotGroupMember, CodeNotInvitee:
		return http.StatusForbidden
	case CodeWrongRequestType, CodeMissingFields, CodeBadRequestData, CodeInvalidFileType:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the error envelope for any error a service returned. Errors
// outside the domain taxonomy collapse into the generic backend-trouble code
// so internal detail never reaches the caller.
func Respond(c *gin.Context, err error) {
	if domainErr, ok := err.(*DomainError); ok {
		c.JSON(httpStatus(domainErr.Code), domainErr)
		return
	}
	c.JSON(http.StatusInternalServerError, ErrBackendTrouble)
}

// Unauthorized sends a 401 with the generic credential error.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, ErrBadCredentials)
}

// BadRequest sends a 400 for unparseable or incomplete request bodies.
func BadRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrMissingFields)
}
