package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumni/internal/pkg/apperrors"
)

type envelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code     string          `json:"code"`
		Message  string          `json:"message"`
		Field    string          `json:"field"`
		Severity string          `json:"severity"`
		Details  json.RawMessage `json:"details"`
	} `json:"error"`
}

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) { HandleAPIError(c, err) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"invalid id", apperrors.NewInvalidIdentifierError("Invalid program ID", "abc"), 400, "VAL_002", "Invalid program ID"},
		{"mentor kind", fmt.Errorf("route: %w", apperrors.NewInvalidMentorTypeError("coach", []string{"faculty", "alumni"})), 400, "VAL_003", "Invalid mentor type"},
		{"malformed json", apperrors.NewBadRequestError("Malformed JSON body"), 400, "BAD_REQUEST", "Malformed JSON body"},
		{"missing reference", apperrors.ErrReferencedRecordMissing, 400, "BAD_REQUEST", "Referenced record does not exist"},
		{"not found", fmt.Errorf("error getting mentorship program: %w", apperrors.ErrMentorshipProgramNotFound), 404, "RES_001", "Mentorship program not found"},
		{"duplicate", apperrors.ErrEmailAlreadyExists, 409, "RES_002", "Email already exists"},
		{"conflict", apperrors.NewConflictError("User already exists"), 409, "RES_004", "User already exists"},
		{"unknown", errors.New("pq: connection refused on 10.0.0.3"), 500, "SRV_001", "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serveError(t, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.message, body.Error.Message)
			assert.NotContains(t, w.Body.String(), "10.0.0.3")
		})
	}
}

func TestHandleAPIErrorListsEveryViolation(t *testing.T) {
	err := apperrors.NewValidationError([]apperrors.FieldViolation{
		{Field: "mentorId", Message: "mentorId is required"},
		{Field: "title", Message: "title must be a string"},
	})

	w, body := serveError(t, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VAL_001", body.Error.Code)
	assert.Empty(t, body.Error.Field)

	var violations []apperrors.FieldViolation
	require.NoError(t, json.Unmarshal(body.Error.Details, &violations))
	assert.Len(t, violations, 2)
	assert.Equal(t, "title", violations[1].Field)
}

func TestHandleAPIErrorInvalidIdentifierDetails(t *testing.T) {
	_, body := serveError(t, apperrors.NewInvalidIdentifierError("Invalid mentor ID", "4.2"))

	assert.Equal(t, "id", body.Error.Field)
	assert.JSONEq(t, `{"value":"4.2"}`, string(body.Error.Details))
}

func TestRecoveryAndNoRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.NoRoute(NoRoute)
	r.GET("/panic", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SRV_001")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RES_001")
}
