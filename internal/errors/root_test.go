package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexYaroshuk/chat-CBD2/api"
)

func runGlobalErrorHandler(t *testing.T, err error) (int, api.ErrorResponse) {
	t.Helper()
	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/", nil)
	recorder := httptest.NewRecorder()
	ctx := e.NewContext(request, recorder)

	GlobalErrorHandler(err, ctx)

	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestGlobalErrorHandler(t *testing.T) {
	t.Run("uses the provider status and message when present", func(t *testing.T) {
		err := &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests, Message: "quota exceeded"}

		code, body := runGlobalErrorHandler(t, err)

		assert.Equal(t, http.StatusTooManyRequests, code)
		assert.Equal(t, "quota exceeded", body.Error)
	})

	t.Run("digs the provider error out of wrapping", func(t *testing.T) {
		err := pkgerrors.Wrap(&openai.APIError{HTTPStatusCode: http.StatusBadRequest, Message: "bad prompt"}, "completion")

		code, body := runGlobalErrorHandler(t, err)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "bad prompt", body.Error)
	})

	t.Run("app errors keep their own status", func(t *testing.T) {
		code, body := runGlobalErrorHandler(t, &BadRequestError{Message: "Missing required fields"})

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Missing required fields", body.Error)
	})

	t.Run("anything else collapses to a generic 500", func(t *testing.T) {
		code, body := runGlobalErrorHandler(t, pkgerrors.New("database exploded"))

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "An unknown error occurred", body.Error)
	})
}

func TestUpstreamErrorDetails(t *testing.T) {
	t.Run("provider error without a status defaults to 500", func(t *testing.T) {
		code, message, ok := UpstreamErrorDetails(&openai.APIError{Message: "boom"})

		assert.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "boom", message)
	})

	t.Run("nil and unrelated errors are not upstream errors", func(t *testing.T) {
		_, _, ok := UpstreamErrorDetails(nil)
		assert.False(t, ok)

		_, _, ok = UpstreamErrorDetails(pkgerrors.New("unrelated"))
		assert.False(t, ok)
	})
}
