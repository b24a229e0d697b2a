package errors

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/sashabaranov/go-openai"

	"github.com/AlexYaroshuk/chat-CBD2/api"
)

const unknownErrorMessage = "An unknown error occurred"

func LogAndExit(e any) {
	if e == nil {
		return
	}
	err, ok := e.(error)
	if ok {
		fmt.Println("panic is received - exiting for the reason: ", err)
	} else {
		fmt.Println("panic is received - exiting for the reason: ", errors.New("unknown error"))
	}
	os.Exit(1)
}

// GlobalErrorHandler sends the single error response of a request. Upstream
// provider errors keep their own status and message; everything else that is
// not an AppError collapses to a generic 500.
func GlobalErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code, message := getErrorDetails(err)
	_ = c.JSON(code, api.ErrorResponse{Error: message})
}

func getErrorDetails(err error) (int, string) {
	if code, message, ok := UpstreamErrorDetails(err); ok {
		return code, message
	}

	var appErr AppError
	if ok := errors.As(err, &appErr); ok {
		errorData := appErr.GetErrorData()
		return errorData.Code, errorData.Message
	}
	if httpError, ok := err.(*echo.HTTPError); ok {
		if message, ok := httpError.Message.(string); ok {
			return httpError.Code, message
		}
		return httpError.Code, http.StatusText(httpError.Code)
	}
	return http.StatusInternalServerError, unknownErrorMessage
}

// UpstreamErrorDetails digs a nested provider error payload out of err. The
// reported status falls back to 500 when the provider carried none.
func UpstreamErrorDetails(err error) (int, string, bool) {
	if err == nil {
		return 0, "", false
	}
	var apiErr *openai.APIError
	if ok := errors.As(err, &apiErr); ok {
		code := apiErr.HTTPStatusCode
		if code == 0 {
			code = http.StatusInternalServerError
		}
		message := apiErr.Message
		if message == "" {
			message = unknownErrorMessage
		}
		return code, message, true
	}
	var reqErr *openai.RequestError
	if ok := errors.As(err, &reqErr); ok {
		code := reqErr.HTTPStatusCode
		if code == 0 {
			code = http.StatusInternalServerError
		}
		return code, reqErr.Error(), true
	}
	return 0, "", false
}

type ErrorData struct {
	Code    int    `json:"code"`
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

type AppError interface {
	Error() string
	GetErrorData() ErrorData
}

type InternalServerError struct{}

func (s InternalServerError) Error() string {
	return "InternalServerError"
}

func (s InternalServerError) GetErrorData() ErrorData {
	return ErrorData{Type: "InternalServerError", Code: http.StatusInternalServerError, Message: unknownErrorMessage}
}

type InvalidJsonError struct{}

func (s InvalidJsonError) Error() string {
	return "InvalidJsonError"
}

func (s InvalidJsonError) GetErrorData() ErrorData {
	return ErrorData{Type: "InvalidJsonError", Code: http.StatusBadRequest, Message: "Invalid JSON"}
}

type BadRequestError struct {
	Message string
}

func (s BadRequestError) Error() string {
	return "BadRequestError"
}

func (s BadRequestError) GetErrorData() ErrorData {
	message := s.Message
	if message == "" {
		message = "Invalid request"
	}
	return ErrorData{Type: "BadRequestError", Code: http.StatusBadRequest, Message: message}
}

// FetchError wraps a failure to download a provider-hosted image.
type FetchError struct {
	Url    string
	Status int
	Cause  error
}

func (s *FetchError) Error() string {
	if s.Cause != nil {
		return fmt.Sprintf("fetching %s: %v", s.Url, s.Cause)
	}
	return fmt.Sprintf("fetching %s: status %d", s.Url, s.Status)
}

func (s *FetchError) Unwrap() error {
	return s.Cause
}

func (s *FetchError) GetErrorData() ErrorData {
	return ErrorData{Type: "FetchError", Code: http.StatusInternalServerError, Message: s.Error()}
}

// SignError wraps a failure to produce a signed read url for a stored object.
type SignError struct {
	Object string
	Cause  error
}

func (s *SignError) Error() string {
	return fmt.Sprintf("signing %s: %v", s.Object, s.Cause)
}

func (s *SignError) Unwrap() error {
	return s.Cause
}

func (s *SignError) GetErrorData() ErrorData {
	return ErrorData{Type: "SignError", Code: http.StatusInternalServerError, Message: s.Error()}
}
