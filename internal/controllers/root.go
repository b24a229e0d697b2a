package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	errs "github.com/AlexYaroshuk/chat-CBD2/internal/errors"
	"github.com/AlexYaroshuk/chat-CBD2/internal/services"
)

// AllowedOrigin is the only browser origin this backend serves. Requests
// without an Origin header (curl, server-to-server) pass through.
const AllowedOrigin = "https://chat-cbd.vercel.app"

var validate = validator.New()

func WireControllers(e *echo.Echo, svc *services.Services) {
	e.HTTPErrorHandler = errs.GlobalErrorHandler
	e.Use(originCheckMiddleware)
	wireMessages(e, svc)
}

// originCheckMiddleware rejects cross-origin requests from anywhere but the
// allowed origin before they reach a handler. Echo's stock CORS middleware
// only withholds the response headers and lets the request run.
func originCheckMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		origin := ctx.Request().Header.Get(echo.HeaderOrigin)
		if origin != "" && origin != AllowedOrigin {
			return echo.NewHTTPError(http.StatusForbidden, "origin not allowed")
		}

		response := ctx.Response()
		if origin == AllowedOrigin {
			response.Header().Set(echo.HeaderAccessControlAllowOrigin, AllowedOrigin)
			response.Header().Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")
			response.Header().Set(echo.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
		}
		if ctx.Request().Method == http.MethodOptions {
			return ctx.NoContent(http.StatusNoContent)
		}
		return next(ctx)
	}
}

func withValidJsonBody[T any](handler func(ctx echo.Context, body *T) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		body := new(T)
		if err := ctx.Bind(body); err != nil {
			return &errs.InvalidJsonError{}
		}
		if err := validate.Struct(body); err != nil {
			return &errs.BadRequestError{Message: "Missing required fields"}
		}
		return handler(ctx, body)
	}
}
