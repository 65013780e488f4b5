package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"orders/internal/core/domain/model/catalog"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const problemContentType = "application/problem+json"

// Problem is an RFC 9457 problem document.
type Problem struct {
	Type   string              `json:"type,omitempty"`
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Detail string              `json:"detail,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func writeProblem(ctx echo.Context, p Problem) error {
	if p.Title == "" {
		p.Title = http.StatusText(p.Status)
	}
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return ctx.Blob(p.Status, problemContentType, body)
}

func badRequest(ctx echo.Context, detail string) error {
	return writeProblem(ctx, Problem{Status: http.StatusBadRequest, Detail: detail})
}

// writeError maps an error coming out of a use case to a response. Errors
// without a dedicated mapping are logged and reported as 500.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var (
		validation errs.ValidationErrors
		missing    *catalog.ProductNotFoundError
	)

	switch {
	case errors.As(err, &validation):
		return writeProblem(ctx, Problem{
			Type:   "https://tools.ietf.org/html/rfc9110#section-15.5.1",
			Status: http.StatusBadRequest,
			Detail: errs.ErrValidationFailed.Error(),
			Errors: validation.ByField(),
		})
	case errors.As(err, &missing):
		return badRequest(ctx, missing.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeProblem(ctx, Problem{Status: http.StatusNotFound})
	}

	s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
		"method", ctx.Request().Method,
		"path", ctx.Path(),
		"error", err,
	)
	return writeProblem(ctx, Problem{Status: http.StatusInternalServerError, Detail: "An unexpected error occurred"})
}
