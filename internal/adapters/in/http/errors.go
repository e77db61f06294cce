package http

import (
	"errors"
	"net/http"

	"pastelstand/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	codeNotFound       = "errors.object.not_found"
	codeInvalidRequest = "errors.request.invalid"
	codeInternal       = "errors.internal"
)

// respondError translates core errors into HTTP responses. Business-rule
// violations keep their structured code/property/params triple so clients
// can render localized messages; everything else collapses to a generic
// payload.
func respondError(ctx echo.Context, err error) error {
	if violations, ok := errs.UnwrapBusinessErrors(err); ok {
		items := make([]errorItem, 0, len(violations))
		for _, v := range violations {
			items = append(items, errorItem{
				Code:     v.Code,
				Property: v.Property,
				Params:   v.Params,
			})
		}
		return ctx.JSON(businessStatus(violations), errorResponse{Errors: items})
	}

	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, errorResponse{Errors: []errorItem{{
			Code:     codeNotFound,
			Property: notFound.ParamName,
		}}})
	}

	if errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return respondInvalid(ctx)
	}

	return ctx.JSON(http.StatusInternalServerError, errorResponse{Errors: []errorItem{{
		Code: codeInternal,
	}}})
}

// businessStatus picks the response status for a violation set: the
// not-found family maps to 404, name conflicts to 409, the rest to 400.
func businessStatus(violations errs.BusinessErrors) int {
	allNotFound := true
	for _, v := range violations {
		if !v.IsNotFound() {
			allNotFound = false
			break
		}
	}
	if allNotFound {
		return http.StatusNotFound
	}

	for _, v := range violations {
		if v.Code == errs.CodeFlavorNameExists {
			return http.StatusConflict
		}
	}

	return http.StatusBadRequest
}

// respondInvalid reports a malformed request body or parameter.
func respondInvalid(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Errors: []errorItem{{
		Code: codeInvalidRequest,
	}}})
}
