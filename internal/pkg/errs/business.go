package errs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBusinessRule is the sentinel error for expected business-rule violations.
// Handlers return errors wrapping this sentinel instead of raising; transport
// adapters translate them into structured responses.
var ErrBusinessRule = errors.New("business rule violated")

// Stable machine-readable codes for business-rule violations. The core never
// renders human-readable messages; callers resolve codes (plus params) into
// localized text.
const (
	CodeCustomerNameRequired = "errors.order.customer_name_required"
	CodeCustomerNotFound     = "errors.customer.not_found"
	CodeCustomerNameMismatch = "errors.customer.name_mismatch"

	CodeFlavorNameRequired = "errors.flavor.name_required"
	CodeFlavorNameExists   = "errors.flavor.name_exists"
	CodeFlavorNotFound     = "errors.flavor.not_found"
	CodeFlavorOutOfStock   = "errors.flavor.out_of_stock"

	CodeOrderMustHaveItems           = "errors.order.must_have_items"
	CodeOrderNotFound                = "errors.order.not_found"
	CodeOrderItemNotFound            = "errors.order.item_not_found"
	CodeOrderItemAlreadyCompleted    = "errors.order.item_completed"
	CodeOrderItemAlreadyAtFinalStage = "errors.order.item_already_final"
	CodeInvalidStatusTransition      = "errors.order.invalid_status_transition"
	CodeOrderCannotBeCancelled       = "errors.order.cannot_cancel"
)

// BusinessError is a structured business-rule violation. Code is one of the
// Code* constants, Property optionally names the input field the violation is
// attached to, and Params carry interpolation values for message rendering
// (for example the flavor name in an out-of-stock error).
type BusinessError struct {
	Code     string
	Property string
	Params   []any
}

// NewBusinessError creates a BusinessError for the given code and property.
func NewBusinessError(code, property string, params ...any) *BusinessError {
	return &BusinessError{
		Code:     code,
		Property: property,
		Params:   params,
	}
}

func (e *BusinessError) Error() string {
	var b strings.Builder
	b.WriteString(ErrBusinessRule.Error())
	b.WriteString(": ")
	b.WriteString(e.Code)
	if e.Property != "" {
		fmt.Fprintf(&b, " (property: %s)", e.Property)
	}
	if len(e.Params) > 0 {
		fmt.Fprintf(&b, " (params: %v)", e.Params)
	}
	return b.String()
}

func (e *BusinessError) Unwrap() error {
	return ErrBusinessRule
}

// IsNotFound reports whether the code belongs to the not-found family, which
// transport adapters map onto "not found" responses.
func (e *BusinessError) IsNotFound() bool {
	return strings.HasSuffix(e.Code, "not_found")
}

// BusinessErrors accumulates several simultaneous violations, such as one
// out-of-stock error per insufficient flavor in a single order request.
type BusinessErrors []*BusinessError

func (e BusinessErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, be := range e {
		msgs = append(msgs, be.Error())
	}
	return strings.Join(msgs, "; ")
}

func (e BusinessErrors) Unwrap() error {
	return ErrBusinessRule
}

// UnwrapBusinessErrors extracts the structured violations carried by err.
// A single BusinessError is returned as a one-element slice. The second
// result is false when err carries no business-rule information, which marks
// it as an infrastructure failure for the caller.
func UnwrapBusinessErrors(err error) (BusinessErrors, bool) {
	var many BusinessErrors
	if errors.As(err, &many) {
		return many, true
	}

	var one *BusinessError
	if errors.As(err, &one) {
		return BusinessErrors{one}, true
	}

	return nil, false
}
