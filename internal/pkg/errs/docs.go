// Package errs provides standardized error types for the stand manager
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// Two error families live here:
//
//   - Value/object errors (ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError) used for validation
//     failures in the domain model. Each follows the same shape: a sentinel
//     variable, a struct with detail fields, constructors with and without
//     cause, and Error()/Unwrap() methods.
//
//   - BusinessError / BusinessErrors carrying stable machine-readable codes
//     for expected business-rule violations (out of stock, invalid status
//     transition, and so on). Handlers return these instead of rendering
//     messages; the transport layer translates codes into responses and the
//     UI renders localized text from code plus params.
//
// This standardized approach improves error reporting, keeps error handling
// consistent, and enables error classification at the application boundary.
package errs
