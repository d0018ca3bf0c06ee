package errors

import (
	stderrors "errors"
	"fmt"
)

// Condition is a signaled failure carrying a kind, a human-readable message,
// optional structured details, and an optional cause. It is the unified error
// type raised by application logic and consumed by the translate package.
type Condition struct {
	// Kind selects the registered handler during translation.
	Kind Kind `json:"kind"`
	// Message is a human-readable description, safe to show to clients.
	Message string `json:"message"`
	// Details contains additional structured context for the condition.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error. It is preserved for logging and for
	// errors.Is / errors.As; it never reaches a client response.
	Cause error `json:"-"`
}

// Error returns the string representation of the condition.
func (c *Condition) Error() string {
	if c.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", c.Kind, c.Message, c.Cause)
	}
	return fmt.Sprintf("%s: %s", c.Kind, c.Message)
}

// Unwrap returns the underlying cause of the condition.
func (c *Condition) Unwrap() error { return c.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (c *Condition) WithCause(cause error) *Condition {
	c.Cause = cause
	return c
}

// WithDetails merges the provided details into the condition and returns the
// receiver.
func (c *Condition) WithDetails(details map[string]any) *Condition {
	if c.Details == nil {
		c.Details = make(map[string]any)
	}
	for k, v := range details {
		c.Details[k] = v
	}
	return c
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (c *Condition) WithDetail(key string, value any) *Condition {
	if c.Details == nil {
		c.Details = make(map[string]any)
	}
	c.Details[key] = value
	return c
}

// New creates a new Condition with the given kind and message.
func New(kind Kind, message string) *Condition {
	return &Condition{Kind: kind, Message: message}
}

// Newf creates a new Condition with a formatted message.
func Newf(kind Kind, format string, args ...any) *Condition {
	return &Condition{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// --- Common Condition Constructors ---

// NotFound creates a Condition for a resource that was not found.
func NotFound(resource, id string) *Condition {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &Condition{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("The requested %s was not found.", resource),
		Details: details,
	}
}

// Validation creates a Condition for input that failed validation.
func Validation(message string) *Condition {
	return &Condition{Kind: KindValidation, Message: message}
}

// Unauthorized creates a Condition for unauthenticated access.
func Unauthorized(reason string) *Condition {
	if reason == "" {
		reason = "Authentication required."
	}
	return &Condition{Kind: KindUnauthorized, Message: reason}
}

// Forbidden creates a Condition for access without permission.
func Forbidden(reason string) *Condition {
	if reason == "" {
		reason = "You don't have permission to perform this action."
	}
	return &Condition{Kind: KindForbidden, Message: reason}
}

// Conflict creates a Condition for a conflict with the current resource state.
func Conflict(reason string) *Condition {
	return &Condition{Kind: KindConflict, Message: reason}
}

// AlreadyExists creates a Condition for a resource that already exists.
func AlreadyExists(resource string) *Condition {
	return &Condition{
		Kind:    KindAlreadyExists,
		Message: fmt.Sprintf("A %s with these details already exists.", resource),
		Details: map[string]any{"resource": resource},
	}
}

// Timeout creates a Condition for an operation that took too long.
func Timeout(operation string) *Condition {
	return &Condition{
		Kind:    KindTimeout,
		Message: "The request took too long. Please try again.",
		Details: map[string]any{"operation": operation},
	}
}

// Unavailable creates a Condition for a dependency that is temporarily down.
func Unavailable(service string) *Condition {
	return &Condition{
		Kind:    KindUnavailable,
		Message: fmt.Sprintf("The %s is temporarily unavailable. Please try again.", service),
		Details: map[string]any{"service": service},
	}
}

// RateLimited creates a Condition for too many requests.
func RateLimited() *Condition {
	return &Condition{
		Kind:    KindRateLimited,
		Message: "Too many requests. Please wait a moment and try again.",
	}
}

// Internal creates a Condition for an unexpected server-side failure.
func Internal(cause error) *Condition {
	return &Condition{
		Kind:    KindInternal,
		Message: "An unexpected error occurred. Please try again or contact support.",
		Cause:   cause,
	}
}

// --- Helpers ---

// IsCondition checks if err is (or wraps) a Condition.
func IsCondition(err error) bool {
	var cond *Condition
	return stderrors.As(err, &cond)
}

// AsCondition extracts a Condition from err if possible.
func AsCondition(err error) (*Condition, bool) {
	var cond *Condition
	if stderrors.As(err, &cond) {
		return cond, true
	}
	return nil, false
}

// Wrap adapts an arbitrary error into a Condition. A nil error returns nil,
// an error that already is (or wraps) a Condition is returned as-is, and
// anything else becomes an internal-kind Condition with err as the cause.
func Wrap(err error) *Condition {
	if err == nil {
		return nil
	}
	if cond, ok := AsCondition(err); ok {
		return cond
	}
	return Internal(err)
}
