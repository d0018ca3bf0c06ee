package errors

// Kind classifies a Condition. It selects the registered handler during
// translation. Kinds are lowercase snake_case strings so they can double as
// stable, client-facing codes.
type Kind string

// Core taxonomy. KindInternal is the catch-all; every unregistered kind
// falls through to it during translation.
const (
	// KindInternal indicates an unexpected server-side failure.
	KindInternal Kind = "internal"
	// KindNotFound indicates the requested resource does not exist.
	KindNotFound Kind = "not_found"
	// KindValidation indicates the input failed validation.
	KindValidation Kind = "validation"
	// KindUnauthorized indicates missing or invalid authentication.
	KindUnauthorized Kind = "unauthorized"
	// KindConflict indicates a conflict with the current resource state.
	KindConflict Kind = "conflict"
)

// Extended taxonomy.
const (
	// KindForbidden indicates the caller lacks permission.
	KindForbidden Kind = "forbidden"
	// KindAlreadyExists indicates the resource already exists.
	KindAlreadyExists Kind = "already_exists"
	// KindTimeout indicates the operation took too long.
	KindTimeout Kind = "timeout"
	// KindUnavailable indicates a dependency is temporarily unavailable.
	KindUnavailable Kind = "unavailable"
	// KindRateLimited indicates the caller sent too many requests.
	KindRateLimited Kind = "rate_limited"
)

var retryableKinds = map[Kind]bool{
	KindTimeout:     true,
	KindUnavailable: true,
	KindRateLimited: true,
	KindInternal:    false,
}

// IsRetryableKind returns true if conditions of this kind may succeed when
// the operation is retried.
func IsRetryableKind(k Kind) bool {
	return retryableKinds[k]
}

// String returns the kind as a plain string.
func (k Kind) String() string { return string(k) }
