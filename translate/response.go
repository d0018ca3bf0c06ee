package translate

import (
	"time"

	"github.com/kbukum/errkit/errors"
)

// Response is the structured result of translating a Condition. The caller
// owns transmission: it sets the transport status from Status and serializes
// Body() as the payload.
type Response struct {
	// Kind is the client-facing kind the response was built from. On the
	// default/fallback path this is errors.KindInternal regardless of the
	// condition's original kind.
	Kind errors.Kind
	// Status is the transport-level status code.
	Status int
	// Message is the human-readable message. Never empty.
	Message string
	// Retryable indicates whether retrying the operation may succeed.
	Retryable bool
	// Fields contains optional structured details for the client.
	Fields map[string]any
	// Timestamp is the translation time, not the raise time.
	Timestamp time.Time
}

// Envelope is the JSON structure returned to clients.
type Envelope struct {
	Error ResponseBody `json:"error"`
}

// ResponseBody contains the error details sent to clients.
type ResponseBody struct {
	Kind      errors.Kind    `json:"kind"`
	Message   string         `json:"message"`
	Retryable bool           `json:"retryable"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Body converts the Response to its client envelope for JSON serialization.
func (r Response) Body() Envelope {
	return Envelope{
		Error: ResponseBody{
			Kind:      r.Kind,
			Message:   r.Message,
			Retryable: r.Retryable,
			Details:   r.Fields,
			Timestamp: r.Timestamp,
		},
	}
}
