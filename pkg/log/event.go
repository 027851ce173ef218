package log

import (
	"fmt"
	"strings"
	"time"
)

// Event records a single HTTP exchange with the timer API.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the request was sent (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RequestID uniquely identifies the exchange (UUID).
	RequestID string `cbor:"2,keyasint"`

	// Operation is the client operation that issued the request.
	Operation Operation `cbor:"3,keyasint"`

	// Method is the HTTP method.
	Method string `cbor:"4,keyasint"`

	// Host is the API host the request went to.
	Host string `cbor:"5,keyasint,omitempty"`

	// Path is the request path relative to the API base URL.
	Path string `cbor:"6,keyasint"`

	// StatusCode is the HTTP status (0 if no response was received).
	StatusCode int `cbor:"7,keyasint,omitempty"`

	// Duration from sending the request to reading the full response.
	Duration time.Duration `cbor:"8,keyasint"`

	// RequestSize is the request body size in bytes.
	RequestSize int `cbor:"9,keyasint,omitempty"`

	// ResponseSize is the response body size in bytes.
	ResponseSize int `cbor:"10,keyasint,omitempty"`

	// Outcome classifies the result.
	Outcome Outcome `cbor:"11,keyasint"`

	// Error is the error message for failed exchanges.
	Error string `cbor:"12,keyasint,omitempty"`
}

// Failed reports whether the exchange did not succeed.
func (e Event) Failed() bool {
	return e.Outcome != OutcomeSuccess
}

// StatusClass returns the status code class (2 for 2xx, ...), or 0 without a response.
func (e Event) StatusClass() int {
	return e.StatusCode / 100
}

// Operation identifies the client operation behind a request.
type Operation uint8

const (
	// OpListTimers is GET /timers.
	OpListTimers Operation = iota + 1
	// OpListCurrentTimers is GET /currentTimers.
	OpListCurrentTimers
	// OpCreateTimer is POST /timers.
	OpCreateTimer
	// OpCreateCurrentTimer is POST /currentTimers.
	OpCreateCurrentTimer
	// OpDeleteCurrentTimer is DELETE /currentTimers/{id}.
	OpDeleteCurrentTimer
	// OpReplaceCurrentTimer is PUT /currentTimers/{id}.
	OpReplaceCurrentTimer
)

var operationNames = map[Operation]string{
	OpListTimers:          "LIST_TIMERS",
	OpListCurrentTimers:   "LIST_CURRENT_TIMERS",
	OpCreateTimer:         "CREATE_TIMER",
	OpCreateCurrentTimer:  "CREATE_CURRENT_TIMER",
	OpDeleteCurrentTimer:  "DELETE_CURRENT_TIMER",
	OpReplaceCurrentTimer: "REPLACE_CURRENT_TIMER",
}

// String returns the operation name.
func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseOperation parses an operation name, case-insensitively.
// Dashes are accepted in place of underscores.
func ParseOperation(s string) (Operation, error) {
	name := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for op, n := range operationNames {
		if n == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operation: %s", s)
}

// Outcome classifies the result of an exchange.
type Outcome uint8

const (
	// OutcomeSuccess indicates a 2xx response.
	OutcomeSuccess Outcome = 0
	// OutcomeHTTPError indicates a non-2xx response.
	OutcomeHTTPError Outcome = 1
	// OutcomeTransportError indicates no response was received.
	OutcomeTransportError Outcome = 2
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "OK"
	case OutcomeHTTPError:
		return "HTTP_ERROR"
	case OutcomeTransportError:
		return "TRANSPORT_ERROR"
	default:
		return "UNKNOWN"
	}
}
