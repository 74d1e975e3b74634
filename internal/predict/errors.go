package predict

import "fmt"

// ErrNetwork indicates no response was received from the prediction service.
type ErrNetwork struct {
	Err error
}

func (e *ErrNetwork) Error() string {
	return fmt.Sprintf("no response from server: %v", e.Err)
}

func (e *ErrNetwork) Unwrap() error { return e.Err }

// ErrTimeout indicates the prediction service did not answer within the
// request deadline.
type ErrTimeout struct {
	Err error
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("prediction request timed out: %v", e.Err)
}

func (e *ErrTimeout) Unwrap() error { return e.Err }

// ErrServer indicates a non-2xx response. Message carries the
// server-supplied error text or a generic fallback.
type ErrServer struct {
	StatusCode int
	Message    string
}

func (e *ErrServer) Error() string {
	return fmt.Sprintf("server error (HTTP %d): %s", e.StatusCode, e.Message)
}

// ErrSchema indicates the service answered with a body that does not
// conform to the expected response schema.
type ErrSchema struct {
	Body []byte
	Err  error
}

func (e *ErrSchema) Error() string {
	return fmt.Sprintf("invalid prediction response: %v", e.Err)
}

func (e *ErrSchema) Unwrap() error { return e.Err }
