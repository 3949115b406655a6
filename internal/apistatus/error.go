package apistatus

import "net/http"

type (
	// An Error is a failed operation carried as an error value until the HTTP
	// error handler renders it as a response envelope.
	Error struct {
		Status      Status
		Data        interface{}
		Description string
	}

	envelope struct {
		Result      Status      `json:"result"`
		Data        interface{} `json:"data,omitempty"`
		Description string      `json:"description,omitempty"`
	}
)

// NewError returns a new Error for the given status.
func NewError(status Status) *Error {
	return &Error{Status: status}
}

// NewErrorWithData returns a new Error carrying a payload in its envelope.
func NewErrorWithData(status Status, data interface{}) *Error {
	return &Error{Status: status, Data: data}
}

// NewErrorWithDescription returns a new Error carrying a human-readable
// description in its envelope.
func NewErrorWithDescription(status Status, description string) *Error {
	return &Error{Status: status, Description: description}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Description != "" {
		return e.Description
	}
	return e.Status.String()
}

// HTTPCode returns the transport status code used when rendering the error.
func (e *Error) HTTPCode() int {
	return e.Status.HTTPCode()
}

// Envelope returns the serializable response envelope of the error.
func (e *Error) Envelope() interface{} {
	return envelope{
		Result:      e.Status,
		Data:        e.Data,
		Description: e.Description,
	}
}

// StatusCode returns the transport status code for any error.
func StatusCode(err error) int {
	if serr, ok := err.(*Error); ok {
		return serr.HTTPCode()
	}
	return http.StatusInternalServerError
}
