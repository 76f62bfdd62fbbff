package output

import (
	pkerrors "github.com/griffithind/parsekit/internal/errors"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error    string            `json:"error" yaml:"error"`
	Category string            `json:"category,omitempty" yaml:"category,omitempty"`
	Code     string            `json:"code,omitempty" yaml:"code,omitempty"`
	Message  string            `json:"message,omitempty" yaml:"message,omitempty"`
	Hint     string            `json:"hint,omitempty" yaml:"hint,omitempty"`
	Context  map[string]string `json:"context,omitempty" yaml:"context,omitempty"`
}

// NewErrorResponse builds an ErrorResponse, filling in the structured
// fields when err is a ParseError.
func NewErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: err.Error()}

	if pErr, ok := pkerrors.AsParseError(err); ok {
		resp.Category = string(pErr.Category)
		resp.Code = pErr.Code
		resp.Message = pErr.Message
		resp.Hint = pErr.Hint
		if len(pErr.Context) > 0 {
			resp.Context = pErr.Context
		}
	}

	return resp
}

// WriteError writes an error response in the configured structured format.
func (o *Output) WriteError(err error) error {
	return o.Render(NewErrorResponse(err))
}
