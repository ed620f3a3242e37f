package bridge

import (
	"encoding/json"
	"fmt"
	"io"
)

// placeholderConfidence is reported on every success. The engine exposes no
// calibrated whole-formula score, so the bridge reports a fixed value and the
// caller treats the field as informational.
const placeholderConfidence = 1.0

// Result is the single JSON object printed per invocation.
type Result struct {
	Success    bool    `json:"success,omitempty"`
	Latex      string  `json:"latex,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Error      string  `json:"error,omitempty"`
	Traceback  string  `json:"traceback,omitempty"`
}

// Success builds the result for a completed recognition.
func Success(latex string) *Result {
	return &Result{
		Success:    true,
		Latex:      latex,
		Confidence: placeholderConfidence,
	}
}

// Failure builds an error result from err.
func Failure(err error) *Result {
	return &Result{Error: err.Error()}
}

// Errorf builds an error result with a formatted message.
func Errorf(format string, args ...interface{}) *Result {
	return &Result{Error: fmt.Sprintf(format, args...)}
}

// Emit writes the result to w as a single line of JSON.
func (r *Result) Emit(w io.Writer) error {
	return json.NewEncoder(w).Encode(r)
}
