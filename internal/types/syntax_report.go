package types

// SyntaxReport is the result of a structural check over document text.
// Errors is never nil so it serializes as an empty list.
type SyntaxReport struct {
	Valid   bool     `json:"valid"`
	Errors  []string `json:"errors"`
	Message string   `json:"message,omitempty"`
}
