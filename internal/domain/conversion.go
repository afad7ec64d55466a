package domain

import "time"

// ConversionRequest is parsed from one line of input.
// Unit tokens are kept verbatim; resolution happens at conversion time.
type ConversionRequest struct {
	Quantity  float64
	FromToken string
	ToToken   string
}

// ConversionResult is the outcome of evaluating one request.
//
// From and To are nil when the matching token did not resolve.
// Kind is empty on success; Message is always the sentence shown to the user.
type ConversionResult struct {
	Request   ConversionRequest
	From      *Unit
	To        *Unit
	Converted float64
	Kind      ErrorKind
	Message   string
}

func (r ConversionResult) OK() bool {
	return r.Kind == ""
}

// HistoryEntry is one evaluated line as persisted by a history store.
type HistoryEntry struct {
	SessionID string    `json:"session_id"`
	At        time.Time `json:"at"`
	Input     string    `json:"input"`
	Quantity  *float64  `json:"quantity,omitempty"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	Converted *float64  `json:"converted,omitempty"`
	Kind      ErrorKind `json:"kind,omitempty"`
	Message   string    `json:"message"`
}
