package models

import "time"

// ISOTimestampLayout is the wire format used for every timestamp the site emits
const ISOTimestampLayout = "2006-01-02T15:04:05.000Z"

// ISOTimestamp formats t in UTC with millisecond precision
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(ISOTimestampLayout)
}

// Represents the data structure sent by the contact form
type ContactSubmission struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Website   string `json:"website"`
	Timestamp string `json:"timestamp"`
}

// SubmissionReceipt is the acknowledgment returned for a received submission
type SubmissionReceipt struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

// StatusReceived is the only status a receipt can carry
const StatusReceived = "received"

// SubmissionResponse is the body of POST /api/submissions
type SubmissionResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    *SubmissionReceipt `json:"data,omitempty"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
