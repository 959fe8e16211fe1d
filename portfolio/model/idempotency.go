package model

import (
	"encoding/json"
	"time"
)

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

// IdempotencyKey addresses one replay-protected request.
type IdempotencyKey struct {
	Endpoint string
	Key      string
}

// IdempotencyCacheEntry is stored per key while a create is in flight and
// after it completed.
type IdempotencyCacheEntry struct {
	Status          IdempotencyStatus `json:"status"`
	RequestBodyHash string            `json:"request_body_hash"`
	Response        json.RawMessage   `json:"response,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
