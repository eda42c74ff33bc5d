package model

import (
	"encoding/json"
	"time"
)

// RequestKey identifies one idempotent write: the endpoint path and the
// client supplied key.
type RequestKey struct {
	Endpoint string
	Key      string
}

type ReplayStatus string

const (
	ReplayProcessing ReplayStatus = "processing"
	ReplayCompleted  ReplayStatus = "completed"
)

// ReplayEntry is cached per RequestKey. Response holds the JSON payload
// returned to the first caller once Status is completed.
type ReplayEntry struct {
	Status    ReplayStatus    `json:"status"`
	BodyHash  string          `json:"body_hash"`
	Response  json.RawMessage `json:"response,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
