package types

import (
	"bytes"
	"encoding/json"
)

// LogEventRequest is the body of POST /api/log. Timestamp is a pointer so an
// omitted value can be told apart from an explicit zero; RSSI and Duration
// additionally tell an explicit null apart from an omitted field.
type LogEventRequest struct {
	Timestamp *int64      `json:"timestamp,omitempty"` // optional terminal clock, epoch seconds
	MachineID string      `json:"machine_id"`
	UID       string      `json:"uid"`
	UserName  *string     `json:"usuario,omitempty"`
	Event     string      `json:"evento"`
	RSSI      OptionalInt `json:"rssi"`
	Duration  OptionalInt `json:"duracao"`
}

// OptionalInt is a JSON integer field with three states: omitted
// (Present false), null (Present true, Valid false) and set.
type OptionalInt struct {
	Present bool
	Valid   bool
	Int64   int64
}

// Int returns a present, non-null OptionalInt.
func Int(v int64) OptionalInt {
	return OptionalInt{Present: true, Valid: true, Int64: v}
}

// Null returns a present OptionalInt holding null.
func Null() OptionalInt {
	return OptionalInt{Present: true}
}

// UnmarshalJSON is only called when the key is present, null included.
func (o *OptionalInt) UnmarshalJSON(b []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Valid, o.Int64 = false, 0
		return nil
	}
	if err := json.Unmarshal(b, &o.Int64); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Int64)
}

type LogEventResponse struct {
	Success bool  `json:"sucesso"`
	ID      int64 `json:"id"`
}

// AccessEvent is one logs row as served by GET /api/logs.
type AccessEvent struct {
	ID        int64   `json:"id"`
	Timestamp int64   `json:"timestamp"`
	MachineID string  `json:"machine_id"`
	UID       string  `json:"uid"`
	UserName  *string `json:"usuario"`
	Event     string  `json:"evento"`
	RSSI      *int64  `json:"rssi"`
	Duration  *int64  `json:"duracao"`
	CreatedAt int64   `json:"criado_em"`
}
