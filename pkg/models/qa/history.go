package qa

import (
	"encoding/json"
	"time"

	"github.com/cupogo/andvari/models/oid"
)

// MaxEntries caps the persisted history length; oldest entries are
// evicted on insert.
const MaxEntries = 200

// HistoryEntry is one recorded question/answer pair. Immutable once created.
type HistoryEntry struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"` // RFC 3339
}

// NewHistoryEntry fills id and timestamp for a fresh pair.
func NewHistoryEntry(question, answer string) HistoryEntry {
	return HistoryEntry{
		ID:        oid.NewID(oid.OtEvent).String(),
		Question:  question,
		Answer:    answer,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// HistoryEntries is ordered newest-first by insertion.
type HistoryEntries []HistoryEntry

// Prepend inserts e at the head and evicts entries beyond limit.
func (z HistoryEntries) Prepend(e HistoryEntry, limit int) HistoryEntries {
	out := make(HistoryEntries, 0, len(z)+1)
	out = append(out, e)
	out = append(out, z...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// WithoutID removes the entry with the given id, preserving the order
// of the rest. Unknown ids leave the list unchanged.
func (z HistoryEntries) WithoutID(id string) HistoryEntries {
	out := make(HistoryEntries, 0, len(z))
	for _, e := range z {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// Head returns at most n entries from the newest end; n <= 0 means all.
func (z HistoryEntries) Head(n int) HistoryEntries {
	if n <= 0 || n >= len(z) {
		return z
	}
	return z[:n]
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (z *HistoryEntry) MarshalBinary() (data []byte, err error) {
	data, err = json.Marshal(z)
	return
}

// UnmarshalBinary unmarshal a binary representation of itself. for redis result.Scan
func (z *HistoryEntry) UnmarshalBinary(data []byte) error {
	var t HistoryEntry
	err := json.Unmarshal(data, &t)
	if err == nil {
		*z = t
	}
	return err
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (z HistoryEntries) MarshalBinary() (data []byte, err error) {
	data, err = json.Marshal(z)
	return
}

// UnmarshalBinary unmarshal a binary representation of itself. for redis result.Scan
func (z *HistoryEntries) UnmarshalBinary(data []byte) error {
	var t HistoryEntries
	err := json.Unmarshal(data, &t)
	if err == nil {
		*z = t
	}
	return err
}
