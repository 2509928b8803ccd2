package stores

import (
	"context"

	"github.com/liut/askpad/pkg/models/qa"
	"github.com/liut/askpad/pkg/settings"
)

// HistoryStore keeps the recorded question/answer pairs under a single
// key, newest first, capped at qa.MaxEntries. Storage trouble is
// swallowed: reads degrade to an empty list, writes to a no-op.
type HistoryStore interface {
	// List returns all entries, newest first.
	List(ctx context.Context) qa.HistoryEntries
	// Record creates an entry for the pair and inserts it at the head,
	// evicting the oldest entry beyond the cap.
	Record(ctx context.Context, question, answer string) qa.HistoryEntry
	// Delete removes exactly one entry by id.
	Delete(ctx context.Context, id string)
	// Clear empties the list and the persisted value.
	Clear(ctx context.Context)
}

type historyStore struct {
	kv  *KV
	key string
}

func newHistoryStore(kv *KV) *historyStore {
	key := settings.Current.HistoryKey
	if len(key) == 0 {
		key = "qa-history"
	}
	return &historyStore{kv: kv, key: key}
}

func (s *historyStore) List(ctx context.Context) (data qa.HistoryEntries) {
	s.kv.ReadValue(ctx, s.key, &data)
	return
}

func (s *historyStore) Record(ctx context.Context, question, answer string) qa.HistoryEntry {
	entry := qa.NewHistoryEntry(question, answer)
	s.update(ctx, func(cur qa.HistoryEntries) qa.HistoryEntries {
		return cur.Prepend(entry, qa.MaxEntries)
	})
	logger().Debugw("recorded", "id", entry.ID, "question", question)
	return entry
}

func (s *historyStore) Delete(ctx context.Context, id string) {
	s.update(ctx, func(cur qa.HistoryEntries) qa.HistoryEntries {
		return cur.WithoutID(id)
	})
}

func (s *historyStore) Clear(ctx context.Context) {
	s.kv.Delete(ctx, s.key)
}

// update applies fn to the current list and writes the result back.
// A nil result from fn retains the prior value unchanged.
func (s *historyStore) update(ctx context.Context, fn func(qa.HistoryEntries) qa.HistoryEntries) {
	var cur qa.HistoryEntries
	s.kv.ReadValue(ctx, s.key, &cur)
	next := fn(cur)
	if next == nil {
		return
	}
	s.kv.WriteValue(ctx, s.key, next)
}
