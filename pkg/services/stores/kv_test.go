package stores

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liut/askpad/pkg/models/qa"
)

func TestKVReadMissingKeepsDefault(t *testing.T) {
	w, _ := newTestWrap(t)
	kv := NewKV(w.rc)

	data := qa.HistoryEntries{{ID: "default"}}
	ok := kv.ReadValue(context.Background(), "absent", &data)
	assert.False(t, ok)
	require.Len(t, data, 1)
	assert.Equal(t, "default", data[0].ID)
}

func TestKVRoundTrip(t *testing.T) {
	w, _ := newTestWrap(t)
	kv := NewKV(w.rc)
	ctx := context.Background()

	in := qa.HistoryEntries{{ID: "x", Question: "q", Answer: "a"}}
	kv.WriteValue(ctx, "trip", in)

	var out qa.HistoryEntries
	ok := kv.ReadValue(ctx, "trip", &out)
	assert.True(t, ok)
	require.Len(t, out, 1)
	assert.Equal(t, "q", out[0].Question)
}

func TestKVWriteFailureSwallowed(t *testing.T) {
	w, mr := newTestWrap(t)
	kv := NewKV(w.rc)
	mr.Close()

	// must not panic or surface the error
	kv.WriteValue(context.Background(), "k", qa.HistoryEntries{{ID: "x"}})
	kv.Delete(context.Background(), "k")

	var out qa.HistoryEntries
	assert.False(t, kv.ReadValue(context.Background(), "k", &out))
}
