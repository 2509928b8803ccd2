package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liut/askpad/pkg/models/qa"
	"github.com/liut/askpad/pkg/services/answer"
	"github.com/liut/askpad/pkg/services/stores"
)

type failingAsker struct{ err error }

func (f failingAsker) Ask(ctx context.Context, question string) (string, error) {
	return "", f.err
}

func newTestServer(t *testing.T, asker answer.Asker) *server {
	t.Helper()
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	if asker == nil {
		asker = answer.NewMock(&qa.Mock{LatencyMs: 1})
	}
	svc := New(Config{
		Addr:    ":0",
		Storage: stores.NewWithRedis(rc),
		Asker:   asker,
	})
	return svc.(*server)
}

func doJSON(t *testing.T, s *server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if len(body) > 0 {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	s.ar.ServeHTTP(w, req)
	return w
}

type historyResp struct {
	Data  qa.HistoryEntries `json:"data"`
	Count int               `json:"count"`
}

func listHistory(t *testing.T, s *server, target string) historyResp {
	t.Helper()
	w := doJSON(t, s, http.MethodGet, target, "")
	require.Equal(t, 200, w.Code)
	var res historyResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestPing(t *testing.T) {
	s := newTestServer(t, nil)
	w := doJSON(t, s, http.MethodGet, "/ping", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "Pong\n", w.Body.String())
}

func TestAskRecordsHistory(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s, http.MethodPost, "/api/ask", `{"question":"What is AI?"}`)
	require.Equal(t, 200, w.Code)

	var res struct {
		Data AskResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Contains(t, res.Data.Answer, "What is AI?")
	assert.Equal(t, "What is AI?", res.Data.Entry.Question)
	assert.NotEmpty(t, res.Data.Entry.ID)

	hist := listHistory(t, s, "/api/history")
	require.Equal(t, 1, hist.Count)
	assert.Equal(t, "What is AI?", hist.Data[0].Question)
	assert.Equal(t, res.Data.Answer, hist.Data[0].Answer)
}

func TestAskEmptyQuestion(t *testing.T) {
	s := newTestServer(t, nil)

	w := doJSON(t, s, http.MethodPost, "/api/ask", `{"question":""}`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "question is empty")

	hist := listHistory(t, s, "/api/history")
	assert.Zero(t, hist.Count)
}

func TestAskUpstreamFailure(t *testing.T) {
	s := newTestServer(t, failingAsker{err: fmt.Errorf("%w: 502 Bad Gateway", answer.ErrServer)})

	w := doJSON(t, s, http.MethodPost, "/api/ask", `{"question":"q"}`)
	assert.Equal(t, 502, w.Code)
	assert.Contains(t, w.Body.String(), "server error")

	hist := listHistory(t, s, "/api/history")
	assert.Zero(t, hist.Count)
}

func TestAskTimeoutFailure(t *testing.T) {
	s := newTestServer(t, failingAsker{err: answer.ErrTimeout})

	w := doJSON(t, s, http.MethodPost, "/api/ask", `{"question":"q"}`)
	assert.Equal(t, 504, w.Code)
	assert.Contains(t, w.Body.String(), "request timed out")
}

func TestAskMalformedBody(t *testing.T) {
	s := newTestServer(t, nil)
	w := doJSON(t, s, http.MethodPost, "/api/ask", `{"question":`)
	assert.Equal(t, 400, w.Code)
}

func TestHistoryLimit(t *testing.T) {
	s := newTestServer(t, nil)

	for i := 0; i < 5; i++ {
		w := doJSON(t, s, http.MethodPost, "/api/ask", fmt.Sprintf(`{"question":"q-%d"}`, i))
		require.Equal(t, 200, w.Code)
	}

	hist := listHistory(t, s, "/api/history?limit=2")
	require.Equal(t, 2, hist.Count)
	assert.Equal(t, "q-4", hist.Data[0].Question) // newest first
	assert.Equal(t, "q-3", hist.Data[1].Question)
}

func TestHistoryDeleteAndClear(t *testing.T) {
	s := newTestServer(t, nil)

	for i := 0; i < 3; i++ {
		doJSON(t, s, http.MethodPost, "/api/ask", fmt.Sprintf(`{"question":"q-%d"}`, i))
	}
	hist := listHistory(t, s, "/api/history")
	require.Equal(t, 3, hist.Count)

	victim := hist.Data[1]
	w := doJSON(t, s, http.MethodDelete, "/api/history/"+victim.ID, "")
	require.Equal(t, 200, w.Code)

	hist = listHistory(t, s, "/api/history")
	require.Equal(t, 2, hist.Count)
	assert.Equal(t, "q-2", hist.Data[0].Question)
	assert.Equal(t, "q-0", hist.Data[1].Question)

	w = doJSON(t, s, http.MethodDelete, "/api/history", "")
	require.Equal(t, 200, w.Code)
	hist = listHistory(t, s, "/api/history")
	assert.Zero(t, hist.Count)
}

func TestWelcome(t *testing.T) {
	s := newTestServer(t, nil)
	w := doJSON(t, s, http.MethodGet, "/api/welcome", "")
	require.Equal(t, 200, w.Code)

	var res struct {
		Data qa.Message `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Data.Content)
}
