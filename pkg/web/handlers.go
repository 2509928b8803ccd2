package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marcsv/go-binder/binder"
	"github.com/spf13/cast"

	"github.com/liut/askpad/pkg/models/qa"
	"github.com/liut/askpad/pkg/services/answer"
)

const welcomeText = "Ask me anything. Answers and questions stay in your local history."

type AskRequest struct {
	Question string `json:"question"`
}

type AskResult struct {
	Answer string          `json:"answer"`
	Entry  qa.HistoryEntry `json:"entry"`
}

func (s *server) postAsk(w http.ResponseWriter, r *http.Request) {
	var param AskRequest
	if err := binder.BindBody(r, &param); err != nil {
		apiFail(w, r, 400, err)
		return
	}

	logger().Infow("ask", "question", param.Question, "ip", r.RemoteAddr)

	text, err := s.asker.Ask(r.Context(), param.Question)
	if err != nil {
		// a failed ask leaves history untouched; the client may retry
		// the identical question
		apiFail(w, r, askFailCode(err), err)
		return
	}

	entry := s.sto.History().Record(r.Context(), param.Question, text)
	apiOk(w, r, AskResult{Answer: text, Entry: entry})
}

func askFailCode(err error) int {
	switch {
	case errors.Is(err, answer.ErrEmptyQuestion):
		return 400
	case errors.Is(err, answer.ErrTimeout):
		return 504
	default:
		return 502
	}
}

func (s *server) getHistory(w http.ResponseWriter, r *http.Request) {
	limit := cast.ToInt(r.URL.Query().Get("limit"))
	data := s.sto.History().List(r.Context()).Head(limit)
	apiOk(w, r, data, len(data))
}

func (s *server) deleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if len(id) == 0 {
		apiFail(w, r, 400, "empty id")
		return
	}
	s.sto.History().Delete(r.Context(), id)
	apiOk(w, r, nil)
}

func (s *server) clearHistory(w http.ResponseWriter, r *http.Request) {
	s.sto.History().Clear(r.Context())
	apiOk(w, r, nil)
}

func (s *server) getWelcome(w http.ResponseWriter, r *http.Request) {
	msg := new(qa.Message)

	if s.preset.Welcome != nil {
		msg.Content = s.preset.Welcome.Content
	} else {
		msg.Content = welcomeText
	}
	apiOk(w, r, msg)
}
