package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ulule/limiter/v3"
	lmw "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/liut/askpad/pkg/settings"
)

type M = render.M

func (s *server) rateMw() func(next http.Handler) http.Handler {
	rate, err := limiter.NewRateFromFormatted(settings.Current.APIRateLimit)
	if err != nil {
		logger().Infow("parse rate limit fail", "value", settings.Current.APIRateLimit, "err", err)
		return func(next http.Handler) http.Handler { return next }
	}
	mw := lmw.NewMiddleware(limiter.New(memory.NewStore(), rate))
	return mw.Handler
}

func (s *server) strapRouter() {

	s.ar.Get("/ping", handlerPing)

	s.ar.Route("/api", func(r chi.Router) {
		r.Use(s.rateMw())
		r.Get("/welcome", s.getWelcome)
		r.Post("/ask", s.postAsk)
		r.Get("/history", s.getHistory)
		r.Delete("/history/{id}", s.deleteHistoryEntry)
		r.Delete("/history", s.clearHistory)
	})

	if s.cfg.DocHandler != nil {
		s.ar.Get("/", s.cfg.DocHandler.ServeHTTP)
		s.ar.NotFound(s.cfg.DocHandler.ServeHTTP)
	}
}

func handlerPing(w http.ResponseWriter, r *http.Request) {
	render.Data(w, r, []byte("Pong\n"))
}

func apiFail(w http.ResponseWriter, r *http.Request, status int, err interface{}) {
	res := render.M{
		"status": status,
		"error":  err,
	}
	switch ret := err.(type) {
	case error:
		res["message"] = ret.Error()
	case fmt.Stringer:
		res["message"] = ret.String()
	case string, *string, []byte:
		res["message"] = ret
	}
	render.Status(r, status)
	render.JSON(w, r, res)
}

type RespDone struct {
	Status int `json:"status"`
	Data   any `json:"data,omitempty"`
	Count  int `json:"count,omitempty"`
}

func apiOk(w http.ResponseWriter, r *http.Request, args ...any) {
	res := &RespDone{}
	if len(args) > 0 && args[0] != nil {
		res.Data = args[0]
		if len(args) > 1 {
			if c, ok := args[1].(int); ok {
				res.Count = c
			}
		}
	}

	render.JSON(w, r, res)
}
