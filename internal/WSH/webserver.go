package wsh

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"basketball-league-admin/internal/livegame"
	"basketball-league-admin/internal/models"
	"basketball-league-admin/internal/notify"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Journal interface {
	ListByGame(ctx context.Context, gameID int) ([]models.ActionLog, error)
	DeleteByGame(ctx context.Context, gameID int) (int64, error)
}

type LiveCache interface {
	ReadLive(ctx context.Context, gameID int) (*livegame.Snapshot, error)
}

type PDFSource interface {
	GenerateGameStatPDF(ctx context.Context, statID int) (string, error)
	DownloadGameStatPDF(ctx context.Context, statID int) ([]byte, error)
	StreamGameStatPDF(ctx context.Context, statID int) ([]byte, error)
}

type Spectators interface {
	ServeWS(ctx context.Context, w http.ResponseWriter, r *http.Request, gameID int)
	ClientCount() int
}

// Response is the body of every console answer.
type Response struct {
	Notification *notify.Notification `json:"notification,omitempty"`
	Snapshot     *livegame.Snapshot   `json:"snapshot,omitempty"`
	Data         any                  `json:"data,omitempty"`
}

// Server is the operator console over HTTP. Cache, Spectators and Passwords are optional.
type Server struct {
	Live       *livegame.Manager
	Games      GameLookup
	Teams      RosterLookup
	Journal    Journal
	Cache      LiveCache
	PDF        PDFSource
	Spectators Spectators
	Passwords  Passwords

	AllowedOrigins []string
	// BaseCtx outlives single requests; websocket pumps run on it.
	BaseCtx context.Context
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	origins := s.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)
	r.Get("/games/{gameID}/ws", s.spectate)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/games", s.listGames)
		r.Get("/games/upcoming", s.upcomingGames)
		r.Get("/games/{gameID}/boxscore", s.boxScore)
		r.Get("/games/{gameID}/journal", s.journal)
		r.Delete("/games/{gameID}/journal", s.clearJournal)
		r.Get("/game-stats/{statID}/pdf", s.pdf)

		if s.Passwords != nil {
			r.Post("/auth/forgot-password", s.forgotPassword)
			r.Post("/auth/reset-password", s.resetPassword)
		}

		r.Route("/live/sessions", func(r chi.Router) {
			r.Get("/", s.listSessions)
			r.Post("/", s.openSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", s.getSession)
				r.Delete("/", s.closeSession)
				r.Get("/roster", s.roster)
				r.Post("/select", s.selectPlayer)
				r.Post("/actions", s.recordAction)
				r.Post("/undo", s.undo)
				r.Post("/clock", s.clock)
				r.Post("/team-stats", s.teamStats)
			})
		})
	})
	return r
}

// StartWS serves handler on addr until ctx is done, then shuts down gracefully.
func StartWS(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("console listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Printf("console on %s stopped", addr)
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := notify.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s %s [%s]: %v", r.Method, r.URL.Path, middleware.GetReqID(r.Context()), err)
	}
	n := notify.FromError(err)
	writeJSON(w, status, Response{Notification: &n})
}

func badRequest(w http.ResponseWriter, detail string) {
	n := notify.Failure(notify.KeyBadRequest, detail)
	writeJSON(w, http.StatusBadRequest, Response{Notification: &n})
}

func intParam(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	return v, err == nil && v > 0
}

func queryInt(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{
		"status":   "ok",
		"sessions": len(s.Live.Sessions()),
	}
	if s.Spectators != nil {
		body["spectators"] = s.Spectators.ClientCount()
	}
	writeJSON(w, http.StatusOK, body)
}
