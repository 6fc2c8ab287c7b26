package wsh

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"basketball-league-admin/internal/livegame"
	"basketball-league-admin/internal/models"
	"basketball-league-admin/internal/notify"
	teamhandlers "basketball-league-admin/internal/teamHandlers"
)

type GameLookup interface {
	ListGames(ctx context.Context, page, perPage int) (models.Page[models.Game], error)
	UpcomingGames(ctx context.Context, now time.Time, limit int) ([]models.Game, error)
	GetGameByID(ctx context.Context, gameID int) (*models.Game, error)
}

type RosterLookup interface {
	Roster(ctx context.Context, game models.Game) (teamhandlers.Roster, error)
}

func (s *Server) listGames(w http.ResponseWriter, r *http.Request) {
	page, err := s.Games.ListGames(r.Context(), queryInt(r, "page", 1), queryInt(r, "per_page", 20))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Data: page})
}

func (s *Server) upcomingGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.Games.UpcomingGames(r.Context(), time.Now(), queryInt(r, "limit", 10))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Data: games})
}

// boxScore serves the cached live box score, falling back to an open session.
func (s *Server) boxScore(w http.ResponseWriter, r *http.Request) {
	gameID, ok := intParam(r, "gameID")
	if !ok {
		badRequest(w, "game id")
		return
	}

	if s.Cache != nil {
		snap, err := s.Cache.ReadLive(r.Context(), gameID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if snap != nil {
			writeJSON(w, http.StatusOK, Response{Snapshot: snap})
			return
		}
	}

	for _, session := range s.Live.Sessions() {
		if session.Game().ID == gameID {
			snap := session.Snapshot()
			writeJSON(w, http.StatusOK, Response{Snapshot: &snap})
			return
		}
	}

	n := notify.Failure(notify.KeyNotFound)
	writeJSON(w, http.StatusNotFound, Response{Notification: &n})
}

func (s *Server) journal(w http.ResponseWriter, r *http.Request) {
	gameID, ok := intParam(r, "gameID")
	if !ok {
		badRequest(w, "game id")
		return
	}
	entries, err := s.Journal.ListByGame(r.Context(), gameID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Data: entries})
}

// clearJournal drops the local journal of a game; backend stats are untouched.
func (s *Server) clearJournal(w http.ResponseWriter, r *http.Request) {
	gameID, ok := intParam(r, "gameID")
	if !ok {
		badRequest(w, "game id")
		return
	}
	deleted, err := s.Journal.DeleteByGame(r.Context(), gameID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	n := notify.Success(notify.KeyJournalCleared, deleted)
	writeJSON(w, http.StatusOK, Response{Notification: &n, Data: deleted})
}

func (s *Server) spectate(w http.ResponseWriter, r *http.Request) {
	gameID, ok := intParam(r, "gameID")
	if !ok {
		badRequest(w, "game id")
		return
	}
	if s.Spectators == nil {
		http.NotFound(w, r)
		return
	}
	ctx := s.BaseCtx
	if ctx == nil {
		ctx = context.Background()
	}
	s.Spectators.ServeWS(ctx, w, r, gameID)
}

func (s *Server) pdf(w http.ResponseWriter, r *http.Request) {
	statID, ok := intParam(r, "statID")
	if !ok {
		badRequest(w, "game stat id")
		return
	}

	mode := r.URL.Query().Get("mode")
	switch mode {
	case "generate":
		msg, err := s.PDF.GenerateGameStatPDF(r.Context(), statID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		n := notify.Success(notify.KeyPDFGenerated)
		writeJSON(w, http.StatusOK, Response{Notification: &n, Data: msg})
		return
	case "", "download", "stream":
	default:
		badRequest(w, "mode")
		return
	}

	fetch, disposition := s.PDF.DownloadGameStatPDF, "attachment"
	if mode == "stream" {
		fetch, disposition = s.PDF.StreamGameStatPDF, "inline"
	}
	data, err := fetch(r.Context(), statID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, PDFFileName(statID)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func PDFFileName(statID int) string {
	return fmt.Sprintf("statistiche-partita-%d.pdf", statID)
}

func sessionSnapshots(sessions []*livegame.Session) []livegame.Snapshot {
	out := make([]livegame.Snapshot, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, session.Snapshot())
	}
	return out
}
