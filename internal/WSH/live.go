package wsh

import (
	"fmt"
	"log"
	"net/http"

	gamehandlers "basketball-league-admin/internal/gameHandlers"
	"basketball-league-admin/internal/livegame"
	"basketball-league-admin/internal/models"
	"basketball-league-admin/internal/notify"

	"github.com/go-chi/chi/v5"
)

type openRequest struct {
	GameID int `json:"game_id"`
}

type selectRequest struct {
	TeamID   int `json:"team_id"`
	PlayerID int `json:"player_id"`
}

type actionRequest struct {
	Action models.Action `json:"action"`
}

type clockRequest struct {
	Op string `json:"op"`
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*livegame.Session, bool) {
	session, err := s.Live.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return session, true
}

func respond(w http.ResponseWriter, status int, session *livegame.Session, n notify.Notification, data any) {
	snap := session.Snapshot()
	writeJSON(w, status, Response{Notification: &n, Snapshot: &snap, Data: data})
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{Data: sessionSnapshots(s.Live.Sessions())})
}

func (s *Server) openSession(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := decode(r, &req); err != nil || req.GameID <= 0 {
		badRequest(w, "game_id")
		return
	}
	session, err := s.Live.Open(r.Context(), req.GameID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusCreated, session, notify.Success(notify.KeySessionOpened, gamehandlers.Describe(session.Game())), nil)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	snap := session.Snapshot()
	writeJSON(w, http.StatusOK, Response{Snapshot: &snap})
}

func (s *Server) closeSession(w http.ResponseWriter, r *http.Request) {
	if err := s.Live.Close(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		writeError(w, r, err)
		return
	}
	n := notify.Success(notify.KeySessionClosed)
	writeJSON(w, http.StatusOK, Response{Notification: &n})
}

func (s *Server) roster(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	roster, err := s.Teams.Roster(r.Context(), session.Game())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Data: roster})
}

// selectPlayer selects a team, or a player when player_id is set. Without
// team_id the player's team is looked up in the roster.
func (s *Server) selectPlayer(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	var req selectRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "body")
		return
	}
	if req.TeamID == 0 && req.PlayerID != 0 {
		roster, err := s.Teams.Roster(r.Context(), session.Game())
		if err != nil {
			writeError(w, r, err)
			return
		}
		_, teamID, found := roster.PlayerByID(req.PlayerID)
		if !found {
			writeError(w, r, livegame.ErrWrongTeam)
			return
		}
		req.TeamID = teamID
	}

	var err error
	if req.PlayerID == 0 {
		err = session.SelectTeam(req.TeamID)
	} else {
		err = session.SelectPlayer(r.Context(), req.TeamID, req.PlayerID)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	snap := session.Snapshot()
	writeJSON(w, http.StatusOK, Response{Snapshot: &snap})
}

func (s *Server) recordAction(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	var req actionRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "body")
		return
	}

	line, err := session.Record(r.Context(), req.Action)
	if err != nil {
		writeError(w, r, err)
		return
	}
	label := fmt.Sprintf("%s (%s)", req.Action.Label(), line.PlayerLabel())
	respond(w, http.StatusOK, session, notify.Success(notify.KeyActionRecorded, label), line)
}

func (s *Server) undo(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	undone, line, err := session.Undo(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	label := fmt.Sprintf("%s (%s)", undone.Action.Label(), line.PlayerLabel())
	respond(w, http.StatusOK, session, notify.Success(notify.KeyActionUndone, label), line)
}

func (s *Server) clock(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	var req clockRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "body")
		return
	}

	running := session.Clock().Running()
	switch req.Op {
	case "toggle":
		running = session.ToggleClock(r.Context())
	case "start":
		if !running {
			running = session.ToggleClock(r.Context())
		}
	case "stop":
		if running {
			running = session.ToggleClock(r.Context())
		}
	case "reset":
		session.ResetClock(r.Context())
		respond(w, http.StatusOK, session, notify.Success(notify.KeyClockReset), nil)
		return
	default:
		badRequest(w, "op")
		return
	}

	key := notify.KeyClockStopped
	if running {
		key = notify.KeyClockStarted
	}
	respond(w, http.StatusOK, session, notify.Success(key), nil)
}

func (s *Server) teamStats(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	saved, err := session.GenerateTeamStats(r.Context())
	if err != nil {
		if len(saved) > 0 {
			log.Printf("session %s: team stats saved for %d of 2 teams before: %v", session.ID(), len(saved), err)
		}
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, session, notify.Success(notify.KeyTeamStatsSaved), saved)
}
