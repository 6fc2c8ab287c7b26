package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"basketball-league-admin/internal/models"
	"basketball-league-admin/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

func newTestServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*Client, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   body,
		})
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/", WithToken("tok-123")), &requests
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestRecordActionSendsTriple(t *testing.T) {
	client, requests := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"data": map[string]any{"id": 1, "game_id": 9, "player_id": 7, "team_id": 2, "points": 2, "two_points_made": 1, "two_points_attempted": 1},
		})
	})

	line, err := client.RecordAction(context.Background(), models.ActionRequest{GameID: 9, PlayerID: 7, Action: models.TwoPointMade})
	require.NoError(t, err)
	assert.Equal(t, 2, line.Points)
	assert.Equal(t, 7, line.PlayerID)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/player-stats/record-action", req.Path)
	assert.Equal(t, "Bearer tok-123", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.NotEmpty(t, req.Header.Get("X-Request-ID"))
	assert.JSONEq(t, `{"game_id":9,"player_id":7,"action":"two_point_goal_made"}`, string(req.Body))
}

func TestUndoActionPath(t *testing.T) {
	client, requests := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"player_id": 7}})
	})

	_, err := client.UndoAction(context.Background(), models.ActionRequest{GameID: 9, PlayerID: 7, Action: models.Steal})
	require.NoError(t, err)
	assert.Equal(t, "/api/player-stats/undo-action", (*requests)[0].Path)
	assert.JSONEq(t, `{"game_id":9,"player_id":7,"action":"steal"}`, string((*requests)[0].Body))
}

func TestListUsesPaginationAndFilters(t *testing.T) {
	client, requests := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []map[string]any{{"id": 1, "name": "Virtus"}, {"id": 2, "name": "Fortitudo"}},
			"meta": map[string]any{"current_page": 2, "last_page": 3, "per_page": 2, "total": 6},
		})
	})

	page, err := client.Clubs.List(context.Background(), models.ListOptions{Page: 2, PerPage: 2, Filters: map[string]string{"city": "Bologna"}})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Fortitudo", page.Data[1].Name)
	assert.True(t, page.HasNext())
	assert.Equal(t, "city=Bologna&page=2&per_page=2", (*requests)[0].Query)
}

func TestValidationErrorResponse(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"message": "The given data was invalid.",
			"errors":  map[string][]string{"name": {"Il nome è obbligatorio."}},
		})
	})

	_, err := client.Teams.Create(context.Background(), models.Team{})
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "/teams", apiErr.Path)
	field, msg := apiErr.FirstField()
	assert.Equal(t, "name", field)
	assert.Equal(t, "Il nome è obbligatorio.", msg)
}

func TestNotFound(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetGame(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "GET /games/404: status 404")
}

func TestCreateGameStatValidatesBeforeSending(t *testing.T) {
	client, requests := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})

	stat := models.GameStat{GameID: 1, TeamID: 2, BoxScore: models.BoxScore{TwoPointsMade: 3, TwoPointsAttempted: 2}}
	_, err := client.CreateGameStat(context.Background(), stat)

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, validation.MsgMadeExceeds, errs["two_points_made"])
	assert.Empty(t, *requests)
}

func TestFindGameStat(t *testing.T) {
	client, requests := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("team_id") == "4" {
			writeJSON(w, http.StatusOK, map[string]any{"data": []any{}, "meta": map[string]any{}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []map[string]any{{"id": 55, "game_id": 9, "team_id": 3, "points": 80}},
		})
	})

	stat, err := client.FindGameStat(context.Background(), 9, 3)
	require.NoError(t, err)
	require.NotNil(t, stat)
	assert.Equal(t, 55, stat.ID)
	assert.Equal(t, 80, stat.Points)
	assert.Equal(t, "game_id=9&per_page=1&team_id=3", (*requests)[0].Query)

	missing, err := client.FindGameStat(context.Background(), 9, 4)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPDFEndpointsReturnBytes(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake")
	client, requests := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/game-stats/12/pdf":
			writeJSON(w, http.StatusOK, map[string]string{"message": "PDF generato"})
		default:
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write(pdf)
		}
	})

	msg, err := client.GenerateGameStatPDF(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "PDF generato", msg)

	data, err := client.DownloadGameStatPDF(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, pdf, data)

	data, err = client.StreamGameStatPDF(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, pdf, data)

	paths := []string{(*requests)[0].Path, (*requests)[1].Path, (*requests)[2].Path}
	assert.Equal(t, []string{"/api/game-stats/12/pdf", "/api/game-stats/12/pdf/download", "/api/game-stats/12/pdf/stream"}, paths)
}

func TestInitializeEndpoints(t *testing.T) {
	client, requests := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/player-stats/initialize" {
			writeJSON(w, http.StatusCreated, map[string]any{"data": []map[string]any{{"player_id": 1}, {"player_id": 2}}})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"data": map[string]any{"player_id": 3, "team_id": 5}})
	})

	lines, err := client.InitializeGameStats(context.Background(), 9)
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	line, err := client.InitializePlayerStat(context.Background(), 9, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, line.PlayerID)

	assert.JSONEq(t, `{"game_id":9}`, string((*requests)[0].Body))
	assert.JSONEq(t, `{"game_id":9,"team_id":5,"player_id":3}`, string((*requests)[1].Body))
}

func TestPasswordReset(t *testing.T) {
	client, requests := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})

	msg, err := client.ForgotPassword(context.Background(), "coach@example.it")
	require.NoError(t, err)
	assert.Equal(t, "ok", msg)

	_, err = client.ResetPassword(context.Background(), ResetPasswordRequest{Token: "t", Email: "coach@example.it", Password: "p", PasswordConfirmation: "p"})
	require.NoError(t, err)

	assert.Equal(t, "/api/forgot-password", (*requests)[0].Path)
	assert.Equal(t, "/api/reset-password", (*requests)[1].Path)
	assert.JSONEq(t, `{"token":"t","email":"coach@example.it","password":"p","password_confirmation":"p"}`, string((*requests)[1].Body))
}

func TestNetworkErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := New(srv.URL)
	_, err := client.Leagues.Get(context.Background(), 1)
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "GET /leagues/1")
}
