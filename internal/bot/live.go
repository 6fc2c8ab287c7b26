package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"basketball-league-admin/internal/livegame"
	"basketball-league-admin/internal/models"
	"basketball-league-admin/internal/notify"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) openLive(ctx context.Context, chatID, userID int64, gameID int) {
	game, err := b.Handlers.Games.GetGameByID(ctx, gameID)
	if err != nil {
		log.Printf("game %d: %v", gameID, err)
		b.sendMessage(chatID, notify.FromError(err).Message)
		return
	}
	if game == nil {
		b.sendMessage(chatID, fmt.Sprintf("Partita #%d non trovata.", gameID))
		return
	}

	session, err := b.Handlers.Live.Open(ctx, gameID)
	if err != nil {
		log.Printf("open live game %d: %v", gameID, err)
		b.sendMessage(chatID, notify.FromError(err).Message)
		return
	}
	b.closePrevious(ctx, userID)
	b.Store.SetTemporaryData(userID, keySession, session.ID())

	n := notify.Success(notify.KeySessionOpened, describeShort(session.Game()))
	b.sendControls(chatID, session, n.Message)
}

func (b *Bot) closeLive(ctx context.Context, chatID, userID int64) {
	session, ok := b.currentSession(chatID, userID)
	if !ok {
		return
	}
	b.Store.DeleteTemporaryData(userID)
	if err := b.Handlers.Live.Close(ctx, session.ID()); err != nil {
		b.sendMessage(chatID, notify.FromError(err).Message)
		return
	}
	b.sendMessage(chatID, notify.Success(notify.KeySessionClosed).Message)
}

// closePrevious closes the session the operator had open, if any.
func (b *Bot) closePrevious(ctx context.Context, userID int64) {
	id, ok := b.Store.Get(userID, keySession)
	if !ok || id == "" {
		return
	}
	if err := b.Handlers.Live.Close(ctx, id); err != nil && !errors.Is(err, livegame.ErrSessionNotFound) {
		log.Printf("close live session %s: %v", id, err)
	}
}

// currentSession tells the chat when there is no open session.
func (b *Bot) currentSession(chatID, userID int64) (*livegame.Session, bool) {
	id, _ := b.Store.Get(userID, keySession)
	session, err := b.Handlers.Live.Get(id)
	if err != nil {
		b.sendMessage(chatID, notify.FromError(err).Message)
		return nil, false
	}
	return session, true
}

func (b *Bot) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	userID := query.From.ID

	if !b.isAdmin(chatID) {
		b.answer(query, "Non hai i permessi per questa operazione.")
		return
	}

	parts := strings.Split(query.Data, ":")
	if len(parts) < 2 || parts[0] != "live" {
		b.answer(query, "")
		return
	}

	if parts[1] == "open" {
		gameID, err := strconv.Atoi(arg(parts, 2))
		if err != nil {
			b.answer(query, "Dati non validi")
			return
		}
		b.answer(query, "")
		b.openLive(ctx, chatID, userID, gameID)
		return
	}

	session, ok := b.currentSession(chatID, userID)
	if !ok {
		b.answer(query, notify.FromError(livegame.ErrSessionNotFound).Message)
		return
	}

	switch parts[1] {
	case "menu":
		b.answer(query, "")
		b.sendControls(chatID, session, "")
	case "team":
		teamID, _ := strconv.Atoi(arg(parts, 2))
		if err := session.SelectTeam(teamID); err != nil {
			b.fail(query, chatID, err)
			return
		}
		b.answer(query, "")
		b.sendPlayers(ctx, chatID, session, teamID)
	case "player":
		teamID, _ := strconv.Atoi(arg(parts, 2))
		playerID, _ := strconv.Atoi(arg(parts, 3))
		if err := session.SelectPlayer(ctx, teamID, playerID); err != nil {
			b.fail(query, chatID, err)
			return
		}
		b.answer(query, "")
		line, _ := session.Line(playerID)
		b.sendActions(chatID, line.PlayerLabel())
	case "act":
		action := models.Action(arg(parts, 2))
		line, err := session.Record(ctx, action)
		if err != nil {
			b.fail(query, chatID, err)
			return
		}
		n := notify.Success(notify.KeyActionRecorded, action.Label())
		b.answer(query, n.Message)
		b.sendControls(chatID, session, n.Message+"\n"+lineText(line))
	case "undo":
		undone, line, err := session.Undo(ctx)
		if err != nil {
			b.fail(query, chatID, err)
			return
		}
		n := notify.Success(notify.KeyActionUndone, undone.Action.Label())
		b.answer(query, n.Message)
		b.sendControls(chatID, session, n.Message+"\n"+lineText(line))
	case "clock":
		key := notify.KeyClockReset
		if arg(parts, 2) == "reset" {
			session.ResetClock(ctx)
		} else if session.ToggleClock(ctx) {
			key = notify.KeyClockStarted
		} else {
			key = notify.KeyClockStopped
		}
		n := notify.Success(key)
		b.answer(query, n.Message)
		b.sendControls(chatID, session, n.Message)
	case "stats":
		if _, err := session.GenerateTeamStats(ctx); err != nil {
			b.fail(query, chatID, err)
			return
		}
		n := notify.Success(notify.KeyTeamStatsSaved)
		b.answer(query, n.Message)
		b.sendMessage(chatID, n.Message)
	case "box":
		b.answer(query, "")
		b.sendMessage(chatID, boxScoreText(session.Snapshot()))
	default:
		b.answer(query, "")
	}
}

func arg(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

// fail shows the error both as a toast and in the chat.
func (b *Bot) fail(query *tgbotapi.CallbackQuery, chatID int64, err error) {
	n := notify.FromError(err)
	if notify.HTTPStatus(err) >= 500 {
		log.Printf("live callback %q: %v", query.Data, err)
	}
	b.answer(query, n.Message)
	b.sendMessage(chatID, "⚠️ "+n.Message)
}

func (b *Bot) sendControls(chatID int64, session *livegame.Session, prefix string) {
	snap := session.Snapshot()
	text := liveHeader(snap)
	if prefix != "" {
		text = prefix + "\n\n" + text
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = controlKeyboard(snap)
	b.send(msg)
}

func (b *Bot) sendPlayers(ctx context.Context, chatID int64, session *livegame.Session, teamID int) {
	roster, err := b.Handlers.Teams.Roster(ctx, session.Game())
	if err != nil {
		log.Printf("roster of game %d: %v", session.Game().ID, err)
		b.sendMessage(chatID, notify.FromError(err).Message)
		return
	}
	team, _ := roster.Team(teamID)
	if len(team.Players) == 0 {
		b.sendMessage(chatID, "Nessun giocatore in rosa per questa squadra.")
		return
	}
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("%s: scegli il giocatore", team.Name))
	msg.ReplyMarkup = playerKeyboard(team)
	b.send(msg)
}

func (b *Bot) sendActions(chatID int64, playerLabel string) {
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Giocatore: %s\nScegli l'azione:", playerLabel))
	msg.ReplyMarkup = actionKeyboard()
	b.send(msg)
}

func controlKeyboard(snap livegame.Snapshot) tgbotapi.InlineKeyboardMarkup {
	clockLabel := "▶️ Avvia"
	if snap.Clock.Running {
		clockLabel = "⏸ Ferma"
	}
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(snap.Home.Name, fmt.Sprintf("live:team:%d", snap.Home.TeamID)),
			tgbotapi.NewInlineKeyboardButtonData(snap.Away.Name, fmt.Sprintf("live:team:%d", snap.Away.TeamID)),
		),
	}

	clockRow := tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(clockLabel, "live:clock:toggle"),
		tgbotapi.NewInlineKeyboardButtonData("🔄 Azzera", "live:clock:reset"),
	)
	if snap.PendingUndo != nil {
		clockRow = append([]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("↩️ Annulla", "live:undo"),
		}, clockRow...)
	}
	rows = append(rows, clockRow, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📊 Salva statistiche", "live:stats"),
		tgbotapi.NewInlineKeyboardButtonData("📋 Tabellino", "live:box"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func playerKeyboard(team models.Team) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, player := range team.Players {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(player.Label(), fmt.Sprintf("live:player:%d:%d", team.ID, player.ID)))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("⬅️ Indietro", "live:menu")))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func actionKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(models.AllActions); i += 2 {
		row := tgbotapi.NewInlineKeyboardRow(actionButton(models.AllActions[i]))
		if i+1 < len(models.AllActions) {
			row = append(row, actionButton(models.AllActions[i+1]))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("⬅️ Indietro", "live:menu")))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func actionButton(action models.Action) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(action.Label(), "live:act:"+string(action))
}
