package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"basketball-league-admin/config"
	"basketball-league-admin/internal/livegame"
	"basketball-league-admin/internal/models"
	"basketball-league-admin/internal/notify"
	teamhandlers "basketball-league-admin/internal/teamHandlers"
	tempdatahandlers "basketball-league-admin/internal/tempDataHandlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	stateLiveGameID = "live_game_id"
	keySession      = "session"
)

// Sender is the part of the Telegram API the bot uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type GameLookup interface {
	UpcomingGames(ctx context.Context, now time.Time, limit int) ([]models.Game, error)
	GetGameByID(ctx context.Context, gameID int) (*models.Game, error)
}

type RosterLookup interface {
	Roster(ctx context.Context, game models.Game) (teamhandlers.Roster, error)
}

type Journal interface {
	ListByGame(ctx context.Context, gameID int) ([]models.ActionLog, error)
}

type PDFSource interface {
	DownloadGameStatPDF(ctx context.Context, statID int) ([]byte, error)
}

// HandlersConfig groups what the bot drives.
type HandlersConfig struct {
	Live    *livegame.Manager
	Games   GameLookup
	Teams   RosterLookup
	Journal Journal
	PDF     PDFSource
}

// Bot is the operator console on Telegram.
type Bot struct {
	API      Sender
	Config   *config.Config
	Handlers HandlersConfig
	Store    *tempdatahandlers.Store
	now      func() time.Time
}

// NewBot connects to Telegram with the configured token.
func NewBot(cfg *config.Config, handlers HandlersConfig) (*Bot, *tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TgApiToken)
	if err != nil {
		return nil, nil, err
	}
	return New(api, cfg, handlers), api, nil
}

func New(api Sender, cfg *config.Config, handlers HandlersConfig) *Bot {
	return &Bot{
		API:      api,
		Config:   cfg,
		Handlers: handlers,
		Store:    tempdatahandlers.NewStore(),
		now:      time.Now,
	}
}

// Run handles updates until ctx is done.
func Run(ctx context.Context, b *Bot, api *tgbotapi.BotAPI) {
	log.Printf("authorized on account %s", api.Self.UserName)
	updates := api.GetUpdatesChan(tgbotapi.UpdateConfig{Offset: 0, Timeout: 60})
	defer api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go b.HandleUpdate(ctx, update)
		}
	}
}

func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.From != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		b.handleCallbackQuery(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if state := b.Store.State(msg.From.ID); state != "" && !strings.HasPrefix(msg.Text, "/") {
		b.handleStateMessage(ctx, msg, state)
		return
	}
	b.Store.ClearState(msg.From.ID)
	b.processCommand(ctx, msg)
}

func (b *Bot) handleStateMessage(ctx context.Context, msg *tgbotapi.Message, state string) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	switch state {
	case stateLiveGameID:
		gameID, err := strconv.Atoi(strings.TrimSpace(msg.Text))
		if err != nil || gameID <= 0 {
			b.sendMessage(chatID, "ID non valido. Inserisci il numero della partita:")
			return
		}
		b.Store.ClearState(userID)
		b.openLive(ctx, chatID, userID, gameID)
	default:
		b.Store.ClearState(userID)
		b.processCommand(ctx, msg)
	}
}

func (b *Bot) processCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID
	parts := strings.SplitN(strings.TrimSpace(msg.Text), " ", 2)
	command := parts[0]
	if i := strings.Index(command, "@"); i > 0 {
		command = command[:i]
	}
	arg := ""
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}

	if command == "/start" {
		b.sendStartMessage(chatID)
		return
	}
	if !b.isAdmin(chatID) {
		b.sendMessage(chatID, "Non hai i permessi per usare questo comando.")
		return
	}

	switch command {
	case "/partite":
		b.listUpcoming(ctx, chatID)
	case "/live":
		if arg == "" {
			b.Store.SetState(userID, stateLiveGameID)
			b.sendMessage(chatID, "Inserisci l'ID della partita:")
			return
		}
		gameID, err := strconv.Atoi(arg)
		if err != nil || gameID <= 0 {
			b.sendMessage(chatID, "Usa: /live <ID partita>")
			return
		}
		b.openLive(ctx, chatID, userID, gameID)
	case "/tabellino":
		if session, ok := b.currentSession(chatID, userID); ok {
			b.sendMessage(chatID, boxScoreText(session.Snapshot()))
		}
	case "/chiudi":
		b.closeLive(ctx, chatID, userID)
	case "/pdf":
		statID, err := strconv.Atoi(arg)
		if err != nil || statID <= 0 {
			b.sendMessage(chatID, "Usa: /pdf <ID statistica>")
			return
		}
		b.sendPDF(ctx, chatID, statID)
	case "/storico":
		gameID, err := strconv.Atoi(arg)
		if err != nil || gameID <= 0 {
			b.sendMessage(chatID, "Usa: /storico <ID partita>")
			return
		}
		b.sendJournal(ctx, chatID, gameID)
	default:
		b.sendMessage(chatID, "Comando sconosciuto. Prova /start.")
	}
}

func (b *Bot) isAdmin(chatID int64) bool {
	return b.Config != nil && b.Config.IsAdmin(chatID)
}

func (b *Bot) listUpcoming(ctx context.Context, chatID int64) {
	games, err := b.Handlers.Games.UpcomingGames(ctx, b.now(), 10)
	if err != nil {
		log.Printf("upcoming games: %v", err)
		b.sendMessage(chatID, notify.FromError(err).Message)
		return
	}
	if len(games) == 0 {
		b.sendMessage(chatID, "Nessuna partita in programma.")
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(games))
	for _, game := range games {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(describeShort(game), fmt.Sprintf("live:open:%d", game.ID)),
		))
	}
	msg := tgbotapi.NewMessage(chatID, "Prossime partite. Scegli quella da seguire:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.send(msg)
}

func (b *Bot) sendPDF(ctx context.Context, chatID int64, statID int) {
	data, err := b.Handlers.PDF.DownloadGameStatPDF(ctx, statID)
	if err != nil {
		log.Printf("pdf %d: %v", statID, err)
		b.sendMessage(chatID, notify.FromError(err).Message)
		return
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("statistiche-partita-%d.pdf", statID),
		Bytes: data,
	})
	b.send(doc)
}

func (b *Bot) sendJournal(ctx context.Context, chatID int64, gameID int) {
	entries, err := b.Handlers.Journal.ListByGame(ctx, gameID)
	if err != nil {
		log.Printf("journal of game %d: %v", gameID, err)
		b.sendMessage(chatID, notify.FromError(err).Message)
		return
	}
	b.sendMessage(chatID, journalText(gameID, entries))
}

func (b *Bot) sendStartMessage(chatID int64) {
	text := "Console statistiche live.\n\n" +
		"/partite - prossime partite\n" +
		"/live <ID> - apri una partita\n" +
		"/tabellino - tabellino della partita aperta\n" +
		"/chiudi - chiudi la partita aperta\n" +
		"/pdf <ID statistica> - scarica il report PDF\n" +
		"/storico <ID> - azioni registrate"
	if !b.isAdmin(chatID) {
		text += "\n\nI comandi sono riservati agli amministratori."
	}
	b.sendMessage(chatID, text)
}

func (b *Bot) sendMessage(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.API.Send(c); err != nil {
		log.Printf("telegram send: %v", err)
	}
}

// answer acknowledges a callback with a short toast.
func (b *Bot) answer(query *tgbotapi.CallbackQuery, text string) {
	if _, err := b.API.Request(tgbotapi.NewCallback(query.ID, text)); err != nil {
		log.Printf("telegram callback answer: %v", err)
	}
}
