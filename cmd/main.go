package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"basketball-league-admin/config"
	wsh "basketball-league-admin/internal/WSH"
	actionloghandlers "basketball-league-admin/internal/actionLogHandlers"
	"basketball-league-admin/internal/apiclient"
	"basketball-league-admin/internal/bot"
	dbpkg "basketball-league-admin/internal/db"
	gamehandlers "basketball-league-admin/internal/gameHandlers"
	"basketball-league-admin/internal/hub"
	"basketball-league-admin/internal/livegame"
	"basketball-league-admin/internal/models"
	"basketball-league-admin/internal/publisher"
	teamhandlers "basketball-league-admin/internal/teamHandlers"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	DB, err := dbpkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	client := apiclient.New(cfg.APIBaseURL,
		apiclient.WithToken(cfg.APIToken),
		apiclient.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	)
	journal := &actionloghandlers.Handler{Handler: models.Handler{DB: DB}}
	spectators := hub.NewHub()

	manager := livegame.NewManager(client, journal, spectators)

	var cache wsh.LiveCache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis url: %v", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		stream := publisher.NewStreamPublisher(rdb)
		manager.AddSink(stream)
		cache = stream
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go spectators.Run(ctx)
	go manager.RunClock(ctx, time.Second)

	games := &gamehandlers.Handler{API: client}
	teams := &teamhandlers.Handler{API: client}

	server := &wsh.Server{
		Live:           manager,
		Games:          games,
		Teams:          teams,
		Journal:        journal,
		Cache:          cache,
		PDF:            client,
		Spectators:     spectators,
		Passwords:      client,
		AllowedOrigins: cfg.AllowedOrigins,
		BaseCtx:        ctx,
	}
	go func() {
		if err := wsh.StartWS(ctx, cfg.ListenAddr, server.Routes()); err != nil {
			log.Printf("console: %v", err)
			stop()
		}
	}()

	if cfg.TgApiToken == "" {
		log.Println("no telegram token, running the HTTP console only")
		<-ctx.Done()
		return
	}

	tgBot, api, err := bot.NewBot(cfg, bot.HandlersConfig{
		Live:    manager,
		Games:   games,
		Teams:   teams,
		Journal: journal,
		PDF:     client,
	})
	if err != nil {
		log.Fatalf("telegram: %v", err)
	}
	bot.Run(ctx, tgBot, api)
}
