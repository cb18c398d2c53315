package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gmuffiness/agentfloor/audio"
	"github.com/gmuffiness/agentfloor/config"
	"github.com/gmuffiness/agentfloor/engine"
	"github.com/gmuffiness/agentfloor/input"
	"github.com/gmuffiness/agentfloor/metrics"
	"github.com/gmuffiness/agentfloor/render"
	"github.com/gmuffiness/agentfloor/replay"
	"github.com/gmuffiness/agentfloor/store"
	"github.com/gmuffiness/agentfloor/stream"
	"github.com/gmuffiness/agentfloor/system"
	"github.com/gmuffiness/agentfloor/world"
)

var (
	configFlag = flag.String("config", "", "Path to config file (yaml)")
	orgFlag    = flag.String("org", "", "Organization id to mount (overrides config)")
	mutedFlag  = flag.Bool("muted", false, "Disable audio")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "agentfloor: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *orgFlag != "" {
		cfg.OrgID = *orgFlag
	}
	if *mutedFlag {
		cfg.Muted = true
	}

	logger, logClose, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer logClose()

	db, err := store.Open(cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	org, err := loadOrg(db, cfg.OrgID, logger)
	if err != nil {
		return err
	}

	recorder, err := replay.NewSessionRecorder(cfg.SessionDir)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer recorder.Close()

	collector := metrics.NewCollector()
	hub := stream.NewHub(logger)
	defer hub.Close()

	servers := startServers(cfg, hub, collector, logger)
	defer stopServers(servers)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	// restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "agentfloor crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	gctx := engine.NewGameContext(screen, org, cfg.PlayerName, nil, logger)
	gctx.Positions = db
	gctx.Recorder = recorder
	gctx.Observer = collector

	game := engine.NewGame(gctx)
	game.Sink = hub

	// update order is load-bearing: the player moves, then pointer
	// gestures resolve against fresh positions, then satellites and
	// animation follow, then the camera settles on the result
	game.AddSystem(system.NewPlayerSystem(gctx))
	game.AddSystem(system.NewDragSystem(gctx))
	game.AddSystem(system.NewSubAgentSystem(gctx))
	game.AddSystem(system.NewAvatarAnimSystem(gctx))
	game.AddSystem(system.NewCameraSystem(gctx))

	audioSvc := audio.NewService(cfg.Muted)
	game.Handle(audioSvc)
	defer audioSvc.Stop()

	orch := render.NewOrchestrator(gctx)
	game.Render = orch.Frame

	go input.Pump(screen, gctx.Input, time.Now)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("floor mounted",
		"org", gctx.OrgID(),
		"agents", len(gctx.Avatars),
		"session", recorder.Path())

	err = game.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return err
}

// loadOrg resolves the organization to mount, seeding the demo floor on a
// fresh database
func loadOrg(db *store.Store, orgID string, logger *slog.Logger) (*world.Organization, error) {
	if orgID == "" {
		id, err := db.FirstOrganizationID()
		if errors.Is(err, store.ErrNotFound) {
			seed := store.SeedOrganization()
			if err := db.SaveOrganization(seed); err != nil {
				return nil, fmt.Errorf("seed organization: %w", err)
			}
			logger.Info("seeded demo organization", "org", seed.ID)
			id = seed.ID
		} else if err != nil {
			return nil, err
		}
		orgID = id
	}
	org, err := db.LoadOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("load organization %s: %w", orgID, err)
	}
	return org, nil
}

func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// stderr is the terminal UI; logs go to a file
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

func startServers(cfg config.Config, hub *stream.Hub, collector *metrics.Collector, logger *slog.Logger) []*http.Server {
	var servers []*http.Server

	if cfg.StreamAddr != "" {
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", hub.ServeWS)
		srv := &http.Server{Addr: cfg.StreamAddr, Handler: mux}
		servers = append(servers, srv)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("stream server failed", "addr", cfg.StreamAddr, "error", err)
			}
		}()
	}

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}
		servers = append(servers, srv)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}
	return servers
}

func stopServers(servers []*http.Server) {
	for _, srv := range servers {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_ = srv.Shutdown(ctx)
		cancel()
	}
}
