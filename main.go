package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nstehr/sitewar/agent"
	"github.com/nstehr/sitewar/config"
	"github.com/nstehr/sitewar/ipc"
	"github.com/nstehr/sitewar/replay"
	"github.com/nstehr/sitewar/rules"
)

const banner = `
 ___ _ _       __    __
/ __(_) |_ ___ \ \  / /_ _ _ _
\__ \ |  _/ -_) \ \/\/ / _' | '_|
|___/_|\__\___|  \_/\_/\__,_|_|

Rule-Driven Queen Tactics`

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	debug := flag.Bool("debug", false, "log every rule and tactic decision")
	recordPath := flag.String("record", "", "write the game to a zstd JSONL recording")
	flag.Parse()

	// stdout belongs to the referee; everything else goes to stderr.
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	fmt.Fprintln(os.Stderr, banner)

	slog.Info("starting sitewar")

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}

	engine, err := rules.NewEngine(rules.DefaultRules())
	if err != nil {
		slog.Error("failed to compile rules", "error", err)
		os.Exit(1)
	}
	slog.Info("rules compiled", "count", len(engine.Rules()))

	a := agent.New(engine, cfg)
	if *recordPath != "" {
		rec, err := replay.Create(*recordPath)
		if err != nil {
			slog.Error("failed to create recording", "path", *recordPath, "error", err)
			os.Exit(1)
		}
		a.Recorder = rec
		slog.Info("recording game", "path", *recordPath)
	}

	if err := play(a); err != nil {
		slog.Error("read loop failed", "turn", a.Turn(), "error", err)
		closeRecorder(a)
		os.Exit(1)
	}
	closeRecorder(a)
}

// play answers the referee until its input closes or a signal arrives.
func play(a *agent.Agent) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := ipc.NewConnection(os.Stdin, os.Stdout)
	c.HandleSetup(a.HandleSetup)
	c.HandleTurn(a.HandleTurn)

	done := make(chan error, 1)
	go func() { done <- c.ReadLoop() }()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
		slog.Info("game over", "turns", a.Turn())
	case <-ctx.Done():
		slog.Info("shutting down")
	}
	return nil
}

func closeRecorder(a *agent.Agent) {
	rec, ok := a.Recorder.(*replay.Recorder)
	if !ok {
		return
	}
	if err := rec.Close(); err != nil {
		slog.Warn("failed to close recording", "error", err)
	}
}
