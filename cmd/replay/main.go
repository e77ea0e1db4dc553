package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nstehr/sitewar/agent"
	"github.com/nstehr/sitewar/config"
	"github.com/nstehr/sitewar/replay"
	"github.com/nstehr/sitewar/rules"
)

func main() {
	var (
		inPath     = flag.String("in", "", "path to a .jsonl.zst recording")
		configPath = flag.String("config", "", "YAML tuning to replay with (optional)")
		verbose    = flag.Bool("v", false, "print every turn, not only mismatches")
	)
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "missing -in")
		os.Exit(2)
	}

	// Agent logging would drown the report.
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load config:", err)
			os.Exit(1)
		}
	}

	r, err := replay.Open(*inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open recording:", err)
		os.Exit(1)
	}
	defer r.Close()

	game, err := replay.ReadGame(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read recording:", err)
		os.Exit(1)
	}

	engine, err := rules.NewEngine(rules.DefaultRules())
	if err != nil {
		fmt.Fprintln(os.Stderr, "compile rules:", err)
		os.Exit(1)
	}

	diffs, err := run(agent.New(engine, cfg), game, os.Stdout, *verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "replay:", err)
		os.Exit(1)
	}
	fmt.Printf("replayed %d turns on %d sites: %d differ\n", len(game.Turns), len(game.Sites), diffs)
	if diffs > 0 {
		os.Exit(1)
	}
}

// run feeds every recorded turn to a and reports the turns whose commands
// differ from the recording.
func run(a *agent.Agent, game replay.Game, out io.Writer, verbose bool) (int, error) {
	if err := a.HandleSetup(game.Sites); err != nil {
		return 0, err
	}
	diffs := 0
	for _, e := range game.Turns {
		tc, err := a.HandleTurn(*e.Input)
		if err != nil {
			return diffs, fmt.Errorf("turn %d: %w", e.Turn, err)
		}
		if a.Turn() != e.Turn {
			return diffs, fmt.Errorf("turn mismatch: recorded=%d replayed=%d", e.Turn, a.Turn())
		}
		got := tc.Lines()
		same := got[0] == e.Queen && got[1] == e.Train
		if !same {
			diffs++
			fmt.Fprintf(out, "turn %d: recorded %q / %q, replayed %q / %q\n", e.Turn, e.Queen, e.Train, got[0], got[1])
		} else if verbose {
			fmt.Fprintf(out, "turn %d: %s / %s\n", e.Turn, got[0], got[1])
		}
	}
	return diffs, nil
}
