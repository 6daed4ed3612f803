package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/baccarat-roadmap/application"
	"github.com/luca-patrignani/baccarat-roadmap/config"
	"github.com/luca-patrignani/baccarat-roadmap/deck"
	"github.com/luca-patrignani/baccarat-roadmap/domain/roadmap"
	"github.com/luca-patrignani/baccarat-roadmap/feed"
)

type report struct {
	Source      string              `json:"source"`
	Snapshot    roadmap.Snapshot    `json:"snapshot"`
	Predictions roadmap.Predictions `json:"predictions"`
	lastHand    *deck.Hand
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("roadmap", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "YAML configuration file")
	feedPath := flags.String("feed", "", "shoe history to read (JSON or YAML)")
	simulate := flags.Bool("simulate", false, "deal a simulated shoe instead of reading a feed")
	hands := flags.Int("hands", 0, "hands to simulate (default from the configuration)")
	asJSON := flags.Bool("json", false, "print the roads as JSON")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *feedPath == "" && !*simulate {
		*simulate = true
	}
	if *feedPath != "" && *simulate {
		return fmt.Errorf("-feed and -simulate are exclusive")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	calc := roadmap.NewCalculator(
		roadmap.WithLogger(logger),
		roadmap.WithStrict(cfg.Debug),
		roadmap.WithLayout(cfg.RoadLayout()),
	)
	table := application.NewTable("cli", application.WithCalculator(calc), application.WithLogger(logger))

	var r report
	if *simulate {
		if *hands > 0 {
			cfg.Simulation.Hands = *hands
		}
		r, err = simulateShoe(cfg, table, !*asJSON)
	} else {
		r, err = readFeed(*feedPath, calc)
	}
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("accarat ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("R", pterm.FgBlue.ToStyle()),
		putils.LettersFromStringWithStyle("oads", pterm.FgDarkGray.ToStyle()),
	).Render()
	pterm.Info.Printfln("Source: %s", r.Source)
	if r.lastHand != nil {
		pterm.Info.Printfln("Last coup: %s", styledHand(*r.lastHand))
	}
	printReport(r.Snapshot, r.Predictions)
	return nil
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	pl := pterm.DefaultLogger.WithWriter(w)
	switch level {
	case slog.LevelDebug:
		pl = pl.WithLevel(pterm.LogLevelDebug)
	case slog.LevelWarn:
		pl = pl.WithLevel(pterm.LogLevelWarn)
	case slog.LevelError:
		pl = pl.WithLevel(pterm.LogLevelError)
	default:
		pl = pl.WithLevel(pterm.LogLevelInfo)
	}
	return slog.New(pterm.NewSlogHandler(pl)), nil
}

func readFeed(path string, calc *roadmap.Calculator) (report, error) {
	outcomes, err := feed.Load(path)
	if err != nil {
		return report{}, err
	}
	snap, err := calc.Calculate(outcomes)
	if err != nil {
		return report{}, err
	}
	preds, err := calc.Predictions(outcomes)
	if err != nil {
		return report{}, err
	}
	return report{Source: path, Snapshot: snap, Predictions: preds}, nil
}

func simulateShoe(cfg *config.Config, table *application.Table, interactive bool) (report, error) {
	shoe, err := cfg.Shoe()
	if err != nil {
		return report{}, err
	}
	var spinner *pterm.SpinnerPrinter
	if interactive {
		spinner, _ = pterm.DefaultSpinner.Start("Dealing the shoe ...")
	}
	var last *deck.Hand
	err = table.Simulate(shoe, cfg.Simulation.Hands, func(h deck.Hand, _ roadmap.Snapshot) {
		last = &h
	})
	if spinner != nil {
		if err != nil {
			spinner.Fail()
		} else {
			spinner.Success()
		}
	}
	if err != nil {
		return report{}, err
	}

	snap, err := table.Snapshot()
	if err != nil {
		return report{}, err
	}
	preds, err := table.Predictions()
	if err != nil {
		return report{}, err
	}
	source := fmt.Sprintf("simulated %s shoe %s, %d decks, %d hands", shoe.Variant, table.Ledger().ShoeID(), shoe.Decks, table.Ledger().Len())
	return report{Source: source, Snapshot: snap, Predictions: preds, lastHand: last}, nil
}
