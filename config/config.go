package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/luca-patrignani/baccarat-roadmap/deck"
	"github.com/luca-patrignani/baccarat-roadmap/domain/roadmap"
)

type Config struct {
	// Debug makes road defects panic instead of emptying the road.
	Debug      bool             `yaml:"debug"`
	LogLevel   string           `yaml:"log_level"`
	Layout     LayoutConfig     `yaml:"layout"`
	Simulation SimulationConfig `yaml:"simulation"`
}

type LayoutConfig struct {
	BeadPlate roadmap.CellLayout `yaml:"bead_plate"`
	BigRoad   roadmap.CellLayout `yaml:"big_road"`
	BigEye    roadmap.CellLayout `yaml:"big_eye"`
	Small     roadmap.CellLayout `yaml:"small"`
	Cockroach roadmap.CellLayout `yaml:"cockroach"`
	ThreeStar roadmap.CellLayout `yaml:"three_star"`
}

type SimulationConfig struct {
	Decks   int    `yaml:"decks"`
	Hands   int    `yaml:"hands"`
	Variant string `yaml:"variant"`
	CutCard int    `yaml:"cut_card"` // cards left behind the cut card
}

// Default returns the stock configuration.
func Default() *Config {
	l := roadmap.DefaultLayout()
	return &Config{
		LogLevel: "info",
		Layout: LayoutConfig{
			BeadPlate: l[roadmap.RoadBeadPlate],
			BigRoad:   l[roadmap.RoadBig],
			BigEye:    l[roadmap.RoadBigEye],
			Small:     l[roadmap.RoadSmall],
			Cockroach: l[roadmap.RoadCockroach],
			ThreeStar: l[roadmap.RoadThreeStar],
		},
		Simulation: SimulationConfig{
			Decks:   deck.DefaultDecks,
			Hands:   70,
			Variant: string(deck.Classic),
			CutCard: deck.DefaultCutCard,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result. An
// empty path returns the defaults.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	for road, g := range c.RoadLayout() {
		if g.CellSize <= 0 || g.Pad < 0 {
			return fmt.Errorf("layout %s: cell_size must be positive and pad not negative, got %d/%d", road, g.CellSize, g.Pad)
		}
	}
	s := c.Simulation
	if s.Decks < 1 {
		return fmt.Errorf("simulation: decks must be at least 1, got %d", s.Decks)
	}
	if s.Hands < 0 {
		return fmt.Errorf("simulation: hands must not be negative, got %d", s.Hands)
	}
	if s.CutCard < 0 || s.CutCard >= s.Decks*deck.CardsPerDeck {
		return fmt.Errorf("simulation: cut_card %d outside the shoe", s.CutCard)
	}
	if _, err := deck.ParseVariant(s.Variant); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
}

// RoadLayout converts the layout section for the road calculator.
func (c *Config) RoadLayout() roadmap.Layout {
	return roadmap.Layout{
		roadmap.RoadBeadPlate: c.Layout.BeadPlate,
		roadmap.RoadBig:       c.Layout.BigRoad,
		roadmap.RoadBigEye:    c.Layout.BigEye,
		roadmap.RoadSmall:     c.Layout.Small,
		roadmap.RoadCockroach: c.Layout.Cockroach,
		roadmap.RoadThreeStar: c.Layout.ThreeStar,
	}
}

// Shoe builds a shoe from the simulation section.
func (c *Config) Shoe() (*deck.Shoe, error) {
	variant, err := deck.ParseVariant(c.Simulation.Variant)
	if err != nil {
		return nil, err
	}
	return deck.NewShoe(
		deck.WithDecks(c.Simulation.Decks),
		deck.WithCutCard(c.Simulation.CutCard),
		deck.WithVariant(variant),
	)
}
