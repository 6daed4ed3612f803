package roadmap

import (
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/baccarat-roadmap/domain/baccarat"
)

// Calculator computes road maps. It holds configuration only; every call
// builds its own grids, so one Calculator may serve concurrent callers.
type Calculator struct {
	logger *slog.Logger
	strict bool
	layout Layout
}

type option func(Calculator) Calculator

// NewCalculator creates a Calculator with the default layout, logging to
// slog.Default.
func NewCalculator(opts ...option) *Calculator {
	c := Calculator{layout: DefaultLayout()}
	for _, opt := range opts {
		c = opt(c)
	}
	return &c
}

func WithLogger(logger *slog.Logger) option {
	return func(c Calculator) Calculator {
		if logger != nil {
			c.logger = logger
		}
		return c
	}
}

// WithStrict makes structural defects in a road panic instead of emptying
// that road. Meant for debug builds and tests.
func WithStrict(strict bool) option {
	return func(c Calculator) Calculator {
		c.strict = strict
		return c
	}
}

// WithLayout overrides the pixel geometry of the given roads.
func WithLayout(layout Layout) option {
	return func(c Calculator) Calculator {
		merged := DefaultLayout()
		for road, g := range layout {
			merged[road] = g
		}
		c.layout = merged
		return c
	}
}

// Snapshot is every board computed from one outcome list.
type Snapshot struct {
	BeadPlate     []BeadCell      `json:"bead_plate"`
	BigRoad       []BigRoadCell   `json:"big_road"`
	BigEyeRoad    []DerivedCell   `json:"big_eye_road"`
	SmallRoad     []DerivedCell   `json:"small_road"`
	CockroachRoad []DerivedCell   `json:"cockroach_road"`
	ThreeStar     []ThreeStarCell `json:"three_star"`
	Statistics    Statistics      `json:"statistics"`
	Sequence      SequenceReport  `json:"sequence"`
	// Degraded lists roads emptied because of an internal defect.
	Degraded []Road `json:"degraded,omitempty"`
}

// Derived returns the cells of the derived road with the given name.
func (s Snapshot) Derived(road Road) []DerivedCell {
	switch road {
	case RoadBigEye:
		return s.BigEyeRoad
	case RoadSmall:
		return s.SmallRoad
	case RoadCockroach:
		return s.CockroachRoad
	}
	return nil
}

func emptySnapshot() Snapshot {
	return Snapshot{
		BeadPlate:     []BeadCell{},
		BigRoad:       []BigRoadCell{},
		BigEyeRoad:    []DerivedCell{},
		SmallRoad:     []DerivedCell{},
		CockroachRoad: []DerivedCell{},
		ThreeStar:     []ThreeStarCell{},
	}
}

// Validate checks every outcome and reports the first bad one with its
// position and key.
func Validate(outcomes []baccarat.Outcome) error {
	for i, o := range outcomes {
		if err := o.Validate(); err != nil {
			return fmt.Errorf("outcome %d (key %q): %w", i, o.Key, err)
		}
	}
	return nil
}

// Calculate computes all six roads, the statistics and the sequence report.
// It fails only on invalid outcomes; a defect in one road empties that road
// and leaves the others intact.
func (c *Calculator) Calculate(outcomes []baccarat.Outcome) (Snapshot, error) {
	if err := Validate(outcomes); err != nil {
		return Snapshot{}, err
	}
	snap := emptySnapshot()

	snap.Sequence = CheckSequence(outcomes)
	if snap.Sequence.Malformed {
		c.log().Warn("malformed outcome sequence",
			"duplicates", snap.Sequence.Duplicates,
			"gaps", snap.Sequence.Gaps)
	}

	snap.BeadPlate = BuildBeadPlate(outcomes)
	c.layout.placeBeads(snap.BeadPlate)
	snap.Statistics = ComputeStatistics(outcomes)

	raw := BuildBigRoadRaw(outcomes)
	if raw.DroppedTies > 0 {
		c.log().Debug("ties before first win dropped from big road", "count", raw.DroppedTies)
	}
	c.log().Debug("big road raw", "columns", raw.String())

	c.guard(&snap, RoadBig, func() error {
		big, err := ApplyTurning(raw, BigRoadRows)
		if err != nil {
			return err
		}
		c.layout.placeBigRoad(big.Cells)
		snap.BigRoad = big.Cells
		c.log().Debug("big road bend points", "bends", big.BendPoints)
		return nil
	})

	for _, d := range DerivedRoads {
		c.guard(&snap, d.Road, func() error {
			road, err := BuildDerivedRoad(raw, d.Gap, DerivedRoadRows)
			if err != nil {
				return err
			}
			c.layout.placeDerived(d.Road, road.Cells)
			switch d.Road {
			case RoadBigEye:
				snap.BigEyeRoad = road.Cells
			case RoadSmall:
				snap.SmallRoad = road.Cells
			case RoadCockroach:
				snap.CockroachRoad = road.Cells
			}
			c.log().Debug("derived road", "road", d.Road, "cells", len(road.Cells), "bends", road.BendPoints)
			return nil
		})
	}

	c.guard(&snap, RoadThreeStar, func() error {
		cells, err := BuildThreeStar(raw)
		if err != nil {
			return err
		}
		c.layout.placeThreeStar(cells)
		snap.ThreeStar = cells
		return nil
	})

	return snap, nil
}

func (c *Calculator) log() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// guard runs one road builder and records the road as degraded when it fails.
func (c *Calculator) guard(snap *Snapshot, road Road, build func() error) {
	if !c.attempt(road, build) {
		snap.Degraded = append(snap.Degraded, road)
	}
}

// attempt runs build and reports whether it succeeded. In strict mode
// failures panic; otherwise they are logged.
func (c *Calculator) attempt(road Road, build func() error) bool {
	err := c.run(build)
	if err == nil {
		return true
	}
	if c.strict {
		panic(fmt.Errorf("%s: %w", road, err))
	}
	c.log().Error("road degraded", "road", road, "error", err)
	return false
}

func (c *Calculator) run(build func() error) (err error) {
	if !c.strict {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
	}
	return build()
}

// Statistics validates the outcomes and tallies them.
func (c *Calculator) Statistics(outcomes []baccarat.Outcome) (Statistics, error) {
	if err := Validate(outcomes); err != nil {
		return Statistics{}, err
	}
	return ComputeStatistics(outcomes), nil
}

var defaultCalculator = NewCalculator()

// Calculate computes a snapshot with the default calculator.
func Calculate(outcomes []baccarat.Outcome) (Snapshot, error) {
	return defaultCalculator.Calculate(outcomes)
}
