package service

import (
	"fmt"

	"go.uber.org/zap"

	"pacer/internal/config"
	"pacer/internal/pace"
	"pacer/internal/store"
)

// Session owns the converter state for the TUI. It is not safe for
// concurrent use; the Bubble Tea update loop is its only writer.
type Session struct {
	state   pace.State
	options pace.OptionSet
	store   *store.DB
	logger  *zap.Logger
}

// NewSession creates a session seeded from the display config. db may be
// nil, in which case no history is kept.
func NewSession(cfg *config.Config, db *store.DB, logger *zap.Logger) (*Session, error) {
	if cfg == nil {
		defaults := config.DefaultConfig()
		cfg = &defaults
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	unit, err := pace.ParseUnit(cfg.Display.InitialUnit)
	if err != nil {
		return nil, fmt.Errorf("initial unit: %w", err)
	}
	state, err := pace.NewState(cfg.Display.InitialPace, unit)
	if err != nil {
		return nil, fmt.Errorf("initial pace: %w", err)
	}

	return &Session{
		state:   state,
		options: pace.NewOptionSet(cfg.Ranges()),
		store:   db,
		logger:  logger,
	}, nil
}

// State returns the current precise state
func (s *Session) State() pace.State {
	return s.state
}

// Options returns the wheel options of a unit
func (s *Session) Options(u pace.Unit) []pace.PickerOption {
	return s.options.For(u)
}

// Wheels returns the display state of all four wheels
func (s *Session) Wheels() []pace.Wheel {
	return pace.Reconcile(s.state, s.options)
}

// RaceTimes returns finish times at the current pace
func (s *Session) RaceTimes() []pace.RaceTime {
	return pace.RaceTimes(s.state.Precise.MinPerMile)
}

// SelectOption applies a wheel selection
func (s *Session) SelectOption(u pace.Unit, value string) error {
	next, err := pace.SetFromOption(s.state, value, u)
	if err != nil {
		s.reject(store.SourceWheel, value, err)
		return err
	}
	s.apply(next, store.SourceWheel, value)
	return nil
}

// SubmitCommand parses and applies a free-text command
func (s *Session) SubmitCommand(text string) (pace.Command, error) {
	cmd, err := pace.ParseCommandInput(text)
	if err != nil {
		s.reject(store.SourceCommand, text, err)
		return pace.Command{}, err
	}
	next, err := pace.ApplyCommand(s.state, cmd)
	if err != nil {
		s.reject(store.SourceCommand, text, err)
		return pace.Command{}, err
	}
	s.apply(next, store.SourceCommand, text)
	return cmd, nil
}

// SubmitEntry applies a quick-entry palette submission
func (s *Session) SubmitEntry(id, text string) error {
	minPerMile, err := pace.ResolveQuickEntry(id, text)
	if err != nil {
		s.reject(store.SourceEntry, text, err)
		return err
	}

	// Pace and speed entries keep their own unit active; race entries drive min/mi.
	unit := pace.MinPerMile
	value := minPerMile
	if e, ok := pace.LookupQuickEntry(id); ok && e.Race == "" {
		unit = e.Unit
		if value, err = pace.Convert(minPerMile, pace.MinPerMile, unit); err != nil {
			s.reject(store.SourceEntry, text, err)
			return err
		}
	}

	next, err := pace.Update(s.state, value, unit)
	if err != nil {
		s.reject(store.SourceEntry, text, err)
		return err
	}
	s.apply(next, store.SourceEntry, id+" "+text)
	return nil
}

// Nudge moves a unit's wheel by steps options, clamped to the list, and
// applies the resulting option
func (s *Session) Nudge(u pace.Unit, steps int) error {
	options := s.options.For(u)
	if len(options) == 0 {
		return fmt.Errorf("%w: no options for %s", pace.ErrUnknownUnit, u)
	}

	mode := pace.Floor
	if u == s.state.Active {
		mode = pace.Nearest
	}
	current, _ := pace.Position(s.state.Precise.Get(u), options, mode)
	idx := pace.IndexOf(current, options)

	// A floor that sits strictly below the precise value already counts
	// as one step down.
	if steps < 0 && mode == pace.Floor && idx >= 0 && !pace.IsExactMatch(s.state.Precise.Get(u), options) {
		if v, err := options[idx].Float(); err == nil && v < s.state.Precise.Get(u) {
			steps++
		}
	}

	idx = clamp(idx+steps, 0, len(options)-1)
	return s.SelectOption(u, options[idx].Value)
}

// History returns the most recent entries of this session, newest first
func (s *Session) History(limit int) ([]store.Entry, error) {
	if s.store == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.store.RecentEntries(limit)
}

// ClearHistory removes every entry of this session
func (s *Session) ClearHistory() error {
	if s.store == nil {
		return nil
	}
	return s.store.ClearEntries()
}

func (s *Session) apply(next pace.State, source store.Source, input string) {
	s.state = next
	value := next.Precise.Get(next.Active)

	s.logger.Info("pace updated",
		zap.String("source", string(source)),
		zap.String("input", input),
		zap.String("unit", string(next.Active)),
		zap.Float64("value", value),
		zap.Float64("min_per_mile", next.Precise.MinPerMile),
	)

	if s.store == nil {
		return
	}
	err := s.store.RecordEntry(&store.Entry{
		Source:     source,
		Input:      input,
		Unit:       string(next.Active),
		Value:      value,
		MinPerMile: next.Precise.MinPerMile,
	})
	if err != nil {
		s.logger.Warn("recording history entry", zap.Error(err))
	}
}

func (s *Session) reject(source store.Source, input string, err error) {
	s.logger.Warn("input rejected",
		zap.String("source", string(source)),
		zap.String("input", input),
		zap.Error(err),
	)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
