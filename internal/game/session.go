// Package game runs one local two-player game of Enclave: setup rules,
// order collection and phase resolution on top of the territory engine.
package game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/freeeve/enclave/internal/view"
	"github.com/freeeve/enclave/pkg/territory"
)

// SetupRows is the depth of each player's placement zone, counted from their
// own edge of the board.
const SetupRows = 3

var (
	ErrSetupClosed      = errors.New("setup is over")
	ErrNotStarted       = errors.New("game has not started")
	ErrGameOver         = errors.New("game is over")
	ErrOutsideSetupZone = errors.New("outside setup zone")
	ErrCityPlaced       = errors.New("city already placed")
	ErrNoCity           = errors.New("player has no city")
	ErrNoUnits          = errors.New("player has no units")
	ErrNotYourUnit      = errors.New("unit belongs to another player")
	ErrDuplicateOrder   = errors.New("unit already has an order")
	ErrAlreadySubmitted = errors.New("orders already submitted")
	ErrOrdersMissing    = errors.New("waiting for orders")
)

// Session owns the grid of one game. Positions passed to the setup methods
// are in the placing player's frame; orders use board coordinates.
type Session struct {
	mu      sync.Mutex
	id      string
	grid    *territory.Grid
	turn    int
	started bool
	orders  map[territory.Player][]territory.Order
	outcome territory.Outcome
}

// NewSession creates a game on the standard board.
func NewSession(id string) *Session {
	return NewSessionWithGrid(id, territory.NewStandardGrid())
}

// NewSessionWithGrid creates a game on g, which the session takes over.
func NewSessionWithGrid(id string, g *territory.Grid) *Session {
	return &Session{
		id:     id,
		grid:   g,
		orders: make(map[territory.Player][]territory.Order),
	}
}

func (s *Session) ID() string { return s.id }

// Grid returns the board. Callers must not modify it.
func (s *Session) Grid() *territory.Grid { return s.grid }

// Turn returns the number of the phase being collected, starting at 1.
func (s *Session) Turn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turn
}

func (s *Session) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Outcome returns the result of the last resolved phase.
func (s *Session) Outcome() territory.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// View returns the board as the player sees it.
func (s *Session) View(player territory.Player) *view.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view.Project(s.grid, player)
}

// Units returns the player's live units ordered by their position in the
// player's own frame.
func (s *Session) Units(player territory.Player) []territory.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	units := s.grid.UnitsOf(player)
	if player == territory.Player2 {
		for i, j := 0, len(units)-1; i < j; i, j = i+1, j-1 {
			units[i], units[j] = units[j], units[i]
		}
	}
	return units
}

func (s *Session) logger() zerolog.Logger {
	return log.With().Str("gameId", s.id).Logger()
}

// toSetupZone converts p from the player's frame to board coordinates and
// checks it lies in the player's placement zone.
func (s *Session) toSetupZone(player territory.Player, p territory.Position) (territory.Position, error) {
	if player != territory.Player1 && player != territory.Player2 {
		return p, territory.ErrInvalidPlayer
	}
	f := view.NewFrame(s.grid, player)
	if p.Row < 0 || p.Col < 0 || p.Row >= f.Rows || p.Col >= f.Cols {
		return p, territory.ErrOffGrid
	}
	if p.Row < f.Rows-SetupRows {
		return p, ErrOutsideSetupZone
	}
	return f.ToBoard(p), nil
}

// PlaceCity founds the player's only city at p.
func (s *Session) PlaceCity(player territory.Player, p territory.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrSetupClosed
	}
	at, err := s.toSetupZone(player, p)
	if err != nil {
		return fmt.Errorf("place city at %s: %w", p, err)
	}
	if s.hasCity(player) {
		return fmt.Errorf("place city at %s: %w", p, ErrCityPlaced)
	}
	if err := s.grid.FoundCity(at, player); err != nil {
		return err
	}
	l := s.logger()
	l.Debug().Str("player", player.String()).Str("at", at.String()).Msg("City placed")
	return nil
}

// PlaceUnit adds a unit of the player at p.
func (s *Session) PlaceUnit(player territory.Player, p territory.Position) (territory.UnitID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return territory.NoUnit, ErrSetupClosed
	}
	at, err := s.toSetupZone(player, p)
	if err != nil {
		return territory.NoUnit, fmt.Errorf("place unit at %s: %w", p, err)
	}
	return s.grid.Place(territory.NewUnit(player), at)
}

// Start closes setup. Each player needs a city and at least one unit.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrSetupClosed
	}
	for _, player := range territory.Players() {
		if !s.hasCity(player) {
			return fmt.Errorf("player %s: %w", player, ErrNoCity)
		}
		if s.grid.UnitCount(player) == 0 {
			return fmt.Errorf("player %s: %w", player, ErrNoUnits)
		}
	}
	s.started = true
	s.turn = 1
	l := s.logger()
	l.Info().
		Int("units1", s.grid.UnitCount(territory.Player1)).
		Int("units2", s.grid.UnitCount(territory.Player2)).
		Msg("Game started")
	return nil
}

func (s *Session) hasCity(player territory.Player) bool {
	for _, c := range s.grid.Cities() {
		if s.grid.CellAt(c).City == player {
			return true
		}
	}
	return false
}

// SetupStarter applies the fixed opening: each city on the second row from
// its owner's edge, one column in, and a full back row of units. The game is
// started afterwards.
func (s *Session) SetupStarter() error {
	for _, player := range territory.Players() {
		if err := s.PlaceCity(player, territory.Pos(7, 1)); err != nil {
			return err
		}
		for c := 0; c < territory.MaxUnitsPerPlayer; c++ {
			if _, err := s.PlaceUnit(player, territory.Pos(8, c)); err != nil {
				return err
			}
		}
	}
	return s.Start()
}

// SubmitOrders records the player's orders for the current phase. The whole
// batch is rejected if any order names a foreign unit, repeats a unit or is
// not a legal move on the current board.
func (s *Session) SubmitOrders(player territory.Player, orders []territory.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.playable(); err != nil {
		return err
	}
	if player != territory.Player1 && player != territory.Player2 {
		return territory.ErrInvalidPlayer
	}
	if _, ok := s.orders[player]; ok {
		return ErrAlreadySubmitted
	}

	seen := make(map[territory.UnitID]bool, len(orders))
	for _, o := range orders {
		u, ok := s.grid.Unit(o.Unit)
		if !ok {
			return fmt.Errorf("order %s: %w", o, territory.ErrUnitNotFound)
		}
		if u.Owner != player {
			return fmt.Errorf("order %s: %w", o, ErrNotYourUnit)
		}
		if seen[o.Unit] {
			return fmt.Errorf("order %s: %w", o, ErrDuplicateOrder)
		}
		seen[o.Unit] = true
		if err := s.grid.ValidateMove(o.Unit, o.To); err != nil {
			return fmt.Errorf("order %s: %w", o, err)
		}
	}

	s.orders[player] = append([]territory.Order(nil), orders...)
	l := s.logger()
	l.Debug().Int("turn", s.turn).Str("player", player.String()).
		Int("orders", len(orders)).Msg("Orders submitted")
	return nil
}

// Submitted returns true if the player has orders in for the current phase.
func (s *Session) Submitted(player territory.Player) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.orders[player]
	return ok
}

func (s *Session) playable() error {
	if !s.started {
		return ErrNotStarted
	}
	if s.outcome.Over() {
		return ErrGameOver
	}
	return nil
}

// ResolvePhase applies both players' orders at once, resolves captures and
// checks for a winner. A cancelled context is refused before the board is
// touched; once started, resolution always runs to completion.
func (s *Session) ResolvePhase(ctx context.Context) (territory.PhaseReport, error) {
	if err := ctx.Err(); err != nil {
		return territory.PhaseReport{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.playable(); err != nil {
		return territory.PhaseReport{}, err
	}
	var orders []territory.Order
	for _, player := range territory.Players() {
		o, ok := s.orders[player]
		if !ok {
			return territory.PhaseReport{}, fmt.Errorf("player %s: %w", player, ErrOrdersMissing)
		}
		orders = append(orders, o...)
	}

	report := territory.ApplyPhase(s.grid, orders)
	l := s.logger().With().Int("turn", s.turn).Logger()
	for _, m := range report.Moves {
		if !m.Applied() {
			l.Warn().Err(m.Err).Str("order", m.Order.String()).Msg("Order rejected at resolution")
		}
	}
	l.Info().
		Int("moves", len(report.Moves)).
		Int("captures", len(report.Captures)).
		Str("outcome", report.Outcome.String()).
		Msg("Phase resolved")

	s.outcome = report.Outcome
	s.orders = make(map[territory.Player][]territory.Order)
	if report.Outcome.Over() {
		l.Info().Str("outcome", report.Outcome.String()).Msg("Game over")
	} else {
		s.turn++
	}
	return report, nil
}
