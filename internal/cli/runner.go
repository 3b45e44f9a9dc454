// Package cli plays a game of Enclave on one terminal shared by two players.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/message"

	"github.com/freeeve/enclave/internal/game"
	"github.com/freeeve/enclave/internal/render"
	"github.com/freeeve/enclave/internal/view"
	"github.com/freeeve/enclave/pkg/territory"
)

var (
	errSyntax     = errors.New("expected row,column")
	errOutOfRange = errors.New("coordinates out of range")
)

// Screen controls what the players see between turns. Both players share the
// terminal, so the board must be cleared before it changes hands.
type Screen interface {
	Clear() error
	// HandOff blocks until the next player has taken the terminal.
	HandOff(next territory.Player) error
}

// Options configures a Runner.
type Options struct {
	Lang        string
	ClearScreen bool
	// Screen overrides the terminal screen, mostly for tests.
	Screen Screen
}

// Runner drives a session from line-oriented input.
type Runner struct {
	session *game.Session
	in      *bufio.Scanner
	out     io.Writer
	p       *message.Printer
	screen  Screen
}

// NewRunner creates a Runner reading from in and writing to out.
func NewRunner(s *game.Session, in io.Reader, out io.Writer, opts Options) *Runner {
	r := &Runner{
		session: s,
		in:      bufio.NewScanner(in),
		out:     out,
		p:       Printer(opts.Lang),
		screen:  opts.Screen,
	}
	if r.screen == nil {
		r.screen = &terminalScreen{r: r, clear: opts.ClearScreen}
	}
	return r
}

// Run plays until the game is decided. If the session has not started, both
// players first place their city and units.
func (r *Runner) Run(ctx context.Context) (territory.Outcome, error) {
	if !r.session.Started() {
		if err := r.setup(); err != nil {
			return territory.Ongoing, err
		}
	}

	for {
		for i, player := range territory.Players() {
			if i > 0 {
				if err := r.screen.HandOff(player); err != nil {
					return territory.Ongoing, err
				}
			}
			orders, err := r.collectOrders(player)
			if err != nil {
				return territory.Ongoing, err
			}
			if err := r.session.SubmitOrders(player, orders); err != nil {
				return territory.Ongoing, fmt.Errorf("submit orders: %w", err)
			}
		}

		turn := r.session.Turn()
		report, err := r.session.ResolvePhase(ctx)
		if err != nil {
			return territory.Ongoing, fmt.Errorf("resolve turn %d: %w", turn, err)
		}
		if err := r.screen.Clear(); err != nil {
			return territory.Ongoing, err
		}
		r.println(r.p.Sprintf("turn.resolved", turn, len(report.Captures)))

		switch report.Outcome {
		case territory.Draw:
			r.println(r.p.Sprintf("game.draw"))
			return report.Outcome, nil
		case territory.Player1Wins, territory.Player2Wins:
			r.println(r.p.Sprintf("game.win", report.Outcome.Winner()))
			return report.Outcome, nil
		}
		if err := r.screen.HandOff(territory.Player1); err != nil {
			return territory.Ongoing, err
		}
	}
}

func (r *Runner) setup() error {
	for i, player := range territory.Players() {
		if i > 0 {
			if err := r.screen.HandOff(player); err != nil {
				return err
			}
		}
		if err := r.placeCity(player); err != nil {
			return err
		}
		if err := r.placeUnits(player); err != nil {
			return err
		}
	}
	if err := r.session.Start(); err != nil {
		return err
	}
	return r.screen.HandOff(territory.Player1)
}

func (r *Runner) placeCity(player territory.Player) error {
	if err := r.showBoard(player); err != nil {
		return err
	}
	for {
		p, err := r.askPosition(player, r.p.Sprintf("prompt.city", player))
		if err != nil {
			return err
		}
		err = r.session.PlaceCity(player, p)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, territory.ErrBlockedTerrain):
			r.println(r.p.Sprintf("reason.city_terrain"))
		case errors.Is(err, territory.ErrCityExists):
			r.println(r.p.Sprintf("reason.city_taken"))
		default:
			r.println(r.reason(err))
		}
	}
}

func (r *Runner) placeUnits(player territory.Player) error {
	for i := 1; i <= territory.MaxUnitsPerPlayer; i++ {
		for {
			p, err := r.askPosition(player, r.p.Sprintf("prompt.unit", player, i))
			if err != nil {
				return err
			}
			if _, err := r.session.PlaceUnit(player, p); err != nil {
				r.println(r.reason(err))
				continue
			}
			break
		}
		if err := r.screen.Clear(); err != nil {
			return err
		}
		if err := r.showBoard(player); err != nil {
			return err
		}
	}
	return nil
}

// collectOrders asks for one move per unit. Orders are checked against the
// board as it stands; nothing moves until both players have submitted.
func (r *Runner) collectOrders(player territory.Player) ([]territory.Order, error) {
	g := r.session.Grid()
	frame := view.NewFrame(g, player)
	var orders []territory.Order

	for _, u := range r.session.Units(player) {
		if err := r.screen.Clear(); err != nil {
			return nil, err
		}
		if err := r.showBoard(player); err != nil {
			return nil, err
		}
		for _, o := range orders {
			from, _ := g.UnitPosition(o.Unit)
			r.println(r.p.Sprintf("move.planned", frame.FromBoard(from), frame.FromBoard(o.To)))
		}

		from, _ := g.UnitPosition(u.ID)
		prompt := r.p.Sprintf("prompt.move", player, frame.FromBoard(from))
		for {
			line, err := r.prompt(prompt)
			if err != nil {
				return nil, err
			}
			if line == "" {
				break
			}
			p, err := parsePosition(line, frame.Rows, frame.Cols)
			if err != nil {
				r.println(r.inputError(err, frame.Rows))
				continue
			}
			to := frame.ToBoard(p)
			if err := g.ValidateMove(u.ID, to); err != nil {
				log.Debug().Err(err).Str("player", player.String()).Msg("Move rejected")
				r.println(r.reason(err))
				continue
			}
			orders = append(orders, territory.Order{Unit: u.ID, To: to})
			break
		}
	}
	return orders, nil
}

// askPosition prompts until the line parses as a position in the player's frame.
func (r *Runner) askPosition(player territory.Player, prompt string) (territory.Position, error) {
	frame := view.NewFrame(r.session.Grid(), player)
	for {
		line, err := r.prompt(prompt)
		if err != nil {
			return territory.Position{}, err
		}
		p, err := parsePosition(line, frame.Rows, frame.Cols)
		if err != nil {
			r.println(r.inputError(err, frame.Rows))
			continue
		}
		return p, nil
	}
}

func (r *Runner) showBoard(player territory.Player) error {
	return render.Board(r.out, r.session.View(player))
}

func (r *Runner) prompt(text string) (string, error) {
	if _, err := io.WriteString(r.out, text); err != nil {
		return "", err
	}
	return r.readLine()
}

func (r *Runner) readLine() (string, error) {
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.in.Text()), nil
}

func (r *Runner) println(s string) {
	fmt.Fprintln(r.out, s)
}

func (r *Runner) inputError(err error, rows int) string {
	if errors.Is(err, errOutOfRange) {
		return r.p.Sprintf("input.range", rows-1)
	}
	return r.p.Sprintf("input.syntax")
}

// reason explains a rule rejection in the player's language.
func (r *Runner) reason(err error) string {
	switch {
	case errors.Is(err, game.ErrOutsideSetupZone):
		return r.p.Sprintf("reason.zone", game.SetupRows)
	case errors.Is(err, territory.ErrBlockedTerrain):
		return r.p.Sprintf("reason.terrain")
	case errors.Is(err, territory.ErrCapacityExceeded):
		return r.p.Sprintf("reason.capacity", territory.MaxUnitsPerPlayer)
	case errors.Is(err, territory.ErrTooFar):
		return r.p.Sprintf("reason.too_far")
	default:
		return r.p.Sprintf("reason.other", err)
	}
}

// parsePosition reads "row,column" with optional spaces around either number.
func parsePosition(s string, rows, cols int) (territory.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return territory.Position{}, errSyntax
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return territory.Position{}, errSyntax
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return territory.Position{}, errSyntax
	}
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return territory.Position{}, errOutOfRange
	}
	return territory.Pos(row, col), nil
}

// terminalScreen clears with ANSI escapes and waits for enter on hand-off.
type terminalScreen struct {
	r     *Runner
	clear bool
}

func (s *terminalScreen) Clear() error {
	if !s.clear {
		return nil
	}
	_, err := io.WriteString(s.r.out, "\033[H\033[2J")
	return err
}

func (s *terminalScreen) HandOff(next territory.Player) error {
	if err := s.Clear(); err != nil {
		return err
	}
	s.r.println(s.r.p.Sprintf("prompt.handoff", next))
	if _, err := s.r.readLine(); err != nil {
		return err
	}
	return s.Clear()
}
