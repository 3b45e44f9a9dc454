package territory

import "fmt"

// Order asks for one unit to move to a cell during a move phase.
type Order struct {
	Unit UnitID
	To   Position
}

func (o Order) String() string {
	return fmt.Sprintf("unit %d -> %s", o.Unit, o.To)
}

// OrderResult pairs an order with the error that rejected it, if any.
type OrderResult struct {
	Order Order
	From  Position
	Err   error
}

// Applied returns true if the unit moved.
func (r OrderResult) Applied() bool {
	return r.Err == nil
}

// PhaseReport summarises one simultaneous move phase.
type PhaseReport struct {
	Moves    []OrderResult
	Captures []Capture
	Outcome  Outcome
}

// CapturedBy returns the captures of the player's units.
func (r *PhaseReport) CapturedBy(owner Player) []Capture {
	var out []Capture
	for _, c := range r.Captures {
		if c.Unit.Owner == owner {
			out = append(out, c)
		}
	}
	return out
}

// ApplyPhase applies the orders of both players, which were collected before
// any of them took effect, then resolves captures and checks for a winner.
// Rejected orders leave their unit where it stood.
func ApplyPhase(g *Grid, orders []Order) PhaseReport {
	report := PhaseReport{Moves: make([]OrderResult, 0, len(orders))}
	for _, o := range orders {
		from, _ := g.UnitPosition(o.Unit)
		report.Moves = append(report.Moves, OrderResult{
			Order: o,
			From:  from,
			Err:   g.Move(o.Unit, o.To),
		})
	}
	report.Captures = Resolve(g)
	report.Outcome = CheckWinner(g)
	return report
}
