package territory

// Outcome is the state of the game after a win check.
type Outcome int

const (
	Ongoing Outcome = iota
	Player1Wins
	Player2Wins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Player1Wins:
		return "player 1 wins"
	case Player2Wins:
		return "player 2 wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Over returns true once the game has a winner or is drawn.
func (o Outcome) Over() bool {
	return o != Ongoing
}

// Winner returns the winning player, or Nobody for an ongoing or drawn game.
func (o Outcome) Winner() Player {
	switch o {
	case Player1Wins:
		return Player1
	case Player2Wins:
		return Player2
	default:
		return Nobody
	}
}

func winsFor(p Player) Outcome {
	if p == Player1 {
		return Player1Wins
	}
	return Player2Wins
}

// CheckWinner evaluates every city as if its owner stood on it. A city that
// lost freedom makes the opponent a winner candidate; one distinct candidate
// wins, two draw. An uncontested city is not lost.
func CheckWinner(g *Grid) Outcome {
	snapshot := g.ControlMap()
	var candidates [3]bool
	for _, p := range g.Cities() {
		owner := g.CellAt(p).City
		if !snapshot.HasFreedom(p, owner) {
			candidates[owner.Opponent()] = true
		}
	}
	if candidates[Player1] && candidates[Player2] {
		return Draw
	}
	for _, p := range Players() {
		if candidates[p] {
			return winsFor(p)
		}
	}
	return Ongoing
}
