package entity

// Status is the lifecycle state of a game.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusWon
	StatusStalemate
)

func (that Status) String() string {
	switch that {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusStalemate:
		return "stalemate"
	default:
		return "not_started"
	}
}

// IsTerminal reports whether no more moves can be made.
func (that Status) IsTerminal() bool {
	return that == StatusWon || that == StatusStalemate
}

// Result is the outcome of a finished game.
type Result struct {
	GameID string `json:"game_id"`
	Winner Mark   `json:"winner"`
	Status Status `json:"status"`
	Moves  int    `json:"moves"`
}

// IsStalemate reports whether the game ended with a full board and no winner.
func (that *Result) IsStalemate() bool {
	return that.Status == StatusStalemate
}

// Score tallies finished games.
type Score struct {
	O          int64 `json:"o"`
	X          int64 `json:"x"`
	Stalemates int64 `json:"stalemates"`
}

// Played returns the number of finished games.
func (that *Score) Played() int64 {
	return that.O + that.X + that.Stalemates
}

// Add counts result into the score.
func (that *Score) Add(result *Result) {
	if result.IsStalemate() {
		that.Stalemates++
		return
	}

	switch result.Winner {
	case PlayerO:
		that.O++
	case PlayerX:
		that.X++
	}
}
