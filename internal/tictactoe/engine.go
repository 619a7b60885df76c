package tictactoe

import (
	"math/rand"
	"time"

	"github.com/rocketscienceinc/noughts-and-crosses/internal/apperror"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/entity"
)

// Engine holds the state of a single game. It is not safe for concurrent use.
type Engine struct {
	board  entity.Board
	moves  int
	active entity.Mark
	winner entity.Mark
	status entity.Status

	rnd       *rand.Rand
	observers []func()
}

type Option func(*Engine)

// WithRand sets the source used to pick the starting player.
func WithRand(rnd *rand.Rand) Option {
	return func(that *Engine) {
		that.rnd = rnd
	}
}

func NewEngine(opts ...Option) *Engine {
	engine := &Engine{}

	for _, opt := range opts {
		opt(engine)
	}

	if engine.rnd == nil {
		engine.rnd = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	return engine
}

// OnTurnChanged registers fn to be called whenever a new turn begins.
func (that *Engine) OnTurnChanged(fn func()) {
	that.observers = append(that.observers, fn)
}

// Start resets the board and flips a coin for the first player.
func (that *Engine) Start() {
	that.board = entity.Board{}
	that.moves = 0
	that.winner = entity.MarkEmpty
	that.active = entity.Players[that.rnd.Intn(len(entity.Players))]
	that.status = entity.StatusInProgress

	that.notifyTurnChanged()
}

// ApplyMove places mark at position. A move that ends the game neither counts
// towards Moves nor passes the turn.
func (that *Engine) ApplyMove(position entity.Position, mark entity.Mark) error {
	if err := that.validateMove(position, mark); err != nil {
		return &apperror.MoveError{Err: err, ValidMoves: that.VisibleBoard()}
	}

	that.board.Set(position, mark)

	if that.checkForWinner() || that.checkForStalemate() {
		return nil
	}

	that.active = that.active.Opponent()
	that.moves++

	that.notifyTurnChanged()

	return nil
}

// ParseMove - resolves a move code typed by a player, entity.NoPosition when it is unknown.
func (that *Engine) ParseMove(input string) entity.Position {
	return entity.ParsePosition(input)
}

// VisibleBoard renders the board with the codes of the cells still free.
func (that *Engine) VisibleBoard() string {
	return that.board.Render(entity.Position.String)
}

// StateBoard renders the board with blanks in the cells still free.
func (that *Engine) StateBoard() string {
	return that.board.Render(func(entity.Position) string { return " " })
}

func (that *Engine) Moves() int {
	return that.moves
}

func (that *Engine) ActivePlayer() entity.Mark {
	return that.active
}

func (that *Engine) Winner() entity.Mark {
	return that.winner
}

func (that *Engine) Status() entity.Status {
	return that.status
}

func (that *Engine) IsOver() bool {
	return that.status.IsTerminal()
}

// Board returns a copy of the cells.
func (that *Engine) Board() entity.Board {
	return that.board
}

// validateMove - checks if the move is valid.
func (that *Engine) validateMove(position entity.Position, mark entity.Mark) error {
	switch that.status {
	case entity.StatusNotStarted:
		return apperror.ErrGameIsNotStarted
	case entity.StatusWon, entity.StatusStalemate:
		return apperror.ErrGameFinished
	}

	if !position.IsValid() {
		return apperror.ErrInvalidMove
	}

	if that.board.At(position) != entity.MarkEmpty {
		return apperror.ErrCellOccupied
	}

	if mark == entity.MarkEmpty {
		return apperror.ErrEmptyMark
	}

	return nil
}

func (that *Engine) checkForWinner() bool {
	for _, mark := range entity.Players {
		if that.board.HasLine(mark) {
			that.winner = mark
			that.status = entity.StatusWon
			return true
		}
	}

	return false
}

func (that *Engine) checkForStalemate() bool {
	if !that.board.IsFull() {
		return false
	}

	that.status = entity.StatusStalemate

	return true
}

func (that *Engine) notifyTurnChanged() {
	for _, fn := range that.observers {
		fn()
	}
}
