package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/entity"
)

var ErrInputClosed = errors.New("input closed before the game finished")

type gameEngine interface {
	OnTurnChanged(fn func())
	Start()
	ApplyMove(position entity.Position, mark entity.Mark) error
	ParseMove(input string) entity.Position
	VisibleBoard() string
	StateBoard() string
	ActivePlayer() entity.Mark
	Winner() entity.Mark
	Status() entity.Status
	Moves() int
	IsOver() bool
}

type Options struct {
	ClearScreen bool
	Color       bool
}

// Driver plays a game on a line-oriented console: one move code per line.
type Driver struct {
	logger *slog.Logger
	engine gameEngine

	in     io.Reader
	output *termenv.Output

	clearScreen bool
}

type line struct {
	text string
	err  error
}

func New(logger *slog.Logger, engine gameEngine, in io.Reader, out io.Writer, opts Options) *Driver {
	profile := termenv.Ascii
	if opts.Color {
		profile = termenv.EnvColorProfile()
	}

	driver := &Driver{
		logger:      logger.With("component", "console"),
		engine:      engine,
		in:          in,
		output:      termenv.NewOutput(out, termenv.WithProfile(profile)),
		clearScreen: opts.ClearScreen,
	}

	engine.OnTurnChanged(driver.showTurn)

	return driver
}

// Play - starts a new game and reads moves until it is won or drawn.
func (that *Driver) Play(ctx context.Context) (*entity.Result, error) {
	log := that.logger.With("method", "Play")

	// stops the reader once the game is over
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	lines := readLines(ctx, that.in)

	that.engine.Start()

	for !that.engine.IsOver() {
		input, err := readLine(ctx, lines)
		if err != nil {
			return nil, err
		}

		player := that.engine.ActivePlayer()
		if err = that.engine.ApplyMove(that.engine.ParseMove(input), player); err != nil {
			log.Debug("move rejected", "input", input, "player", player.String(), "error", err)
			that.showError(err)
		}
	}

	result := &entity.Result{
		Winner: that.engine.Winner(),
		Status: that.engine.Status(),
		Moves:  that.engine.Moves(),
	}

	that.showResult(result)

	return result, nil
}

// ShowScore prints the tally of finished games.
func (that *Driver) ShowScore(score *entity.Score) {
	if err := WriteScore(that.output, score); err != nil {
		that.logger.Error("failed to write to console", "error", err)
	}
}

func readLine(ctx context.Context, lines <-chan line) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("game interrupted: %w", ctx.Err())
	case next, ok := <-lines:
		if !ok {
			return "", ErrInputClosed
		}

		return next.text, next.err
	}
}

// readLines feeds the scanner into a channel until ctx is done or the input ends.
// A Scan already blocked on in only returns with the next line or EOF.
func readLines(ctx context.Context, in io.Reader) <-chan line {
	lines := make(chan line)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- line{text: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case lines <- line{err: fmt.Errorf("failed to read input: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	return lines
}

func (that *Driver) showTurn() {
	that.clear()

	that.printf("%s\n\n\n%s\n", that.engine.VisibleBoard(), that.engine.StateBoard())
	that.printf("\nIt's %s turn\n", that.output.String(that.engine.ActivePlayer().String()).Bold())
}

func (that *Driver) showError(err error) {
	that.printf("%s\n", that.output.String(err.Error()).Foreground(that.output.Color("1")))
}

func (that *Driver) showResult(result *entity.Result) {
	that.clear()

	if result.IsStalemate() {
		that.printf("%s\n", that.output.String("Stalemate!").Foreground(that.output.Color("3")))
		return
	}

	that.printf("%s\n", that.output.String(result.Winner.String()+" is the winner!!!!!!").Foreground(that.output.Color("2")))
}

func (that *Driver) clear() {
	if that.clearScreen {
		that.output.ClearScreen()
	}
}

func (that *Driver) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.output, format, args...); err != nil {
		that.logger.Error("failed to write to console", "error", err)
	}
}
