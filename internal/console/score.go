package console

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/noughts-and-crosses/internal/entity"
)

// WriteScore prints the tally of finished games to out.
func WriteScore(out io.Writer, score *entity.Score) error {
	_, err := fmt.Fprintf(out, "O: %d\nX: %d\nStalemates: %d\nPlayed: %d\n", score.O, score.X, score.Stalemates, score.Played())
	if err != nil {
		return fmt.Errorf("failed to write score: %w", err)
	}

	return nil
}
