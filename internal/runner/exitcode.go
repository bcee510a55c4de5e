package runner

import (
	"fmt"

	"github.com/julianshen/pricemap/internal/board"
)

// ExitError is returned when a headless command should exit with a non-zero
// code. Using a typed error instead of os.Exit ensures deferred cleanup runs.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCodeForBudget returns 1 when no row of b costs at most budget, 0
// otherwise. A budget of zero or less disables gating, as does a board with
// no priced rows.
func ExitCodeForBudget(b board.Board, budget float64) int {
	if budget <= 0 {
		return 0
	}
	best, ok := b.Cheapest()
	if !ok {
		return 0
	}
	if best.Cost > budget {
		return 1
	}
	return 0
}
