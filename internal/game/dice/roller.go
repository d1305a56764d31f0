package dice

import (
	"fmt"

	"go.uber.org/zap"
)

// Roll evaluates expr with src.
//
// Precondition: expr.Count >= 1 and expr.Sides >= 1; src non-nil.
// Postcondition: len(result.Faces) == expr.Count; every face is in [1, expr.Sides].
func Roll(expr Expression, src Source) RollResult {
	faces := make([]int, expr.Count)
	for i := range faces {
		faces[i] = src.Intn(expr.Sides) + 1
	}
	return RollResult{Expr: expr, Faces: faces}
}

// Roller rolls against one Source and logs every roll at debug level,
// tagged with what the roll decided.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll evaluates expr for purpose, e.g. "encounter".
func (r *Roller) Roll(purpose string, expr Expression) RollResult {
	result := Roll(expr, r.src)
	r.logger.Debug("dice roll",
		zap.String("purpose", purpose),
		zap.Stringer("expression", expr),
		zap.Ints("faces", result.Faces),
		zap.Int("total", result.Total()),
	)
	return result
}

// Pick chooses uniformly among n options by rolling 1dn.
//
// Precondition: n >= 1; panics otherwise.
// Postcondition: Returns a zero-based index in [0, n).
func (r *Roller) Pick(purpose string, n int) int {
	if n < 1 {
		panic(fmt.Sprintf("dice: Pick(%q) called with n = %d", purpose, n))
	}
	return r.Roll(purpose, Die(n)).Total() - 1
}
