package movegen

import "github.com/nickelliottpimm/nodi-boardgame/board"

// ScatterReason explains why a scatter was rejected.
type ScatterReason string

const (
	ReasonNone ScatterReason = ""
	// ReasonNotEligible: the origin is not a king with an arrow, or its
	// ability value is below 2.
	ReasonNotEligible ScatterReason = "not-eligible"
	// ReasonOffboard: a landing square falls outside the grid.
	ReasonOffboard ScatterReason = "offboard"
	// ReasonAllyBlock: a landing square holds a friendly piece.
	ReasonAllyBlock ScatterReason = "ally-block"
	// ReasonCaptureSumExceeds: the combined value of the enemy pieces on
	// the landing squares is more than the king's ability value.
	ReasonCaptureSumExceeds ScatterReason = "capture-sum-exceeds"
)

// ScatterOption is one validated way to scatter: from a base square (the
// king's own square, or a slide destination for value-3 kings) onto the
// two landing squares beyond it.
type ScatterOption struct {
	Base, L1, L2 board.Pos
}

// ScatterCheck is the outcome of validating one candidate scatter.
type ScatterCheck struct {
	L1, L2 board.Pos
	Can    bool
	Reason ScatterReason
}

// ScatterBases lists the squares a scatter by the king at from may
// originate at. The king's own square always qualifies; at value 3 the
// king may also pre-step to any empty square on its slide path before
// splitting.
func ScatterBases(b *board.Board, from board.Pos) []board.Pos {
	pc := b.At(from)
	if pc == nil || !pc.IsKing() || !pc.HasArrow {
		return nil
	}
	v := b.ValueAt(from)
	if v < 2 {
		return nil
	}
	bases := []board.Pos{from}
	if v >= 3 {
		cur := from.Step(pc.Arrow)
		for cur.OnBoard() && b.At(cur) == nil {
			bases = append(bases, cur)
			cur = cur.Step(pc.Arrow)
		}
	}
	return bases
}

// ValidateScatter checks the scatter of the king at from originating at
// base. The landing squares are the two squares beyond base along the
// king's arrow. A friendly piece on either landing blocks the scatter
// outright; enemy pieces are capturable only if their summed values fit
// within the king's ability value. The king spends its whole value
// against the combined total, not one comparison per target.
func ValidateScatter(b *board.Board, from, base board.Pos) ScatterCheck {
	pc := b.At(from)
	if pc == nil || !pc.IsKing() || !pc.HasArrow {
		return ScatterCheck{Reason: ReasonNotEligible}
	}
	v := b.ValueAt(from)
	if v < 2 {
		return ScatterCheck{Reason: ReasonNotEligible}
	}
	l1 := base.Step(pc.Arrow)
	l2 := base.StepN(pc.Arrow, 2)
	chk := ScatterCheck{L1: l1, L2: l2}
	if !l1.OnBoard() || !l2.OnBoard() {
		chk.Reason = ReasonOffboard
		return chk
	}
	sum := 0
	for _, l := range []board.Pos{l1, l2} {
		dest := b.At(l)
		if dest == nil {
			continue
		}
		if dest.Owner() == pc.Owner() {
			chk.Reason = ReasonAllyBlock
			return chk
		}
		sum += b.ValueAt(l)
	}
	if sum > v {
		chk.Reason = ReasonCaptureSumExceeds
		return chk
	}
	chk.Can = true
	return chk
}
