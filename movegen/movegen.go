// Package movegen contains all the legality functions: the per-square
// action sets a piece may take this turn, scatter validation, and the
// side-wide action enumeration the AI consumes. Everything here is a pure
// function of the board; values are always recomputed against the current,
// unmodified board for the whole query.
package movegen

import (
	"github.com/nickelliottpimm/nodi-boardgame/board"
	"github.com/nickelliottpimm/nodi-boardgame/move"
)

// ActionSet is everything the piece on one square may legally do.
// Destination slices carry target squares; scatters carry full options
// because a scatter has no single destination; rotation is a flag because
// it has no destination at all.
type ActionSet struct {
	Moves          []board.Pos
	Captures       []board.Pos
	Combines       []board.Pos
	ScatterOptions []ScatterOption
	CanRotate      bool
}

// Empty reports whether the set offers no action of any kind.
func (s ActionSet) Empty() bool {
	return len(s.Moves) == 0 && len(s.Captures) == 0 && len(s.Combines) == 0 &&
		len(s.ScatterOptions) == 0 && !s.CanRotate
}

// LegalActionsFor computes the full action set for the piece at from.
// An empty square, off-board coordinate, or frozen piece (ability value 0)
// yields the empty set.
func LegalActionsFor(b *board.Board, from board.Pos) ActionSet {
	var set ActionSet
	pc := b.At(from)
	if pc == nil {
		return set
	}
	v := b.ValueAt(from)
	if v == 0 {
		return set
	}

	// One-step ring, any piece with value >= 1.
	for d := board.Dir(0); d < board.NumDirs; d++ {
		to := from.Step(d)
		if !to.OnBoard() {
			continue
		}
		dest := b.At(to)
		switch {
		case dest == nil:
			set.Moves = append(set.Moves, to)
		case dest.Owner() == pc.Owner():
			if pc.IsSingle() && dest.IsSingle() && !pc.HasKey() && !dest.HasKey() {
				set.Combines = append(set.Combines, to)
			}
		default:
			// Ties favor the attacker.
			if b.ValueAt(to) <= v {
				set.Captures = append(set.Captures, to)
			}
		}
	}

	if !pc.IsKing() || !pc.HasArrow {
		return set
	}
	arrow := pc.Arrow

	switch {
	case v == 2:
		// Exactly two squares along the arrow, hop square must be empty.
		mid := from.Step(arrow)
		to := from.StepN(arrow, 2)
		if mid.OnBoard() && b.At(mid) == nil && to.OnBoard() {
			dest := b.At(to)
			switch {
			case dest == nil:
				set.Moves = appendPos(set.Moves, to)
			case dest.Owner() != pc.Owner() && b.ValueAt(to) <= v:
				set.Captures = appendPos(set.Captures, to)
			}
		}
	case v >= 3:
		// Full slide: empty squares are moves; the first occupied square
		// ends the slide, as a capture if it holds a coverable enemy.
		cur := from.Step(arrow)
		for cur.OnBoard() {
			dest := b.At(cur)
			if dest == nil {
				set.Moves = appendPos(set.Moves, cur)
				cur = cur.Step(arrow)
				continue
			}
			if dest.Owner() != pc.Owner() && b.ValueAt(cur) <= v {
				set.Captures = appendPos(set.Captures, cur)
			}
			break
		}
	}

	if v >= 2 {
		set.CanRotate = true
		for _, base := range ScatterBases(b, from) {
			chk := ValidateScatter(b, from, base)
			if chk.Can {
				set.ScatterOptions = append(set.ScatterOptions,
					ScatterOption{Base: base, L1: chk.L1, L2: chk.L2})
			}
		}
	}
	return set
}

// CanRotate reports whether the piece at pos may rotate its arrow this
// turn: it must be a king with ability value at least 2.
func CanRotate(b *board.Board, pos board.Pos) bool {
	pc := b.At(pos)
	if pc == nil || !pc.IsKing() || !pc.HasArrow {
		return false
	}
	return b.ValueAt(pos) >= 2
}

// AllActions enumerates every legal action for side, unscored. Rotations
// are included only for value >= 3 kings; a value-2 rotation burns the
// whole turn on reorientation and is offered to interactive callers via
// the CanRotate flag instead.
func AllActions(b *board.Board, side board.Player) []*move.Action {
	var actions []*move.Action
	for _, from := range b.Pieces(side) {
		set := LegalActionsFor(b, from)
		for _, to := range set.Moves {
			actions = append(actions, move.NewMove(from, to))
		}
		for _, to := range set.Captures {
			actions = append(actions, move.NewCapture(from, to))
		}
		for _, to := range set.Combines {
			actions = append(actions, move.NewCombine(from, to))
		}
		for _, opt := range set.ScatterOptions {
			actions = append(actions, move.NewScatter(from, opt.Base, opt.L1, opt.L2))
		}
		if set.CanRotate && b.ValueAt(from) >= 3 {
			actions = append(actions,
				move.NewRotate(from, move.CW), move.NewRotate(from, move.CCW))
		}
	}
	return actions
}

func appendPos(ps []board.Pos, p board.Pos) []board.Pos {
	for _, q := range ps {
		if q == p {
			return ps
		}
	}
	return append(ps, p)
}
