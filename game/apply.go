// Package game holds the pure board-transition functions and the Game
// container that strings them into turns. Every Apply* function clones the
// input board and mutates only the clone; callers may keep old snapshots
// indefinitely.
package game

import (
	"github.com/rs/zerolog/log"

	"github.com/nickelliottpimm/nodi-boardgame/board"
	"github.com/nickelliottpimm/nodi-boardgame/move"
	"github.com/nickelliottpimm/nodi-boardgame/movegen"
)

// Apply* functions assume callers validated legality first, but they are
// also reached from hypothetical AI exploration, so invalid input must not
// corrupt state: each function re-checks its preconditions and returns the
// input board unchanged when they fail. Callers can detect the no-op by
// pointer equality with the input.

// ApplyMove moves the piece at from onto to, which must be a legal move
// or capture destination for that piece. Covers both plain moves and
// captures.
func ApplyMove(b *board.Board, from, to board.Pos) *board.Board {
	set := movegen.LegalActionsFor(b, from)
	if !containsPos(set.Moves, to) && !containsPos(set.Captures, to) {
		return noop(b, "move", from, to)
	}
	nb := b.Clone()
	moved := nb.At(from)
	nb.RemovePiece(from)
	nb.SetPiece(to, moved)
	return nb
}

// ApplyCombine merges the single at from onto the friendly single at to.
// The new king's arrow points in the direction of the combining move.
func ApplyCombine(b *board.Board, from, to board.Pos) *board.Board {
	if !containsPos(movegen.LegalActionsFor(b, from).Combines, to) {
		return noop(b, "combine", from, to)
	}
	arrow, ok := board.DirBetween(from, to)
	if !ok {
		return noop(b, "combine", from, to)
	}
	nb := b.Clone()
	owner := nb.At(from).Owner()
	nb.RemovePiece(from)
	nb.SetPiece(to, board.NewKing(owner, arrow))
	return nb
}

// ApplyScatter replaces the king at from with two fresh singles on the
// landing squares beyond base, capturing any enemies there. Scatter never
// produces key pieces.
func ApplyScatter(b *board.Board, from, base board.Pos) *board.Board {
	if !containsPos(movegen.ScatterBases(b, from), base) {
		return noop(b, "scatter", from, base)
	}
	chk := movegen.ValidateScatter(b, from, base)
	if !chk.Can {
		return noop(b, "scatter", from, base)
	}
	owner := b.At(from).Owner()
	nb := b.Clone()
	nb.RemovePiece(from)
	nb.SetPiece(chk.L1, board.NewSingle(owner, false))
	nb.SetPiece(chk.L2, board.NewSingle(owner, false))
	return nb
}

// ApplyRotate steps the arrow of the king at pos one compass point.
func ApplyRotate(b *board.Board, pos board.Pos, rot move.RotationDir) *board.Board {
	if !movegen.CanRotate(b, pos) {
		return noop(b, "rotate", pos, pos)
	}
	nb := b.Clone()
	pc := nb.At(pos)
	pc.Arrow = pc.Arrow.Rotated(rot == move.CW)
	return nb
}

// ApplyAction dispatches an action to the transition function for its
// type. Every ActionType must be handled here.
func ApplyAction(b *board.Board, a *move.Action) *board.Board {
	switch a.Type() {
	case move.ActionMove, move.ActionCapture:
		return ApplyMove(b, a.From(), a.To())
	case move.ActionCombine:
		return ApplyCombine(b, a.From(), a.To())
	case move.ActionScatter:
		return ApplyScatter(b, a.From(), a.ScatterBase())
	case move.ActionRotate:
		return ApplyRotate(b, a.From(), a.Rotation())
	}
	log.Warn().Str("action", a.String()).Msg("unhandled action type")
	return b
}

// RotationEndsTurn implements the rotation cost rule: the cost depends on
// the ability value after the rotation, since the rotation itself can
// change which rays cross the king's square. A post-rotation value of 3 or
// more makes the rotation free; anything lower consumes the turn.
func RotationEndsTurn(after *board.Board, at board.Pos) bool {
	return after.ValueAt(at) < 3
}

func containsPos(ps []board.Pos, p board.Pos) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

func noop(b *board.Board, what string, from, to board.Pos) *board.Board {
	log.Warn().
		Str("action", what).
		Stringer("from", from).
		Stringer("to", to).
		Msg("rejected invalid action application")
	return b
}
