package ai

import (
	"math"
	"sort"

	"github.com/nickelliottpimm/nodi-boardgame/board"
	"github.com/nickelliottpimm/nodi-boardgame/game"
	"github.com/nickelliottpimm/nodi-boardgame/move"
	"github.com/nickelliottpimm/nodi-boardgame/movegen"
)

// ScoreActions enumerates every legal action for side and scores each
// resulting position, highest first. The score is the static evaluation
// of the board after the action plus tactical nudges; this is the list
// the lookahead prunes from, and the scored enumeration exposed to
// external callers.
func ScoreActions(b *board.Board, side board.Player) []*move.Action {
	return scoreActions(b, side, DefaultWeights)
}

func scoreActions(b *board.Board, side board.Player, w Weights) []*move.Action {
	actions := movegen.AllActions(b, side)
	for _, a := range actions {
		after := game.ApplyAction(b, a)
		s := evaluate(after, side, w)
		s += nudges(b, after, a, side, w)
		a.SetScore(s)
	}
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Score() > actions[j].Score()
	})
	return actions
}

// nudges layers tactical adjustments over the static evaluation: kings
// are worth forming, key and king captures are worth chasing, quiet moves
// drift toward the center, and landing where the opponent immediately
// recaptures is discouraged.
func nudges(before, after *board.Board, a *move.Action, side board.Player, w Weights) float64 {
	s := 0.0
	switch a.Type() {
	case move.ActionCombine:
		s += w.CombineBonus
		s -= recaptureRisk(after, a.To(), side, w)
	case move.ActionCapture:
		s += w.CaptureBonus + victimBonus(before, a.To(), w)
		s -= recaptureRisk(after, a.To(), side, w)
	case move.ActionMove:
		s += centrality(a.To()) * w.CenterNudge
		s -= recaptureRisk(after, a.To(), side, w)
	case move.ActionScatter:
		l1, l2 := a.Landings()
		for _, l := range []board.Pos{l1, l2} {
			if victim := before.At(l); victim != nil && victim.Owner() != side {
				s += w.CaptureBonus + victimBonus(before, l, w)
			}
		}
	case move.ActionRotate:
		// No destination; the static eval already sees the new ray.
	}
	return s
}

func victimBonus(b *board.Board, at board.Pos, w Weights) float64 {
	victim := b.At(at)
	if victim == nil {
		return 0
	}
	if victim.HasKey() {
		return w.KeyCaptureBonus
	}
	if victim.IsKing() {
		return w.KingCaptureBonus
	}
	return 0
}

// centrality is highest at the four center squares and falls off toward
// the rim.
func centrality(pos board.Pos) float64 {
	center := float64(board.Dim-1) / 2
	dr := math.Abs(float64(pos.Row) - center)
	dc := math.Abs(float64(pos.Col) - center)
	return center - math.Max(dr, dc)
}

// recaptureRisk penalizes landing on a square the opponent can capture
// next turn, scaled by the landed piece's importance and damped by how
// many friendly pieces defend the square.
func recaptureRisk(after *board.Board, dest board.Pos, side board.Player, w Weights) float64 {
	if !capturableBy(after, side.Opponent(), dest) {
		return 0
	}
	pc := after.At(dest)
	importance := 1.0
	if pc != nil && pc.HasKey() {
		importance = 5.0
	} else if pc != nil && pc.IsKing() {
		importance = 3.0
	}
	defenders := 0
	for d := board.Dir(0); d < board.NumDirs; d++ {
		sq := dest.Step(d)
		if n := after.At(sq); sq.OnBoard() && n != nil && n.Owner() == side {
			defenders++
		}
	}
	return w.RecapturePenalty * importance / float64(1+defenders)
}

// capturableBy reports whether any of side's pieces has target among its
// legal capture destinations, including scatter landings.
func capturableBy(b *board.Board, side board.Player, target board.Pos) bool {
	for _, pos := range b.Pieces(side) {
		set := movegen.LegalActionsFor(b, pos)
		for _, cap := range set.Captures {
			if cap == target {
				return true
			}
		}
		for _, opt := range set.ScatterOptions {
			if opt.L1 == target || opt.L2 == target {
				return true
			}
		}
	}
	return false
}
