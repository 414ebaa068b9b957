// Package ai implements the opponent: a static evaluator with hand-tuned
// weights, per-action scoring nudges, and a two-ply adversarial lookahead
// with pruning. It plays through the same movegen and game transition
// functions the human path uses, so both sides see identical rules.
package ai

import (
	"github.com/nickelliottpimm/nodi-boardgame/board"
)

// TerminalScore is a sentinel dwarfing every positional term. A position
// where the opponent has no keys left scores at least this much.
const TerminalScore = 1000000

// Weights are the evaluator's tunable terms.
type Weights struct {
	Single     float64
	King       float64
	Key        float64
	ValuePoint float64
	RayBonus   float64
	Mobility   float64

	CombineBonus     float64
	CaptureBonus     float64
	KingCaptureBonus float64
	KeyCaptureBonus  float64
	CenterNudge      float64
	RecapturePenalty float64
}

// DefaultWeights were tuned by self-play by hand; they are deliberately
// coarse. Material dominates, keys are worth more than the pieces
// guarding them, and the rest nudges.
var DefaultWeights = Weights{
	Single:     100,
	King:       260,
	Key:        160,
	ValuePoint: 12,
	RayBonus:   6,
	Mobility:   3,

	CombineBonus:     40,
	CaptureBonus:     30,
	KingCaptureBonus: 120,
	KeyCaptureBonus:  500,
	CenterNudge:      2,
	RecapturePenalty: 40,
}

// EvaluateBoard scores a position from perspective's point of view with
// the default weights. Positive is good for perspective.
func EvaluateBoard(b *board.Board, perspective board.Player) float64 {
	return evaluate(b, perspective, DefaultWeights)
}

func evaluate(b *board.Board, perspective board.Player, w Weights) float64 {
	opp := perspective.Opponent()
	if b.KeyCount(opp) == 0 {
		return TerminalScore
	}
	if b.KeyCount(perspective) == 0 {
		return -TerminalScore
	}

	vals := b.AllValues()
	score := 0.0
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			pos := board.Pos{Row: r, Col: c}
			pc := b.At(pos)
			if pc == nil {
				continue
			}
			sign := 1.0
			if pc.Owner() != perspective {
				sign = -1.0
			}
			if pc.IsKing() {
				score += sign * w.King
				if len(b.Ray(pos)) > 0 {
					score += sign * w.RayBonus
				}
			} else {
				score += sign * w.Single
			}
			if pc.HasKey() {
				score += sign * w.Key
			}
			score += sign * w.ValuePoint * float64(vals[r][c])
			score += sign * w.Mobility * float64(adjacentEmpty(b, pos))
		}
	}
	return score
}

func adjacentEmpty(b *board.Board, pos board.Pos) int {
	n := 0
	for d := board.Dir(0); d < board.NumDirs; d++ {
		sq := pos.Step(d)
		if sq.OnBoard() && b.At(sq) == nil {
			n++
		}
	}
	return n
}
