package ai

import (
	"context"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/nickelliottpimm/nodi-boardgame/board"
	"github.com/nickelliottpimm/nodi-boardgame/game"
	"github.com/nickelliottpimm/nodi-boardgame/move"
)

// Options tune the lookahead. Zero values fall back to defaults.
type Options struct {
	// MoveLimit caps the first-ply candidates kept after scoring;
	// captures are always retained regardless of rank.
	MoveLimit int
	// ReplyLimit caps the opponent replies examined per candidate.
	ReplyLimit int
	// TieEpsilon is the score band within which candidates are treated
	// as equal and picked among at random. Zero means the default;
	// negative disables the band entirely.
	TieEpsilon float64
	// Weights overrides the evaluator weights when non-zero.
	Weights *Weights
	// Threads caps the parallel first-ply evaluation; defaults to
	// GOMAXPROCS.
	Threads int
}

const (
	defaultMoveLimit  = 10
	defaultReplyLimit = 6
	defaultTieEpsilon = 8.0
)

func (o Options) withDefaults() Options {
	if o.MoveLimit <= 0 {
		o.MoveLimit = defaultMoveLimit
	}
	if o.ReplyLimit <= 0 {
		o.ReplyLimit = defaultReplyLimit
	}
	if o.TieEpsilon == 0 {
		o.TieEpsilon = defaultTieEpsilon
	} else if o.TieEpsilon < 0 {
		o.TieEpsilon = 0
	}
	if o.Weights == nil {
		w := DefaultWeights
		o.Weights = &w
	}
	if o.Threads <= 0 {
		o.Threads = runtime.GOMAXPROCS(0)
	}
	return o
}

// PickWithLookahead chooses an action for side with a two-ply minimax:
// each pruned first-ply candidate is scored as our evaluation after the
// action minus the best evaluation the opponent can force in reply. A
// move that captures the opponent's last key short-circuits the search.
// Returns game.ErrNoLegalActions if side cannot act.
//
// The search works entirely on cloned boards; the input board is never
// touched. It is safe to call from a background goroutine with a snapshot.
func PickWithLookahead(ctx context.Context, b *board.Board, side board.Player,
	opts Options) (*move.Action, error) {

	opts = opts.withDefaults()
	w := *opts.Weights
	opp := side.Opponent()

	actions := scoreActions(b, side, w)
	if len(actions) == 0 {
		return nil, game.ErrNoLegalActions
	}

	// Outright win: the evaluator sentinels boards where the opponent has
	// no keys left, so a winning capture surfaces at the top. No point
	// searching past it.
	if actions[0].Score() >= TerminalScore {
		actions[0].SetScore(TerminalScore)
		log.Debug().Str("action", actions[0].ShortDescription()).
			Msg("terminal capture found, skipping lookahead")
		return actions[0], nil
	}

	candidates := retainCaptures(b, actions, opts.MoveLimit, side)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Threads)
	scores := make([]float64, len(candidates))
	for i, a := range candidates {
		i, a := i, a
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			after := game.ApplyAction(b, a)
			ourEval := evaluate(after, side, w)

			replies := scoreActions(after, opp, w)
			if len(replies) == 0 {
				// Opponent is frozen solid; they can't improve on the
				// static position.
				scores[i] = ourEval - evaluate(after, opp, w)
				return nil
			}
			best := -2.0 * TerminalScore
			for _, r := range retainCaptures(after, replies, opts.ReplyLimit, opp) {
				e := evaluate(game.ApplyAction(after, r), opp, w)
				if e > best {
					best = e
				}
			}
			scores[i] = ourEval - best
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i, a := range candidates {
		a.SetScore(scores[i])
	}

	best := lo.MaxBy(candidates, func(a, max *move.Action) bool {
		return a.Score() > max.Score()
	})
	pool := lo.Filter(candidates, func(a *move.Action, _ int) bool {
		return a.Score() >= best.Score()-opts.TieEpsilon
	})
	choice := pool[frand.Intn(len(pool))]
	log.Debug().
		Str("action", choice.ShortDescription()).
		Float64("score", choice.Score()).
		Int("candidates", len(candidates)).
		Int("tied", len(pool)).
		Msg("lookahead picked")
	return choice, nil
}

// retainCaptures keeps the top limit actions of a sorted list, then adds
// back every capturing action that fell below the cut. Captures are never
// pruned: a low static score can hide a tactical refutation the second
// ply needs to see.
func retainCaptures(b *board.Board, sorted []*move.Action, limit int,
	side board.Player) []*move.Action {

	if len(sorted) <= limit {
		return sorted
	}
	kept := append([]*move.Action(nil), sorted[:limit]...)
	for _, a := range sorted[limit:] {
		if isCapturing(b, a, side) {
			kept = append(kept, a)
		}
	}
	return kept
}

func isCapturing(b *board.Board, a *move.Action, side board.Player) bool {
	switch a.Type() {
	case move.ActionCapture:
		return true
	case move.ActionScatter:
		l1, l2 := a.Landings()
		for _, l := range []board.Pos{l1, l2} {
			if pc := b.At(l); pc != nil && pc.Owner() != side {
				return true
			}
		}
	}
	return false
}
