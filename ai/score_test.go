package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickelliottpimm/nodi-boardgame/board"
	"github.com/nickelliottpimm/nodi-boardgame/move"
)

func TestScoreActionsSortedDescending(t *testing.T) {
	b := board.NewGameBoard()
	actions := ScoreActions(b, board.Black)
	require.NotEmpty(t, actions)
	for i := 1; i < len(actions); i++ {
		assert.GreaterOrEqual(t, actions[i-1].Score(), actions[i].Score())
	}
}

func TestScoreActionsEmptyForFrozenSide(t *testing.T) {
	b := emptyBoard()
	b.SetPiece(board.Pos{Row: 0, Col: 0}, board.NewSingle(board.Black, true))
	b.SetPiece(board.Pos{Row: 0, Col: 2}, board.NewKing(board.White, board.DirW))
	b.SetPiece(board.Pos{Row: 7, Col: 7}, board.NewSingle(board.White, true))

	assert.Empty(t, ScoreActions(b, board.Black))
}

func TestCombineOutscoresEquivalentQuietMove(t *testing.T) {
	// Two singles able to either combine or step: forming the king should
	// rank above any quiet shuffle.
	b := withKeys(emptyBoard())
	b.SetPiece(board.Pos{Row: 4, Col: 3}, board.NewSingle(board.White, false))
	b.SetPiece(board.Pos{Row: 4, Col: 4}, board.NewSingle(board.White, false))

	actions := ScoreActions(b, board.White)
	require.NotEmpty(t, actions)
	assert.Equal(t, move.ActionCombine, actions[0].Type())
}

func TestKeyCaptureOutscoresPlainCapture(t *testing.T) {
	b := emptyBoard()
	att := board.Pos{Row: 4, Col: 4}
	b.SetPiece(att, board.NewSingle(board.White, false))
	b.SetPiece(board.Pos{Row: 4, Col: 5}, board.NewSingle(board.Black, false))
	b.SetPiece(board.Pos{Row: 4, Col: 3}, board.NewSingle(board.Black, true))
	// Extra keys so neither capture is terminal.
	b.SetPiece(board.Pos{Row: 0, Col: 0}, board.NewSingle(board.Black, true))
	b.SetPiece(board.Pos{Row: 7, Col: 7}, board.NewSingle(board.White, true))

	actions := ScoreActions(b, board.White)
	require.NotEmpty(t, actions)
	top := actions[0]
	assert.Equal(t, move.ActionCapture, top.Type())
	assert.Equal(t, board.Pos{Row: 4, Col: 3}, top.To())
}

func TestRecaptureRiskDetection(t *testing.T) {
	b := withKeys(emptyBoard())
	// A white single standing next to a black single is capturable.
	dest := board.Pos{Row: 4, Col: 4}
	b.SetPiece(dest, board.NewSingle(board.White, false))
	b.SetPiece(board.Pos{Row: 4, Col: 5}, board.NewSingle(board.Black, false))

	risk := recaptureRisk(b, dest, board.White, DefaultWeights)
	assert.Greater(t, risk, 0.0)

	// With a defender adjacent the penalty shrinks but stays positive.
	b.SetPiece(board.Pos{Row: 5, Col: 4}, board.NewSingle(board.White, false))
	defended := recaptureRisk(b, dest, board.White, DefaultWeights)
	assert.Greater(t, defended, 0.0)
	assert.Less(t, defended, risk)

	// A square nobody attacks carries no risk.
	safe := board.Pos{Row: 0, Col: 7}
	b.SetPiece(safe, board.NewSingle(board.White, false))
	assert.Zero(t, recaptureRisk(b, safe, board.White, DefaultWeights))
}

func TestCapturableByIncludesScatterLandings(t *testing.T) {
	b := emptyBoard()
	// Black king e6, arrow S: scatter landings e5 and e4.
	b.SetPiece(board.Pos{Row: 2, Col: 4}, board.NewKing(board.Black, board.DirS))
	target := board.Pos{Row: 4, Col: 4} // e4
	b.SetPiece(target, board.NewSingle(board.White, false))

	assert.True(t, capturableBy(b, board.Black, target))
}

func TestCentrality(t *testing.T) {
	assert.Greater(t,
		centrality(board.Pos{Row: 3, Col: 3}),
		centrality(board.Pos{Row: 0, Col: 0}))
	assert.Equal(t, 0.0, centrality(board.Pos{Row: 0, Col: 7}))
}
