package shell

import (
	"testing"

	"github.com/matryer/is"

	"github.com/nickelliottpimm/nodi-boardgame/board"
	"github.com/nickelliottpimm/nodi-boardgame/move"
)

func TestActionForClassifiesSteps(t *testing.T) {
	is := is.New(t)
	rows := make([]string, board.Dim)
	for i := range rows {
		rows[i] = `........`
	}
	b := board.MustBoard(rows)
	from := board.Pos{Row: 4, Col: 4}
	b.SetPiece(from, board.NewSingle(board.White, false))
	b.SetPiece(board.Pos{Row: 4, Col: 5}, board.NewSingle(board.Black, false))
	b.SetPiece(board.Pos{Row: 3, Col: 4}, board.NewSingle(board.White, false))

	a := actionFor(b, from, board.Pos{Row: 5, Col: 4})
	is.Equal(a.Type(), move.ActionMove)

	a = actionFor(b, from, board.Pos{Row: 4, Col: 5})
	is.Equal(a.Type(), move.ActionCapture)

	a = actionFor(b, from, board.Pos{Row: 3, Col: 4})
	is.Equal(a.Type(), move.ActionCombine)

	// Unreachable square.
	is.Equal(actionFor(b, from, board.Pos{Row: 0, Col: 0}), (*move.Action)(nil))
}
