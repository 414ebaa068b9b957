package movegen

import (
	"testing"

	"github.com/matryer/is"

	"github.com/nickelliottpimm/nodi-boardgame/board"
)

func TestScatterPureSplitAlwaysLegal(t *testing.T) {
	is := is.New(t)
	b := emptyBoard()
	king := board.Pos{Row: 4, Col: 4} // e4, arrow E
	b.SetPiece(king, board.NewKing(board.White, board.DirE))

	chk := ValidateScatter(b, king, king)
	is.True(chk.Can)
	is.Equal(chk.Reason, ReasonNone)
	is.Equal(chk.L1, board.Pos{Row: 4, Col: 5})
	is.Equal(chk.L2, board.Pos{Row: 4, Col: 6})
}

func TestScatterOffboard(t *testing.T) {
	is := is.New(t)
	b := emptyBoard()
	king := board.Pos{Row: 4, Col: 7} // h4, arrow E: both landings off-board
	b.SetPiece(king, board.NewKing(board.White, board.DirE))

	chk := ValidateScatter(b, king, king)
	is.True(!chk.Can)
	is.Equal(chk.Reason, ReasonOffboard)

	// One landing on, one off: still offboard.
	b2 := emptyBoard()
	king2 := board.Pos{Row: 4, Col: 6} // g4
	b2.SetPiece(king2, board.NewKing(board.White, board.DirE))
	chk = ValidateScatter(b2, king2, king2)
	is.True(!chk.Can)
	is.Equal(chk.Reason, ReasonOffboard)
}

func TestScatterAllyBlock(t *testing.T) {
	is := is.New(t)
	b := emptyBoard()
	king := board.Pos{Row: 4, Col: 4}
	b.SetPiece(king, board.NewKing(board.White, board.DirE))
	b.SetPiece(board.Pos{Row: 4, Col: 6}, board.NewSingle(board.White, false))

	chk := ValidateScatter(b, king, king)
	is.True(!chk.Can)
	is.Equal(chk.Reason, ReasonAllyBlock)
}

func TestScatterBudget(t *testing.T) {
	// Landing enemies worth 1 and 2 sum to 3, over a value-2 king's
	// budget. The budget is summed, not compared per target.
	is := is.New(t)
	b := emptyBoard()
	king := board.Pos{Row: 4, Col: 4} // e4, arrow E
	b.SetPiece(king, board.NewKing(board.White, board.DirE))
	// f4: black king under the white ray, value 2-1 = 1.
	b.SetPiece(board.Pos{Row: 4, Col: 5}, board.NewKing(board.Black, board.DirN))
	// g4: black king out of the ray's reach, value 2.
	b.SetPiece(board.Pos{Row: 4, Col: 6}, board.NewKing(board.Black, board.DirN))

	is.Equal(b.ValueAt(king), 2)
	is.Equal(b.ValueAt(board.Pos{Row: 4, Col: 5}), 1)
	is.Equal(b.ValueAt(board.Pos{Row: 4, Col: 6}), 2)

	chk := ValidateScatter(b, king, king)
	is.True(!chk.Can)
	is.Equal(chk.Reason, ReasonCaptureSumExceeds)

	// Remove the far king: a single enemy of value 1 fits the budget.
	b.RemovePiece(board.Pos{Row: 4, Col: 6})
	chk = ValidateScatter(b, king, king)
	is.True(chk.Can)
}

func TestScatterIneligible(t *testing.T) {
	is := is.New(t)
	b := emptyBoard()
	single := board.Pos{Row: 4, Col: 4}
	b.SetPiece(single, board.NewSingle(board.White, false))
	chk := ValidateScatter(b, single, single)
	is.True(!chk.Can)
	is.Equal(chk.Reason, ReasonNotEligible)

	// A debuffed king (value 1) can't scatter either.
	king := board.Pos{Row: 6, Col: 4}
	b2 := emptyBoard()
	b2.SetPiece(king, board.NewKing(board.White, board.DirE))
	b2.SetPiece(board.Pos{Row: 0, Col: 4}, board.NewKing(board.Black, board.DirS))
	is.Equal(b2.ValueAt(king), 1)
	chk = ValidateScatter(b2, king, king)
	is.True(!chk.Can)
	is.Equal(chk.Reason, ReasonNotEligible)
}

func TestScatterBases(t *testing.T) {
	is := is.New(t)
	b := emptyBoard()
	king := board.Pos{Row: 4, Col: 3} // d4, arrow E

	// Value 2: own square only.
	b.SetPiece(king, board.NewKing(board.White, board.DirE))
	is.Equal(ScatterBases(b, king), []board.Pos{king})

	// Value 3: own square plus every empty slide square.
	b.SetPiece(board.Pos{Row: 4, Col: 1}, board.NewKing(board.White, board.DirE))
	b.SetPiece(board.Pos{Row: 4, Col: 6}, board.NewSingle(board.Black, false)) // g4 blocks
	bases := ScatterBases(b, king)
	is.Equal(bases, []board.Pos{
		king,
		{Row: 4, Col: 4},
		{Row: 4, Col: 5},
	})

	// Singles and frozen squares have no bases.
	is.Equal(ScatterBases(b, board.Pos{Row: 4, Col: 6}), nil)
	is.Equal(ScatterBases(b, board.Pos{Row: 0, Col: 0}), nil)
}
