package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestMakeBoard(t *testing.T) {
	is := is.New(t)
	b, err := MakeBoard(StandardLayout)
	is.NoErr(err)

	is.Equal(b.KeyCount(Black), 2)
	is.Equal(b.KeyCount(White), 2)
	is.Equal(len(b.Pieces(Black)), 8)
	is.Equal(len(b.Pieces(White)), 8)

	// Keys sit on the back ranks.
	is.True(b.At(Pos{Row: 0, Col: 2}).HasKey())
	is.True(b.At(Pos{Row: 0, Col: 4}).HasKey())
	is.True(b.At(Pos{Row: 7, Col: 2}).HasKey())
	is.True(b.At(Pos{Row: 7, Col: 4}).HasKey())
	is.Equal(b.At(Pos{Row: 0, Col: 2}).Owner(), Black)
	is.Equal(b.At(Pos{Row: 7, Col: 4}).Owner(), White)
}

func TestMakeBoardRejectsBadLayouts(t *testing.T) {
	is := is.New(t)
	_, err := MakeBoard([]string{`........`})
	is.True(err != nil) // wrong row count

	bad := make([]string, Dim)
	for i := range bad {
		bad[i] = `........`
	}
	bad[3] = `...x....`
	_, err = MakeBoard(bad)
	is.True(err != nil) // unknown symbol
}

func TestNoAdjacentFriendliesAtSetup(t *testing.T) {
	// The starting position must not offer any combine: both sides spend
	// the opening maneuvering before a king can form.
	is := is.New(t)
	b := NewGameBoard()
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			pos := Pos{Row: r, Col: c}
			pc := b.At(pos)
			if pc == nil {
				continue
			}
			for d := Dir(0); d < NumDirs; d++ {
				n := b.At(pos.Step(d))
				if n != nil {
					is.True(n.Owner() != pc.Owner())
				}
			}
		}
	}
}

func TestCloneIsolation(t *testing.T) {
	is := is.New(t)
	b := NewGameBoard()
	clone := b.Clone()

	from := Pos{Row: 2, Col: 1}
	is.True(clone.At(from) != nil)
	clone.RemovePiece(from)
	clone.SetPiece(Pos{Row: 4, Col: 4}, NewKing(Black, DirS))

	// The original must be untouched.
	is.True(b.At(from) != nil)
	is.Equal(b.At(Pos{Row: 4, Col: 4}), (*Piece)(nil))

	// Mutating a cloned piece must not reach back either.
	b2 := b.Clone()
	b2.At(from).Counters[0].Key = true
	is.Equal(b.At(from).HasKey(), false)
}

func TestKeyCountAfterRemoval(t *testing.T) {
	is := is.New(t)
	b := NewGameBoard()
	b.RemovePiece(Pos{Row: 0, Col: 2})
	is.Equal(b.KeyCount(Black), 1)
	b.RemovePiece(Pos{Row: 0, Col: 4})
	is.Equal(b.KeyCount(Black), 0)
	is.Equal(b.KeyCount(White), 2)
}

func TestPieceKinds(t *testing.T) {
	is := is.New(t)
	s := NewSingle(White, false)
	is.True(s.IsSingle())
	is.True(!s.IsKing())
	is.Equal(s.CounterCount(), 1)

	k := NewKing(Black, DirNE)
	is.True(k.IsKing())
	is.True(k.HasArrow)
	is.Equal(k.Arrow, DirNE)
	is.Equal(k.CounterCount(), 2)
	is.Equal(k.Owner(), Black)
	is.True(!k.HasKey())
}

func TestParsePosRoundTrip(t *testing.T) {
	is := is.New(t)
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			p := Pos{Row: r, Col: c}
			parsed, err := ParsePos(p.String())
			is.NoErr(err)
			is.Equal(parsed, p)
		}
	}
	_, err := ParsePos("i1")
	is.True(err != nil)
	_, err = ParsePos("a9")
	is.True(err != nil)
	_, err = ParsePos("zz")
	is.True(err != nil)
}

func TestPosCorners(t *testing.T) {
	is := is.New(t)
	is.Equal(Pos{Row: 7, Col: 0}.String(), "a1")
	is.Equal(Pos{Row: 0, Col: 0}.String(), "a8")
	is.Equal(Pos{Row: 7, Col: 7}.String(), "h1")
	is.Equal(Pos{Row: 0, Col: 7}.String(), "h8")
}
