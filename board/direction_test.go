package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestRotatedFullCircle(t *testing.T) {
	is := is.New(t)
	d := DirN
	order := []Dir{DirNE, DirE, DirSE, DirS, DirSW, DirW, DirNW, DirN}
	for _, want := range order {
		d = d.Rotated(true)
		is.Equal(d, want)
	}
	// And back.
	for i := len(order) - 2; i >= 0; i-- {
		d = d.Rotated(false)
		is.Equal(d, order[i])
	}
}

func TestDirBetween(t *testing.T) {
	is := is.New(t)
	center := Pos{Row: 4, Col: 4}
	for d := Dir(0); d < NumDirs; d++ {
		got, ok := DirBetween(center, center.Step(d))
		is.True(ok)
		is.Equal(got, d)

		// Aligned at distance works too.
		got, ok = DirBetween(center, center.StepN(d, 3))
		is.True(ok)
		is.Equal(got, d)
	}

	_, ok := DirBetween(center, center)
	is.True(!ok) // same square
	_, ok = DirBetween(center, Pos{Row: 2, Col: 5})
	is.True(!ok) // knight-ish offset is not aligned
}

func TestStepDeltas(t *testing.T) {
	is := is.New(t)
	p := Pos{Row: 4, Col: 4}
	is.Equal(p.Step(DirN), Pos{Row: 3, Col: 4})
	is.Equal(p.Step(DirSE), Pos{Row: 5, Col: 5})
	is.Equal(p.StepN(DirW, 4), Pos{Row: 4, Col: 0})
	is.True(!Pos{Row: 0, Col: 0}.Step(DirNW).OnBoard())
}
