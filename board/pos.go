package board

import (
	"fmt"
	"strconv"
)

// Dim is the board dimension. The board is always square.
const Dim = 8

// Pos is a board coordinate. Row 0 is the top rank, col 0 the leftmost file.
type Pos struct {
	Row, Col int
}

// OnBoard reports whether the position is within the grid.
func (p Pos) OnBoard() bool {
	return p.Row >= 0 && p.Row < Dim && p.Col >= 0 && p.Col < Dim
}

// Step returns the position one square away in the given direction. The
// result may be off-board; callers check OnBoard.
func (p Pos) Step(d Dir) Pos {
	dr, dc := d.Delta()
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// StepN returns the position n squares away in the given direction.
func (p Pos) StepN(d Dir, n int) Pos {
	dr, dc := d.Delta()
	return Pos{Row: p.Row + dr*n, Col: p.Col + dc*n}
}

// String renders the position as a file letter and rank number, e.g. "a1"
// for the bottom-left square.
func (p Pos) String() string {
	if !p.OnBoard() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return string(rune('a'+p.Col)) + strconv.Itoa(Dim-p.Row)
}

// ParsePos does the inverse of Pos.String.
func ParsePos(s string) (Pos, error) {
	if len(s) != 2 {
		return Pos{}, fmt.Errorf("bad coordinate %q", s)
	}
	col := int(s[0] - 'a')
	rank, err := strconv.Atoi(s[1:])
	if err != nil {
		return Pos{}, fmt.Errorf("bad coordinate %q", s)
	}
	p := Pos{Row: Dim - rank, Col: col}
	if !p.OnBoard() {
		return Pos{}, fmt.Errorf("coordinate %q off board", s)
	}
	return p, nil
}
