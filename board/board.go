package board

import (
	"fmt"
	"strings"
)

// Board is the 8x8 grid. Each cell is empty or holds exactly one piece.
// Boards are treated as immutable once produced: action application clones
// first and mutates the clone, so old snapshots stay valid for history.
type Board struct {
	cells [Dim][Dim]*Piece
}

// StandardLayout is the initial position. Each side spreads eight singles
// over its two home rows, keys on the back rank, spaced so that no two
// friendly pieces start adjacent: the opening turns are spent maneuvering
// before any king can form.
var StandardLayout = []string{
	`b.B.B.b.`,
	`........`,
	`.b.b.b.b`,
	`........`,
	`........`,
	`.w.w.w.w`,
	`........`,
	`w.W.W.w.`,
}

// MakeBoard parses a textual layout into a Board. Symbols: '.' empty,
// 'w' white single, 'W' white key, 'b' black single, 'B' black key.
func MakeBoard(desc []string) (*Board, error) {
	if len(desc) != Dim {
		return nil, fmt.Errorf("layout has %d rows, want %d", len(desc), Dim)
	}
	b := &Board{}
	for r, rowDesc := range desc {
		if len(rowDesc) != Dim {
			return nil, fmt.Errorf("layout row %d has %d cols, want %d", r, len(rowDesc), Dim)
		}
		for c := 0; c < Dim; c++ {
			switch rowDesc[c] {
			case '.':
			case 'w':
				b.cells[r][c] = NewSingle(White, false)
			case 'W':
				b.cells[r][c] = NewSingle(White, true)
			case 'b':
				b.cells[r][c] = NewSingle(Black, false)
			case 'B':
				b.cells[r][c] = NewSingle(Black, true)
			default:
				return nil, fmt.Errorf("unknown layout symbol %q at row %d col %d",
					rowDesc[c], r, c)
			}
		}
	}
	return b, nil
}

// MustBoard is MakeBoard for known-good layouts; it panics on error.
// Intended for tests and the standard setup.
func MustBoard(desc []string) *Board {
	b, err := MakeBoard(desc)
	if err != nil {
		panic(err)
	}
	return b
}

// NewGameBoard returns the standard starting position.
func NewGameBoard() *Board {
	return MustBoard(StandardLayout)
}

// At returns the piece at pos, or nil if the square is empty or off-board.
func (b *Board) At(pos Pos) *Piece {
	if !pos.OnBoard() {
		return nil
	}
	return b.cells[pos.Row][pos.Col]
}

// SetPiece places a piece on a square, replacing anything there.
func (b *Board) SetPiece(pos Pos, p *Piece) {
	if pos.OnBoard() {
		b.cells[pos.Row][pos.Col] = p
	}
}

// RemovePiece empties a square.
func (b *Board) RemovePiece(pos Pos) {
	if pos.OnBoard() {
		b.cells[pos.Row][pos.Col] = nil
	}
}

// Clone returns a deep copy. Every occupied cell gets a new Piece so the
// copy shares no mutable state with the original.
func (b *Board) Clone() *Board {
	nb := &Board{}
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if b.cells[r][c] != nil {
				nb.cells[r][c] = b.cells[r][c].Clone()
			}
		}
	}
	return nb
}

// Pieces returns the positions of all pieces belonging to side, scanning
// top-left to bottom-right.
func (b *Board) Pieces(side Player) []Pos {
	var ps []Pos
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if pc := b.cells[r][c]; pc != nil && pc.Owner() == side {
				ps = append(ps, Pos{Row: r, Col: c})
			}
		}
	}
	return ps
}

// KeyCount returns the number of key counters side still has on the board.
func (b *Board) KeyCount(side Player) int {
	n := 0
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			pc := b.cells[r][c]
			if pc == nil || pc.Owner() != side {
				continue
			}
			for _, ctr := range pc.Counters {
				if ctr.Key {
					n++
				}
			}
		}
	}
	return n
}

// String renders the board for the shell and for test diagnostics. Kings
// show as the owner symbol plus an arrow glyph; key pieces are upper-case.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   a  b  c  d  e  f  g  h\n")
	for r := 0; r < Dim; r++ {
		fmt.Fprintf(&sb, "%d ", Dim-r)
		for c := 0; c < Dim; c++ {
			sb.WriteString(cellString(b.cells[r][c]))
		}
		fmt.Fprintf(&sb, " %d\n", Dim-r)
	}
	sb.WriteString("   a  b  c  d  e  f  g  h")
	return sb.String()
}

var arrowGlyphs = [NumDirs]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

func cellString(pc *Piece) string {
	if pc == nil {
		return " . "
	}
	sym := 'b'
	if pc.Owner() == White {
		sym = 'w'
	}
	if pc.HasKey() {
		sym = sym - 'a' + 'A'
	}
	if pc.IsKing() {
		return fmt.Sprintf("%c%c ", sym, arrowGlyphs[pc.Arrow])
	}
	return fmt.Sprintf(" %c ", sym)
}
