// Package board contains the NODI board model: players, counters, pieces,
// positions, and the ray/ability-value computations that everything else
// (legality, AI) is built on.
package board

import "fmt"

// Player is one of the two sides.
type Player uint8

const (
	Black Player = iota
	White
)

func (p Player) Opponent() Player {
	if p == Black {
		return White
	}
	return Black
}

func (p Player) String() string {
	if p == Black {
		return "black"
	}
	return "white"
}

// Counter is a single indivisible token. Key counters decide the game:
// a side with no key counters left on the board has lost.
type Counter struct {
	Owner Player
	Key   bool
}

// Piece is one or two counters stacked on a square. A two-counter piece
// is a king and carries an arrow direction; a one-counter piece is a
// single and its Arrow field is meaningless.
type Piece struct {
	Counters []Counter
	Arrow    Dir
	HasArrow bool
}

// NewSingle creates a one-counter piece.
func NewSingle(owner Player, key bool) *Piece {
	return &Piece{Counters: []Counter{{Owner: owner, Key: key}}}
}

// NewKing creates a two-counter piece pointing along arrow.
func NewKing(owner Player, arrow Dir) *Piece {
	return &Piece{
		Counters: []Counter{{Owner: owner}, {Owner: owner}},
		Arrow:    arrow,
		HasArrow: true,
	}
}

func (p *Piece) IsSingle() bool {
	return len(p.Counters) == 1
}

func (p *Piece) IsKing() bool {
	return len(p.Counters) == 2
}

// Owner returns the owning player. All counters on a piece share an owner.
func (p *Piece) Owner() Player {
	return p.Counters[0].Owner
}

// HasKey returns whether any counter on this piece is a key counter.
func (p *Piece) HasKey() bool {
	for _, c := range p.Counters {
		if c.Key {
			return true
		}
	}
	return false
}

// CounterCount is the base ability value of the piece, before ray effects.
func (p *Piece) CounterCount() int {
	return len(p.Counters)
}

func (p *Piece) Clone() *Piece {
	counters := make([]Counter, len(p.Counters))
	copy(counters, p.Counters)
	return &Piece{Counters: counters, Arrow: p.Arrow, HasArrow: p.HasArrow}
}

func (p *Piece) String() string {
	kind := "single"
	if p.IsKing() {
		kind = fmt.Sprintf("king %v", p.Arrow)
	} else if p.HasKey() {
		kind = "key"
	}
	return fmt.Sprintf("<%v %v>", p.Owner(), kind)
}
