// Package move defines the Action type, the closed set of things a piece
// can do on a turn. The legality engine produces Actions and the game and
// AI layers consume them; every consumer switch must handle every type.
package move

import (
	"fmt"

	"github.com/nickelliottpimm/nodi-boardgame/board"
)

// ActionType is the kind of action: a step, a capture, a combine into a
// king, a king scatter, or a king rotation.
type ActionType uint8

const (
	ActionMove ActionType = iota
	ActionCapture
	ActionCombine
	ActionScatter
	ActionRotate
)

func (t ActionType) String() string {
	switch t {
	case ActionMove:
		return "move"
	case ActionCapture:
		return "capture"
	case ActionCombine:
		return "combine"
	case ActionScatter:
		return "scatter"
	case ActionRotate:
		return "rotate"
	}
	return "unknown"
}

// RotationDir is the sense of a king rotation.
type RotationDir uint8

const (
	CW RotationDir = iota
	CCW
)

func (r RotationDir) String() string {
	if r == CW {
		return "cw"
	}
	return "ccw"
}

// Action is one legal (or candidate) action. Which fields are meaningful
// depends on the type: move/capture/combine use From and To; scatter uses
// From, Base and the two landing squares; rotate uses From and Rotation.
// The score is assigned by the AI layer, outside this package.
type Action struct {
	atype    ActionType
	from     board.Pos
	to       board.Pos
	base     board.Pos
	l1, l2   board.Pos
	rotation RotationDir
	score    float64
}

// NewMove creates a step onto an empty square.
func NewMove(from, to board.Pos) *Action {
	return &Action{atype: ActionMove, from: from, to: to}
}

// NewCapture creates a step onto an enemy-occupied square.
func NewCapture(from, to board.Pos) *Action {
	return &Action{atype: ActionCapture, from: from, to: to}
}

// NewCombine creates a merge of the single at from onto the friendly
// single at to, forming a king.
func NewCombine(from, to board.Pos) *Action {
	return &Action{atype: ActionCombine, from: from, to: to}
}

// NewScatter creates a king split: the king at from (after an optional
// pre-step to base) is replaced by singles on l1 and l2.
func NewScatter(from, base, l1, l2 board.Pos) *Action {
	return &Action{atype: ActionScatter, from: from, base: base, l1: l1, l2: l2}
}

// NewRotate creates an arrow rotation of the king at pos.
func NewRotate(pos board.Pos, rotation RotationDir) *Action {
	return &Action{atype: ActionRotate, from: pos, rotation: rotation}
}

func (a *Action) Type() ActionType {
	return a.atype
}

func (a *Action) From() board.Pos {
	return a.from
}

func (a *Action) To() board.Pos {
	return a.to
}

// ScatterBase is the square the scatter originates from. Equal to From
// unless the king pre-stepped along its ray first.
func (a *Action) ScatterBase() board.Pos {
	return a.base
}

// Landings returns the two squares the scatter's singles land on.
func (a *Action) Landings() (board.Pos, board.Pos) {
	return a.l1, a.l2
}

func (a *Action) Rotation() RotationDir {
	return a.rotation
}

// Score is the heuristic score of this action. It is assigned by the AI
// layer.
func (a *Action) Score() float64 {
	return a.score
}

func (a *Action) SetScore(s float64) {
	a.score = s
}

// ShortDescription provides a compact description, useful for logging or
// user display.
func (a *Action) ShortDescription() string {
	switch a.atype {
	case ActionMove:
		return fmt.Sprintf("%v-%v", a.from, a.to)
	case ActionCapture:
		return fmt.Sprintf("%vx%v", a.from, a.to)
	case ActionCombine:
		return fmt.Sprintf("%v+%v", a.from, a.to)
	case ActionScatter:
		if a.base != a.from {
			return fmt.Sprintf("%v>%v*%v,%v", a.from, a.base, a.l1, a.l2)
		}
		return fmt.Sprintf("%v*%v,%v", a.from, a.l1, a.l2)
	case ActionRotate:
		return fmt.Sprintf("%v@%v", a.from, a.rotation)
	}
	return "(unknown)"
}

// String provides a string just for debugging purposes.
func (a *Action) String() string {
	return fmt.Sprintf("<action: %v %v score: %.3f>", a.atype, a.ShortDescription(), a.score)
}
