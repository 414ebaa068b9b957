package board

// Ability values are clamped to this range. 0 freezes a piece entirely;
// 3 unlocks full slides, free rotation and extended scatters.
const (
	MinValue = 0
	MaxValue = 3
)

// Ray returns the ordered squares a king's arrow projects across, starting
// one square beyond the king and continuing until (and including) the first
// occupied square, or the board edge. A non-king, arrowless, or empty origin
// yields nil.
func (b *Board) Ray(from Pos) []Pos {
	pc := b.At(from)
	if pc == nil || !pc.IsKing() || !pc.HasArrow {
		return nil
	}
	var ray []Pos
	cur := from.Step(pc.Arrow)
	for cur.OnBoard() {
		ray = append(ray, cur)
		if b.At(cur) != nil {
			break
		}
		cur = cur.Step(pc.Arrow)
	}
	return ray
}

// ValueAt computes the ability value of the piece at pos: its counter
// count, +1 for every other friendly king whose ray crosses pos, -1 for
// every enemy king's ray, clamped to [MinValue, MaxValue]. Empty squares
// have value 0.
//
// The value is always recomputed from the current board. The board is
// small enough that a full rescan beats tracking ray invalidation; callers
// doing board-wide work should use AllValues instead of 64 separate calls.
func (b *Board) ValueAt(pos Pos) int {
	v := b.FullValueAt(pos)
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}

// FullValueAt is ValueAt without clamping. Display only; never used for
// legality.
func (b *Board) FullValueAt(pos Pos) int {
	pc := b.At(pos)
	if pc == nil {
		return 0
	}
	v := pc.CounterCount()
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			kp := Pos{Row: r, Col: c}
			if kp == pos {
				continue
			}
			king := b.cells[r][c]
			if king == nil || !king.IsKing() || !king.HasArrow {
				continue
			}
			if !rayCrosses(b, kp, king.Arrow, pos) {
				continue
			}
			if king.Owner() == pc.Owner() {
				v++
			} else {
				v--
			}
		}
	}
	return v
}

// AllValues computes the clamped ability value of every square in one pass
// over the kings' rays. One walk per king instead of one per queried square.
func (b *Board) AllValues() [Dim][Dim]int {
	var vals [Dim][Dim]int
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if b.cells[r][c] != nil {
				vals[r][c] = b.cells[r][c].CounterCount()
			}
		}
	}
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			kp := Pos{Row: r, Col: c}
			king := b.cells[r][c]
			if king == nil || !king.IsKing() || !king.HasArrow {
				continue
			}
			for _, sq := range b.Ray(kp) {
				target := b.At(sq)
				if target == nil {
					continue
				}
				if target.Owner() == king.Owner() {
					vals[sq.Row][sq.Col]++
				} else {
					vals[sq.Row][sq.Col]--
				}
			}
		}
	}
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if b.cells[r][c] == nil {
				vals[r][c] = 0
			} else if vals[r][c] < MinValue {
				vals[r][c] = MinValue
			} else if vals[r][c] > MaxValue {
				vals[r][c] = MaxValue
			}
		}
	}
	return vals
}

// rayCrosses walks a king's ray without allocating, checking whether it
// passes through target before stopping.
func rayCrosses(b *Board, from Pos, arrow Dir, target Pos) bool {
	cur := from.Step(arrow)
	for cur.OnBoard() {
		if cur == target {
			return true
		}
		if b.At(cur) != nil {
			return false
		}
		cur = cur.Step(arrow)
	}
	return false
}
