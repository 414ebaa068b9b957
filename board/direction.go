package board

// Dir is one of the eight compass points, clockwise from north.
// Row 0 is the top of the board, so north decreases the row index.
type Dir uint8

const (
	DirN Dir = iota
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
)

const NumDirs = 8

var dirDeltas = [NumDirs][2]int{
	{-1, 0},  // N
	{-1, 1},  // NE
	{0, 1},   // E
	{1, 1},   // SE
	{1, 0},   // S
	{1, -1},  // SW
	{0, -1},  // W
	{-1, -1}, // NW
}

var dirNames = [NumDirs]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Dir) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return "?"
}

// Delta returns the row and column step for one square in this direction.
func (d Dir) Delta() (dr, dc int) {
	return dirDeltas[d][0], dirDeltas[d][1]
}

// Rotated steps the direction one position around the compass.
func (d Dir) Rotated(clockwise bool) Dir {
	if clockwise {
		return (d + 1) % NumDirs
	}
	return (d + NumDirs - 1) % NumDirs
}

// DirBetween returns the compass direction from one position toward an
// adjacent or aligned position. Returns false for unaligned pairs or for
// from == to.
func DirBetween(from, to Pos) (Dir, bool) {
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	if dr == 0 && dc == 0 {
		return 0, false
	}
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return 0, false
	}
	nr := sign(dr)
	nc := sign(dc)
	for d := Dir(0); d < NumDirs; d++ {
		if dirDeltas[d][0] == nr && dirDeltas[d][1] == nc {
			return d, true
		}
	}
	return 0, false
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
