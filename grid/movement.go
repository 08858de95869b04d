package grid

// The order below is fixed: searches break ties and discover blocked
// neighbors in exactly this sequence.
var (
	offsets4 = [...]Offset{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	offsets8 = [...]Offset{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// Offsets returns the ordered neighbor offsets for c: the four cardinal moves
// (down, right, up, left), followed for Conn8 by the four diagonals. An
// unknown connectivity yields nil. The returned slice must not be modified.
// Complexity: O(1).
func (c Connectivity) Offsets() []Offset {
	switch c {
	case Conn4:
		return offsets4[:]
	case Conn8:
		return offsets8[:]
	default:
		return nil
	}
}
