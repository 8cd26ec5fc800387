package fleet

// InputState is the position of the input state machine.
type InputState uint8

const (
	InputEmpty      InputState = iota // waiting for a row letter
	InputHaveRow                      // waiting for a column digit
	InputHaveRowCol                   // waiting for a direction
	InputComplete                     // waiting for Enter
)

// InputBuffer accumulates the three characters of a placement:
// row letter, column digit, direction letter.
type InputBuffer struct {
	chars [3]rune
	n     int
}

// State returns the current state.
func (b *InputBuffer) State() InputState {
	return InputState(b.n)
}

// Feed offers one typed character. It is accepted only if it matches the
// class expected at the current position; otherwise the buffer is unchanged.
// Only ASCII lowercase letters are folded to uppercase.
func (b *InputBuffer) Feed(r rune) bool {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	switch b.State() {
	case InputEmpty:
		if r < 'A' || r >= RowLetter(GridSize) {
			return false
		}
	case InputHaveRow:
		if r < '0' || r > '9' {
			return false
		}
	case InputHaveRowCol:
		if _, ok := ParseDirection(r); !ok {
			return false
		}
	default:
		return false
	}
	b.chars[b.n] = r
	b.n++
	return true
}

// Backspace drops the last accepted character.
func (b *InputBuffer) Backspace() bool {
	if b.n == 0 {
		return false
	}
	b.n--
	b.chars[b.n] = 0
	return true
}

// Reset clears the buffer.
func (b *InputBuffer) Reset() {
	*b = InputBuffer{}
}

// Submit parses a complete buffer and resets it. An incomplete buffer is
// left as is and ok is false.
func (b *InputBuffer) Submit() (row rune, col int, dir Direction, ok bool) {
	if b.State() != InputComplete {
		return 0, 0, 0, false
	}
	row = b.chars[0]
	col = int(b.chars[1] - '0')
	dir = Direction(b.chars[2])
	b.Reset()
	return row, col, dir, true
}

// String returns the characters typed so far.
func (b *InputBuffer) String() string {
	return string(b.chars[:b.n])
}
