package rain

// Cell is one visible glyph of a trail.
type Cell struct {
	Row   int
	Glyph rune
}

// trailCap leaves room for the one-cell overshoot between appending the
// newest cell and popping the oldest.
const trailCap = MaxLength + 1

// Trail is a fixed-capacity ring buffer of cells, oldest first.
type Trail struct {
	cells [trailCap]Cell
	head  int // index of the oldest cell
	n     int
}

func (t *Trail) Len() int { return t.n }

// Push appends c as the newest cell. When the buffer is full the oldest cell
// is overwritten.
func (t *Trail) Push(c Cell) {
	if t.n == trailCap {
		t.head = (t.head + 1) % trailCap
		t.n--
	}
	t.cells[(t.head+t.n)%trailCap] = c
	t.n++
}

// PopOldest removes and returns the oldest cell.
func (t *Trail) PopOldest() (Cell, bool) {
	if t.n == 0 {
		return Cell{}, false
	}
	c := t.cells[t.head]
	t.head = (t.head + 1) % trailCap
	t.n--
	return c, true
}

// At returns the i-th cell, 0 being the oldest. It panics if i is out of range.
func (t *Trail) At(i int) Cell {
	if i < 0 || i >= t.n {
		panic("rain: trail index out of range")
	}
	return t.cells[(t.head+i)%trailCap]
}

func (t *Trail) Set(i int, c Cell) {
	if i < 0 || i >= t.n {
		panic("rain: trail index out of range")
	}
	t.cells[(t.head+i)%trailCap] = c
}

// Newest returns the most recently pushed cell.
func (t *Trail) Newest() (Cell, bool) {
	if t.n == 0 {
		return Cell{}, false
	}
	return t.At(t.n - 1), true
}

func (t *Trail) Reset() {
	t.head = 0
	t.n = 0
}

// Cells returns a copy of the trail, oldest first.
func (t *Trail) Cells() []Cell {
	out := make([]Cell, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}
