package game

// Cell is one board square. The empty string keeps the wire format the
// frontend expects while still giving a closed set of values.
type Cell string

const (
	Empty Cell = ""
	X     Cell = "X"
	O     Cell = "O"
)

func (c Cell) Valid() bool {
	return c == Empty || c == X || c == O
}

// Board is always exactly 9 cells, indexed 0..8 row by row.
type Board [9]Cell

// Line is a completed three-in-a-row: its cell indices plus an orientation
// tag the frontend uses to draw the strike-through.
type Line struct {
	Cells [3]int `json:"cells"`
	Type  string `json:"type"`
}

// Scan order is rows, then columns, then diagonals, for determinism.
var winningLines = []Line{
	{Cells: [3]int{0, 1, 2}, Type: "horizontal-top"},
	{Cells: [3]int{3, 4, 5}, Type: "horizontal-middle"},
	{Cells: [3]int{6, 7, 8}, Type: "horizontal-bottom"},
	{Cells: [3]int{0, 3, 6}, Type: "vertical-left"},
	{Cells: [3]int{1, 4, 7}, Type: "vertical-middle"},
	{Cells: [3]int{2, 5, 8}, Type: "vertical-right"},
	{Cells: [3]int{0, 4, 8}, Type: "diagonal-left"},
	{Cells: [3]int{2, 4, 6}, Type: "diagonal-right"},
}

// Winner returns the symbol holding a completed line, or Empty if none.
func (b Board) Winner() (Cell, *Line) {
	for _, line := range winningLines {
		a, m, z := line.Cells[0], line.Cells[1], line.Cells[2]
		if b[a] != Empty && b[a] == b[m] && b[a] == b[z] {
			found := line
			return b[a], &found
		}
	}
	return Empty, nil
}

func (b Board) Full() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}
