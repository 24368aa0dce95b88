package model

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	firstCol byte = 'A'
	lastCol  byte = 'H'
	firstRow      = 1
	lastRow       = 8
)

// Coordinate identifies one of the 64 squares, e.g. E2.
type Coordinate struct {
	Col byte
	Row int
}

// Cell is a raw UI click target. Either field may be empty when the click
// landed outside a square.
type Cell struct {
	Col string `json:"col"`
	Row string `json:"row"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%c%d", c.Col, c.Row)
}

func (c Coordinate) Valid() bool {
	return c.Col >= firstCol && c.Col <= lastCol && c.Row >= firstRow && c.Row <= lastRow
}

func (c Coordinate) file() int {
	return int(c.Col - firstCol)
}

func (c Coordinate) offset(dCol, dRow int) Coordinate {
	return Coordinate{Col: byte(int(c.Col) + dCol), Row: c.Row + dRow}
}

// ParseCoordinate accepts labels like "E2" or "e2".
func ParseCoordinate(label string) (Coordinate, bool) {
	if len(label) != 2 {
		return Coordinate{}, false
	}
	return ResolveCell(Cell{Col: label[:1], Row: label[1:]})
}

// ResolveCell turns a clicked cell into a coordinate. It reports false when
// the row or column is missing or off the board.
func ResolveCell(cell Cell) (Coordinate, bool) {
	col := strings.ToUpper(strings.TrimSpace(cell.Col))
	row := strings.TrimSpace(cell.Row)
	if len(col) != 1 || row == "" {
		return Coordinate{}, false
	}
	r, err := strconv.Atoi(row)
	if err != nil {
		return Coordinate{}, false
	}
	c := Coordinate{Col: col[0], Row: r}
	if !c.Valid() {
		return Coordinate{}, false
	}
	return c, true
}

// MustCoordinate panics on a malformed label. Used for fixed setup squares.
func MustCoordinate(label string) Coordinate {
	c, ok := ParseCoordinate(label)
	if !ok {
		panic(fmt.Sprintf("invalid coordinate %q", label))
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// delta returns the signed column and row distance from one square to another.
func delta(from, to Coordinate) (int, int) {
	return int(to.Col) - int(from.Col), to.Row - from.Row
}

// between lists the squares strictly between from and to along a rank, file
// or diagonal. It returns nil when the squares are adjacent or not aligned.
func between(from, to Coordinate) []Coordinate {
	dCol, dRow := delta(from, to)
	aligned := dCol == 0 || dRow == 0 || abs(dCol) == abs(dRow)
	if !aligned {
		return nil
	}
	distance := max(abs(dCol), abs(dRow)) - 1
	if distance <= 0 {
		return nil
	}

	stepCol, stepRow := sign(dCol), sign(dRow)
	squares := make([]Coordinate, 0, distance)
	sq := from
	for i := 0; i < distance; i++ {
		sq = sq.offset(stepCol, stepRow)
		squares = append(squares, sq)
	}
	return squares
}
