package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FEN renders the position as a FEN record. Castling and en passant are not
// part of this game, so those fields are always "-".
func (b *Board) FEN() string {
	var sb strings.Builder
	for row := lastRow; row >= firstRow; row-- {
		empty := 0
		for col := firstCol; col <= lastCol; col++ {
			p := b.PieceAt(Coordinate{Col: col, Row: row})
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.base().Notation())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row > firstRow {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if b.currentPlayer == PlayerColorBlack {
		side = "b"
	}
	return fmt.Sprintf("%s %s - - 0 %d", sb.String(), side, b.plies/2+1)
}
