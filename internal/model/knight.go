package model

type KnightPiece struct {
	pieceBase
}

func NewKnight(color PlayerColor, position Coordinate, board *Board) *KnightPiece {
	return &KnightPiece{pieceBase: newPieceBase(Knight, color, position, board)}
}

// ComputeLegality allows the eight L-shaped jumps. Knights ignore pieces in
// between.
func (n *KnightPiece) ComputeLegality(target Coordinate) Legality {
	dCol, dRow := delta(n.position, target)
	dCol, dRow = abs(dCol), abs(dRow)
	reaches := (dCol == 1 && dRow == 2) || (dCol == 2 && dRow == 1)
	return n.resolve(n.occupant(target), reaches)
}

func (n *KnightPiece) IsValid(target Coordinate) bool {
	return n.ComputeLegality(target).Legal
}

func (n *KnightPiece) MoveTo(target Coordinate) {
	moveTo(n, target)
}
