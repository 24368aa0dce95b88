package model

type KingPiece struct {
	pieceBase
}

func NewKing(color PlayerColor, position Coordinate, board *Board) *KingPiece {
	return &KingPiece{pieceBase: newPieceBase(King, color, position, board)}
}

// ComputeLegality allows any of the eight neighbouring squares.
func (k *KingPiece) ComputeLegality(target Coordinate) Legality {
	dCol, dRow := delta(k.position, target)
	reaches := abs(dCol) <= 1 && abs(dRow) <= 1
	return k.resolve(k.occupant(target), reaches)
}

func (k *KingPiece) IsValid(target Coordinate) bool {
	return k.ComputeLegality(target).Legal
}

func (k *KingPiece) MoveTo(target Coordinate) {
	moveTo(k, target)
}
