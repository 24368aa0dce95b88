package model

type BishopPiece struct {
	pieceBase
}

func NewBishop(color PlayerColor, position Coordinate, board *Board) *BishopPiece {
	return &BishopPiece{pieceBase: newPieceBase(Bishop, color, position, board)}
}

func (b *BishopPiece) ComputeLegality(target Coordinate) Legality {
	dCol, dRow := delta(b.position, target)
	reaches := dCol != 0 && abs(dCol) == abs(dRow) && b.pathClear(target)
	return b.resolve(b.occupant(target), reaches)
}

func (b *BishopPiece) IsValid(target Coordinate) bool {
	return b.ComputeLegality(target).Legal
}

func (b *BishopPiece) MoveTo(target Coordinate) {
	moveTo(b, target)
}
