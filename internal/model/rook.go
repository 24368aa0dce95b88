package model

type RookPiece struct {
	pieceBase
}

func NewRook(color PlayerColor, position Coordinate, board *Board) *RookPiece {
	return &RookPiece{pieceBase: newPieceBase(Rook, color, position, board)}
}

// ComputeLegality allows any distance along the rank or file as long as
// nothing stands in between.
func (r *RookPiece) ComputeLegality(target Coordinate) Legality {
	dCol, dRow := delta(r.position, target)
	reaches := (dCol == 0) != (dRow == 0) && r.pathClear(target)
	return r.resolve(r.occupant(target), reaches)
}

func (r *RookPiece) IsValid(target Coordinate) bool {
	return r.ComputeLegality(target).Legal
}

func (r *RookPiece) MoveTo(target Coordinate) {
	moveTo(r, target)
}
