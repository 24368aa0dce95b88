package model

type QueenPiece struct {
	pieceBase
}

func NewQueen(color PlayerColor, position Coordinate, board *Board) *QueenPiece {
	return &QueenPiece{pieceBase: newPieceBase(Queen, color, position, board)}
}

func (q *QueenPiece) ComputeLegality(target Coordinate) Legality {
	dCol, dRow := delta(q.position, target)
	straight := (dCol == 0) != (dRow == 0)
	diagonal := dCol != 0 && abs(dCol) == abs(dRow)
	reaches := (straight || diagonal) && q.pathClear(target)
	return q.resolve(q.occupant(target), reaches)
}

func (q *QueenPiece) IsValid(target Coordinate) bool {
	return q.ComputeLegality(target).Legal
}

func (q *QueenPiece) MoveTo(target Coordinate) {
	moveTo(q, target)
}
