package model

type PawnPiece struct {
	pieceBase
}

func NewPawn(color PlayerColor, position Coordinate, board *Board) *PawnPiece {
	return &PawnPiece{pieceBase: newPieceBase(Pawn, color, position, board)}
}

// ComputeLegality allows a single step forward onto an empty square, a double
// step from the starting row when both squares are empty, and a diagonal step
// forward onto an enemy piece.
func (p *PawnPiece) ComputeLegality(target Coordinate) Legality {
	dCol, dRow := delta(p.position, target)
	dir := p.color.forward()
	occupant := p.occupant(target)

	var reaches bool
	switch {
	case dCol == 0 && dRow == dir:
		reaches = occupant == nil
	case dCol == 0 && dRow == 2*dir:
		reaches = p.position.Row == p.color.pawnRow() && occupant == nil && p.pathClear(target)
	case abs(dCol) == 1 && dRow == dir:
		reaches = occupant != nil
	}
	return p.resolve(occupant, reaches)
}

func (p *PawnPiece) IsValid(target Coordinate) bool {
	return p.ComputeLegality(target).Legal
}

func (p *PawnPiece) MoveTo(target Coordinate) {
	moveTo(p, target)
}
