package model

import "strings"

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// Notation is the FEN letter for the type, upper case.
func (p PieceType) Notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return ""
}

// Legality is the outcome of checking a move without performing it.
// Captures is the enemy piece on the target square, if any.
type Legality struct {
	Legal    bool
	Captures Piece
}

var illegal = Legality{}

// Piece is implemented by every variant. Pieces hold a reference to the
// board for lookups and to request turn switches or invalid-move signals;
// the board owns the pieces through its registries.
type Piece interface {
	Type() PieceType
	Color() PlayerColor
	Position() Coordinate
	Selected() bool

	// ComputeLegality reports whether moving to target is allowed. It does
	// not mutate anything.
	ComputeLegality(target Coordinate) Legality
	IsValid(target Coordinate) bool
	// MoveTo commits a legal move (capture, relocation, turn switch) or
	// signals an invalid move to the board.
	MoveTo(target Coordinate)

	base() *pieceBase
}

type pieceBase struct {
	kind     PieceType
	color    PlayerColor
	position Coordinate
	selected bool
	board    *Board
}

func newPieceBase(kind PieceType, color PlayerColor, position Coordinate, board *Board) pieceBase {
	return pieceBase{kind: kind, color: color, position: position, board: board}
}

func (p *pieceBase) Type() PieceType      { return p.kind }
func (p *pieceBase) Color() PlayerColor   { return p.color }
func (p *pieceBase) Position() Coordinate { return p.position }
func (p *pieceBase) Selected() bool       { return p.selected }
func (p *pieceBase) base() *pieceBase     { return p }

// Notation is the FEN letter, upper case for White.
func (p *pieceBase) Notation() string {
	n := p.kind.Notation()
	if p.color == PlayerColorBlack {
		return strings.ToLower(n)
	}
	return n
}

func (p *pieceBase) occupant(target Coordinate) Piece {
	return p.board.PieceAt(target)
}

// resolve applies the occupancy policy shared by every variant: a friendly
// occupant blocks, an enemy occupant is captured when the pattern reaches it,
// an empty square is accepted when the pattern reaches it.
func (p *pieceBase) resolve(occupant Piece, reaches bool) Legality {
	if !reaches {
		return illegal
	}
	if occupant != nil && occupant.Color() == p.color {
		return illegal
	}
	return Legality{Legal: true, Captures: occupant}
}

func (p *pieceBase) pathClear(target Coordinate) bool {
	for _, sq := range between(p.position, target) {
		if p.board.PieceAt(sq) != nil {
			return false
		}
	}
	return true
}

// moveTo is the commit step used by every variant's MoveTo.
func moveTo(pc Piece, target Coordinate) {
	b := pc.base()
	if !target.Valid() {
		b.board.invalidMove()
		return
	}
	legality := pc.ComputeLegality(target)
	if !legality.Legal {
		b.board.invalidMove()
		return
	}
	if legality.Captures != nil {
		b.board.capture(legality.Captures)
	}
	b.position = target
	b.board.feedback.PieceMoved(pc, target)
	b.board.switchPlayer()
}
