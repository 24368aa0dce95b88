package model

import "golang.org/x/exp/slices"

// Registry holds one side's live pieces grouped by kind.
type Registry struct {
	King    Piece
	Queen   Piece
	Bishops []Piece
	Knights []Piece
	Rooks   []Piece
	Pawns   []Piece
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func newRegistry(color PlayerColor, board *Board) *Registry {
	r := &Registry{
		Bishops: make([]Piece, 0, 2),
		Knights: make([]Piece, 0, 2),
		Rooks:   make([]Piece, 0, 2),
		Pawns:   make([]Piece, 0, 8),
	}
	for i, kind := range backRank {
		sq := Coordinate{Col: firstCol + byte(i), Row: color.backRow()}
		switch kind {
		case King:
			r.King = NewKing(color, sq, board)
		case Queen:
			r.Queen = NewQueen(color, sq, board)
		case Bishop:
			r.Bishops = append(r.Bishops, NewBishop(color, sq, board))
		case Knight:
			r.Knights = append(r.Knights, NewKnight(color, sq, board))
		case Rook:
			r.Rooks = append(r.Rooks, NewRook(color, sq, board))
		}
	}
	for i := 0; i < 8; i++ {
		sq := Coordinate{Col: firstCol + byte(i), Row: color.pawnRow()}
		r.Pawns = append(r.Pawns, NewPawn(color, sq, board))
	}
	return r
}

// All flattens the registry: king, queen, bishops, knights, rooks, pawns.
func (r *Registry) All() []Piece {
	pieces := make([]Piece, 0, r.Size())
	if r.King != nil {
		pieces = append(pieces, r.King)
	}
	if r.Queen != nil {
		pieces = append(pieces, r.Queen)
	}
	pieces = append(pieces, r.Bishops...)
	pieces = append(pieces, r.Knights...)
	pieces = append(pieces, r.Rooks...)
	pieces = append(pieces, r.Pawns...)
	return pieces
}

func (r *Registry) Size() int {
	n := len(r.Bishops) + len(r.Knights) + len(r.Rooks) + len(r.Pawns)
	if r.King != nil {
		n++
	}
	if r.Queen != nil {
		n++
	}
	return n
}

func (r *Registry) Contains(p Piece) bool {
	return slices.Contains(r.All(), p)
}

func (r *Registry) at(sq Coordinate) Piece {
	pieces := r.All()
	idx := slices.IndexFunc(pieces, func(p Piece) bool { return p.Position() == sq })
	if idx < 0 {
		return nil
	}
	return pieces[idx]
}

// remove drops p from the registry and reports whether it was present.
func (r *Registry) remove(p Piece) bool {
	switch {
	case r.King == p:
		r.King = nil
		return true
	case r.Queen == p:
		r.Queen = nil
		return true
	}
	for _, list := range []*[]Piece{&r.Bishops, &r.Knights, &r.Rooks, &r.Pawns} {
		if idx := slices.Index(*list, p); idx >= 0 {
			*list = slices.Delete(*list, idx, idx+1)
			return true
		}
	}
	return false
}
