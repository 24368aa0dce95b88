package model

import (
	"sync"
	"testing"
	"time"
)

type recordedEvent struct {
	kind  string
	piece Piece
	to    Coordinate
	color PlayerColor
}

type recorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recorder) add(e recordedEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) PieceMoved(p Piece, to Coordinate) {
	r.add(recordedEvent{kind: "moved", piece: p, to: to})
}
func (r *recorder) PieceCaptured(p Piece) { r.add(recordedEvent{kind: "captured", piece: p}) }
func (r *recorder) SelectionChanged(p Piece) {
	r.add(recordedEvent{kind: "selection", piece: p})
}
func (r *recorder) TurnChanged(c PlayerColor) { r.add(recordedEvent{kind: "turn", color: c}) }
func (r *recorder) InvalidMove()              { r.add(recordedEvent{kind: "invalid"}) }
func (r *recorder) InvalidMoveDismissed()     { r.add(recordedEvent{kind: "dismissed"}) }

func (r *recorder) count(kind string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// newEmptyBoard returns a board with no pieces and White to move.
func newEmptyBoard(t *testing.T) (*Board, *recorder) {
	t.Helper()
	rec := &recorder{}
	return NewBoard(rec, time.Hour), rec
}

func newStartBoard(t *testing.T) (*Board, *recorder) {
	t.Helper()
	b, rec := newEmptyBoard(t)
	b.InitiateGame()
	rec.reset()
	return b, rec
}

// place puts a new piece on the board outside the normal setup.
func place(t *testing.T, b *Board, kind PieceType, color PlayerColor, label string) Piece {
	t.Helper()
	sq, ok := ParseCoordinate(label)
	if !ok {
		t.Fatalf("invalid coordinate %q", label)
	}
	if existing := b.PieceAt(sq); existing != nil {
		t.Fatalf("square %s already holds a %s", label, existing.Type())
	}
	r := b.Registry(color)
	var p Piece
	switch kind {
	case King:
		p = NewKing(color, sq, b)
		r.King = p
	case Queen:
		p = NewQueen(color, sq, b)
		r.Queen = p
	case Rook:
		p = NewRook(color, sq, b)
		r.Rooks = append(r.Rooks, p)
	case Bishop:
		p = NewBishop(color, sq, b)
		r.Bishops = append(r.Bishops, p)
	case Knight:
		p = NewKnight(color, sq, b)
		r.Knights = append(r.Knights, p)
	case Pawn:
		p = NewPawn(color, sq, b)
		r.Pawns = append(r.Pawns, p)
	default:
		t.Fatalf("unknown piece type %q", kind)
	}
	return p
}

func click(b *Board, label string) {
	b.Click(Cell{Col: label[:1], Row: label[1:]})
}

func sq(label string) Coordinate {
	return MustCoordinate(label)
}

// occupancy maps every occupied square to its piece.
func occupancy(b *Board) map[Coordinate]Piece {
	m := make(map[Coordinate]Piece)
	for _, p := range b.Pieces() {
		m[p.Position()] = p
	}
	return m
}
