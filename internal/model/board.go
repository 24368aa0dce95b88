package model

import "time"

// Board owns both sides' pieces and runs the click-driven selection state
// machine. It is not safe for concurrent use; Game serializes access.
type Board struct {
	white         *Registry
	black         *Registry
	currentPlayer PlayerColor
	selection     Piece
	plies         int
	feedback      Feedback
	indicator     *invalidMoveIndicator
}

// NewBoard returns an empty board. Call InitiateGame to set up pieces.
func NewBoard(feedback Feedback, invalidMoveDelay time.Duration) *Board {
	if feedback == nil {
		feedback = nopFeedback{}
	}
	b := &Board{
		white:         &Registry{},
		black:         &Registry{},
		currentPlayer: PlayerColorWhite,
		feedback:      feedback,
	}
	b.indicator = newInvalidMoveIndicator(invalidMoveDelay, feedback.InvalidMove, feedback.InvalidMoveDismissed)
	return b
}

// InitiateGame places both sides on their starting squares with White to move.
func (b *Board) InitiateGame() {
	b.white = newRegistry(PlayerColorWhite, b)
	b.black = newRegistry(PlayerColorBlack, b)
	b.currentPlayer = PlayerColorWhite
	b.selection = nil
	b.plies = 0
	b.indicator.Hide()
	b.feedback.TurnChanged(b.currentPlayer)
}

func (b *Board) CurrentPlayer() PlayerColor {
	return b.currentPlayer
}

// Selection returns the piece selected to move next, or nil.
func (b *Board) Selection() Piece {
	return b.selection
}

func (b *Board) InvalidMoveShown() bool {
	return b.indicator.Visible()
}

func (b *Board) Registry(color PlayerColor) *Registry {
	if color == PlayerColorWhite {
		return b.white
	}
	return b.black
}

// Pieces lists every live piece, White's first.
func (b *Board) Pieces() []Piece {
	return append(b.white.All(), b.black.All()...)
}

// PieceAt returns the piece on sq, or nil.
func (b *Board) PieceAt(sq Coordinate) Piece {
	if !sq.Valid() {
		return nil
	}
	if p := b.white.at(sq); p != nil {
		return p
	}
	return b.black.at(sq)
}

// PieceAtCell resolves a clicked cell and looks up its occupant. It returns
// nil when the cell has no row or column.
func (b *Board) PieceAtCell(cell Cell) Piece {
	sq, ok := ResolveCell(cell)
	if !ok {
		return nil
	}
	return b.PieceAt(sq)
}

// Click feeds one square activation into the selection state machine.
func (b *Board) Click(cell Cell) {
	b.clearSelection()

	target, resolved := ResolveCell(cell)
	var occupant Piece
	if resolved {
		occupant = b.PieceAt(target)
	}

	if occupant == nil {
		if b.selection != nil {
			b.selection.MoveTo(target)
		}
		return
	}

	if b.selection == nil && occupant.Color() != b.currentPlayer {
		b.invalidMove()
		return
	}
	if occupant.Color() == b.currentPlayer {
		b.selectPiece(occupant)
		return
	}
	b.selection.MoveTo(target)
}

// clearSelection drops every highlight. The board's selection itself is kept
// until the click resolves.
func (b *Board) clearSelection() {
	cleared := false
	for _, p := range b.Pieces() {
		if p.base().selected {
			p.base().selected = false
			cleared = true
		}
	}
	if cleared {
		b.feedback.SelectionChanged(nil)
	}
}

func (b *Board) selectPiece(p Piece) {
	p.base().selected = true
	b.selection = p
	b.feedback.SelectionChanged(p)
}

func (b *Board) capture(p Piece) {
	if b.Registry(p.Color()).remove(p) {
		p.base().selected = false
		b.feedback.PieceCaptured(p)
	}
}

func (b *Board) switchPlayer() {
	b.currentPlayer = b.currentPlayer.Opposite()
	b.selection = nil
	b.plies++
	b.feedback.TurnChanged(b.currentPlayer)
	b.indicator.Hide()
}

func (b *Board) invalidMove() {
	b.selection = nil
	b.indicator.Show()
}
