package model

type PieceView struct {
	Type     PieceType   `json:"type"`
	Color    PlayerColor `json:"color"`
	Position string      `json:"position"`
	Selected bool        `json:"selected"`
}

type BoardState struct {
	Pieces        []PieceView `json:"pieces"`
	CurrentPlayer PlayerColor `json:"currentPlayer"`
	Selected      *string     `json:"selected"` // nil when nothing is selected
	InvalidMove   bool        `json:"invalidMove"`
	FEN           string      `json:"fen"`
}

func NewPieceView(p Piece) PieceView {
	return PieceView{
		Type:     p.Type(),
		Color:    p.Color(),
		Position: p.Position().String(),
		Selected: p.Selected(),
	}
}

// Snapshot captures the board for clients.
func (b *Board) Snapshot() BoardState {
	pieces := b.Pieces()
	views := make([]PieceView, 0, len(pieces))
	for _, p := range pieces {
		views = append(views, NewPieceView(p))
	}

	state := BoardState{
		Pieces:        views,
		CurrentPlayer: b.currentPlayer,
		InvalidMove:   b.InvalidMoveShown(),
		FEN:           b.FEN(),
	}
	if b.selection != nil {
		sq := b.selection.Position().String()
		state.Selected = &sq
	}
	return state
}
