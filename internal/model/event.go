package model

type PieceMovedEvent struct {
	Piece PieceView `json:"piece"`
	To    string    `json:"to"`
}

type PieceCapturedEvent struct {
	Piece PieceView `json:"piece"`
}

type SelectionChangedEvent struct {
	Piece *PieceView `json:"piece"` // nil when the selection was cleared
}

type TurnChangedEvent struct {
	CurrentPlayer PlayerColor `json:"currentPlayer"`
}

type InvalidMoveEvent struct {
	Visible bool `json:"visible"`
}

// MatchFoundEvent tells a queued player which game they were paired into.
type MatchFoundEvent struct {
	GameID string      `json:"gameId"`
	Color  PlayerColor `json:"color"`
}
