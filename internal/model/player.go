package model

type ClientPlayer struct {
	ID    string      `json:"name"`
	Color PlayerColor `json:"color"`
}

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

func (c PlayerColor) Opposite() PlayerColor {
	if c == PlayerColorWhite {
		return PlayerColorBlack
	}
	return PlayerColorWhite
}

// forward is the row direction pawns of this color advance in.
func (c PlayerColor) forward() int {
	if c == PlayerColorWhite {
		return 1
	}
	return -1
}

func (c PlayerColor) pawnRow() int {
	if c == PlayerColorWhite {
		return 2
	}
	return 7
}

func (c PlayerColor) backRow() int {
	if c == PlayerColorWhite {
		return 1
	}
	return 8
}
