package model

// Feedback receives display notifications from the board. Implementations
// must be safe for use from the indicator's timer goroutine as well as the
// goroutine driving clicks.
type Feedback interface {
	PieceMoved(p Piece, to Coordinate)
	PieceCaptured(p Piece)
	// SelectionChanged is called with nil when the highlight is cleared.
	SelectionChanged(p Piece)
	TurnChanged(current PlayerColor)
	InvalidMove()
	InvalidMoveDismissed()
}

type nopFeedback struct{}

func (nopFeedback) PieceMoved(Piece, Coordinate) {}
func (nopFeedback) PieceCaptured(Piece)          {}
func (nopFeedback) SelectionChanged(Piece)       {}
func (nopFeedback) TurnChanged(PlayerColor)      {}
func (nopFeedback) InvalidMove()                 {}
func (nopFeedback) InvalidMoveDismissed()        {}
