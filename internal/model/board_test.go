package model

import "testing"

func TestInitiateGame(t *testing.T) {
	rec := &recorder{}
	b := NewBoard(rec, 0)
	b.InitiateGame()

	if b.CurrentPlayer() != PlayerColorWhite {
		t.Fatalf("expected white to move first, got %s", b.CurrentPlayer())
	}
	if b.Selection() != nil {
		t.Fatalf("expected no selection after setup")
	}
	if rec.count("turn") != 1 {
		t.Fatalf("expected one turn notification, got %d", rec.count("turn"))
	}

	for _, color := range []PlayerColor{PlayerColorWhite, PlayerColorBlack} {
		r := b.Registry(color)
		if r.Size() != 16 {
			t.Fatalf("%s registry has %d pieces, want 16", color, r.Size())
		}
		if len(r.Bishops) != 2 || len(r.Knights) != 2 || len(r.Rooks) != 2 || len(r.Pawns) != 8 {
			t.Fatalf("%s registry has wrong list sizes: %+v", color, r)
		}
	}

	want := map[string]PieceType{
		"A1": Rook, "B1": Knight, "C1": Bishop, "D1": Queen,
		"E1": King, "F1": Bishop, "G1": Knight, "H1": Rook,
		"A8": Rook, "B8": Knight, "C8": Bishop, "D8": Queen,
		"E8": King, "F8": Bishop, "G8": Knight, "H8": Rook,
		"A2": Pawn, "H2": Pawn, "A7": Pawn, "H7": Pawn,
	}
	for label, kind := range want {
		p := b.PieceAt(sq(label))
		if p == nil {
			t.Fatalf("no piece at %s", label)
		}
		if p.Type() != kind {
			t.Errorf("%s holds %s, want %s", label, p.Type(), kind)
		}
		wantColor := PlayerColorWhite
		if label[1] >= '7' {
			wantColor = PlayerColorBlack
		}
		if p.Color() != wantColor {
			t.Errorf("%s holds a %s piece, want %s", label, p.Color(), wantColor)
		}
	}
	if b.PieceAt(sq("E4")) != nil {
		t.Fatalf("expected E4 to be empty")
	}
}

func TestKingStepMovesAndSwitchesTurn(t *testing.T) {
	b, rec := newEmptyBoard(t)
	king := place(t, b, King, PlayerColorWhite, "E1")
	place(t, b, King, PlayerColorBlack, "E8")

	click(b, "E1")
	if b.Selection() != king {
		t.Fatalf("expected the king to be selected")
	}
	if !king.Selected() {
		t.Fatalf("expected the king to be highlighted")
	}

	click(b, "F2")
	if king.Position() != sq("F2") {
		t.Fatalf("expected king on F2, got %s", king.Position())
	}
	if b.CurrentPlayer() != PlayerColorBlack {
		t.Fatalf("expected black to move, got %s", b.CurrentPlayer())
	}
	if b.Selection() != nil {
		t.Fatalf("expected selection to be cleared")
	}
	if rec.count("moved") != 1 || rec.count("turn") != 1 {
		t.Fatalf("expected one move and one turn notification, got %d and %d", rec.count("moved"), rec.count("turn"))
	}
}

func TestKingTooFarIsRejected(t *testing.T) {
	b, rec := newEmptyBoard(t)
	king := place(t, b, King, PlayerColorWhite, "E1")

	click(b, "E1")
	click(b, "D3")

	if king.Position() != sq("E1") {
		t.Fatalf("expected king to stay on E1, got %s", king.Position())
	}
	if b.CurrentPlayer() != PlayerColorWhite {
		t.Fatalf("expected white to keep the turn")
	}
	if b.Selection() != nil {
		t.Fatalf("expected selection to be cleared after an invalid move")
	}
	if !b.InvalidMoveShown() || rec.count("invalid") != 1 {
		t.Fatalf("expected the invalid-move indicator to fire")
	}
}

func TestKingCapturesAdjacentEnemy(t *testing.T) {
	b, rec := newEmptyBoard(t)
	king := place(t, b, King, PlayerColorWhite, "E4")
	victim := place(t, b, Rook, PlayerColorBlack, "E5")
	place(t, b, King, PlayerColorBlack, "A8")
	whiteBefore, blackBefore := b.Registry(PlayerColorWhite).Size(), b.Registry(PlayerColorBlack).Size()

	click(b, "E4")
	click(b, "E5")

	if king.Position() != sq("E5") {
		t.Fatalf("expected king on E5, got %s", king.Position())
	}
	if b.Registry(PlayerColorBlack).Contains(victim) {
		t.Fatalf("captured rook still in black's registry")
	}
	if got := b.Registry(PlayerColorBlack).Size(); got != blackBefore-1 {
		t.Fatalf("black registry size = %d, want %d", got, blackBefore-1)
	}
	if got := b.Registry(PlayerColorWhite).Size(); got != whiteBefore {
		t.Fatalf("white registry size = %d, want %d", got, whiteBefore)
	}
	if b.PieceAt(sq("E5")) != king {
		t.Fatalf("expected lookup on E5 to find the king")
	}
	if b.CurrentPlayer() != PlayerColorBlack {
		t.Fatalf("expected black to move")
	}
	if rec.count("captured") != 1 {
		t.Fatalf("expected one capture notification, got %d", rec.count("captured"))
	}
}

func TestClickingOpponentWhileIdleIsInvalid(t *testing.T) {
	b, rec := newStartBoard(t)

	click(b, "E7")

	if b.Selection() != nil {
		t.Fatalf("expected no selection")
	}
	if b.CurrentPlayer() != PlayerColorWhite {
		t.Fatalf("expected white to keep the turn")
	}
	if rec.count("invalid") != 1 {
		t.Fatalf("expected an invalid-move notification")
	}
	if b.PieceAt(sq("E7")).Selected() {
		t.Fatalf("opponent piece must not be highlighted")
	}
}

func TestClickStateMachine(t *testing.T) {
	t.Run("idle empty square is a no-op", func(t *testing.T) {
		b, rec := newStartBoard(t)
		before := b.FEN()
		click(b, "E4")
		if b.Selection() != nil || b.FEN() != before || len(rec.events) != 0 {
			t.Fatalf("expected nothing to happen, got events %+v", rec.events)
		}
	})

	t.Run("idle unresolved click is a no-op", func(t *testing.T) {
		b, rec := newStartBoard(t)
		b.Click(Cell{Col: "E"})
		if b.Selection() != nil || len(rec.events) != 0 {
			t.Fatalf("expected nothing to happen, got events %+v", rec.events)
		}
	})

	t.Run("reselect own piece", func(t *testing.T) {
		b, _ := newStartBoard(t)
		click(b, "B1")
		click(b, "G1")
		knight := b.PieceAt(sq("G1"))
		if b.Selection() != knight {
			t.Fatalf("expected G1 knight to be selected")
		}
		if b.PieceAt(sq("B1")).Selected() {
			t.Fatalf("expected the previous highlight to be cleared")
		}
		if !knight.Selected() {
			t.Fatalf("expected the new piece to be highlighted")
		}
	})

	t.Run("selected then unresolved click fails the move", func(t *testing.T) {
		b, rec := newStartBoard(t)
		click(b, "B1")
		b.Click(Cell{Row: "3"})
		if b.Selection() != nil {
			t.Fatalf("expected selection to be cleared")
		}
		if rec.count("invalid") != 1 {
			t.Fatalf("expected an invalid-move notification")
		}
		if b.CurrentPlayer() != PlayerColorWhite {
			t.Fatalf("expected white to keep the turn")
		}
	})

	t.Run("selected then illegal capture attempt", func(t *testing.T) {
		b, _ := newStartBoard(t)
		click(b, "A1")
		click(b, "A7")
		if b.PieceAt(sq("A7")).Color() != PlayerColorBlack {
			t.Fatalf("black pawn must survive a blocked rook")
		}
		if b.Selection() != nil || b.CurrentPlayer() != PlayerColorWhite {
			t.Fatalf("expected idle state with white to move")
		}
	})

	t.Run("every click clears highlights", func(t *testing.T) {
		b, _ := newStartBoard(t)
		click(b, "E2")
		click(b, "E4")
		for _, p := range b.Pieces() {
			if p.Selected() {
				t.Fatalf("%s on %s still highlighted", p.Type(), p.Position())
			}
		}
	})
}

func TestNonCapturingMoveChangesOnlyOriginAndDestination(t *testing.T) {
	b, _ := newStartBoard(t)
	before := occupancy(b)
	mover := b.PieceAt(sq("G1"))

	click(b, "G1")
	click(b, "F3")

	after := occupancy(b)
	if len(after) != len(before) {
		t.Fatalf("piece count changed: %d -> %d", len(before), len(after))
	}
	for square, p := range before {
		switch square {
		case sq("G1"):
			if after[square] != nil {
				t.Fatalf("origin still occupied")
			}
		default:
			if after[square] != p {
				t.Fatalf("square %s changed", square)
			}
		}
	}
	if after[sq("F3")] != mover {
		t.Fatalf("destination does not hold the mover")
	}
}

func TestTurnAlternates(t *testing.T) {
	b, _ := newStartBoard(t)
	moves := [][2]string{
		{"E2", "E4"},
		{"E7", "E5"},
		{"G1", "F3"},
		{"B8", "C6"},
		{"F1", "C4"},
	}
	for _, m := range moves {
		before := b.CurrentPlayer()
		click(b, m[0])
		if sel := b.Selection(); sel == nil || sel.Color() != b.CurrentPlayer() {
			t.Fatalf("selection invariant broken after clicking %s", m[0])
		}
		click(b, m[1])
		if b.CurrentPlayer() != before.Opposite() {
			t.Fatalf("after %s-%s expected %s to move, got %s", m[0], m[1], before.Opposite(), b.CurrentPlayer())
		}
	}

	// a rejected move keeps the turn
	before := b.CurrentPlayer()
	click(b, "D7")
	click(b, "D4")
	if b.CurrentPlayer() != before {
		t.Fatalf("failed move switched the turn")
	}
}

func TestCapturedPieceCannotBeSelected(t *testing.T) {
	b, _ := newStartBoard(t)
	for _, m := range [][2]string{{"E2", "E4"}, {"D7", "D5"}, {"E4", "D5"}} {
		click(b, m[0])
		click(b, m[1])
	}
	if got := b.Registry(PlayerColorBlack).Size(); got != 15 {
		t.Fatalf("black registry size = %d, want 15", got)
	}
	occupant := b.PieceAt(sq("D5"))
	if occupant == nil || occupant.Color() != PlayerColorWhite {
		t.Fatalf("expected the white pawn on D5")
	}

	// black tries to select what used to be its pawn
	click(b, "D5")
	if b.Selection() != nil {
		t.Fatalf("black must not select a white piece")
	}
}

func TestSwitchPlayerHidesInvalidMove(t *testing.T) {
	b, rec := newStartBoard(t)
	click(b, "E7")
	if !b.InvalidMoveShown() {
		t.Fatalf("expected indicator to be visible")
	}
	click(b, "E2")
	click(b, "E4")
	if b.InvalidMoveShown() {
		t.Fatalf("turn switch must hide the indicator")
	}
	if rec.count("dismissed") != 1 {
		t.Fatalf("expected one dismiss notification, got %d", rec.count("dismissed"))
	}
}
