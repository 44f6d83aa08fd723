package board

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/wricardo/mcp-training/goosegame/game/engine"
)

// Square is a position on a Board. Squares are obtained from Board.At and
// compare equal when they share a board and an index.
type Square struct {
	board *Board
	index uint32
}

// Index returns the raw track index
func (s Square) Index() uint32 {
	return s.index
}

// Advance moves the square forward by distance, bouncing back off the end square.
//
// A bounce comes to rest on end*2 - index - distance + 1. Results below the
// start square are clamped to it; Validate guarantees this cannot happen for
// two-dice distances.
func (s Square) Advance(distance int) engine.Step[Square] {
	target := int(s.index) + distance
	end := int(s.board.End)

	if target > end {
		back := end*2 - int(s.index) - distance + 1
		if back < 0 {
			back = 0
		}
		return engine.Bounce(s.board.At(s.board.End), s.board.At(uint32(back)))
	}
	if target < 0 {
		target = 0
	}

	return engine.Landed(s.board.At(uint32(target)))
}

// Type classifies the square on its board
func (s Square) Type() engine.SquareType {
	return s.board.Type(s.index)
}

// Name is "Start" for the first square and the index otherwise
func (s Square) Name() string {
	if s.index == engine.StartIndex {
		return "Start"
	}
	return strconv.FormatUint(uint64(s.index), 10)
}

// Label is Name followed by the square's feature, e.g. "6, The Bridge"
func (s Square) Label() string {
	switch s.Type() {
	case engine.BridgeSquare:
		return s.Name() + ", The Bridge"
	case engine.GooseSquare:
		return s.Name() + ", The Goose"
	default:
		return s.Name()
	}
}

// String renders the index
func (s Square) String() string {
	return strconv.FormatUint(uint64(s.index), 10)
}

// MarshalJSON encodes the square as its index
func (s Square) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.index)
}

// GoString keeps test failure output readable
func (s Square) GoString() string {
	return fmt.Sprintf("board.Square(%d)", s.index)
}
