package board

import (
	"errors"
	"fmt"
	"slices"

	"github.com/wricardo/mcp-training/goosegame/game/engine"
)

// Dice limits used to validate boards and rolls
const (
	DieSides    = 6
	MinDistance = 2
	MaxDistance = 2 * DieSides
)

var ErrInvalidBoard = errors.New("invalid board")

// Board describes a linear track from square 0 to End.
// Square 12 is always the bridge target.
type Board struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	End         uint32   `json:"end" yaml:"end"`
	Bridge      uint32   `json:"bridge" yaml:"bridge"`
	Geese       []uint32 `json:"geese" yaml:"geese"`
}

// Classic returns the reference 64-square board
func Classic() *Board {
	return &Board{
		Name:        "classic",
		Description: "Reference board: 63 squares, bridge on 6, geese on 5, 9, 14, 18, 23 and 27",
		End:         63,
		Bridge:      6,
		Geese:       []uint32{5, 9, 14, 18, 23, 27},
	}
}

// At returns the square with the given index
func (b *Board) At(index uint32) Square {
	return Square{board: b, index: index}
}

// Start returns the starting square
func (b *Board) Start() Square {
	return b.At(engine.StartIndex)
}

// MaxHops is the longest chain a valid board allows: one hop per goose plus the last
func (b *Board) MaxHops() int {
	return len(b.Geese) + 1
}

// Type classifies a square index
func (b *Board) Type(index uint32) engine.SquareType {
	switch {
	case index == b.End:
		return engine.EndSquare
	case index == b.Bridge:
		return engine.BridgeSquare
	case slices.Contains(b.Geese, index):
		return engine.GooseSquare
	default:
		return engine.NormalSquare
	}
}

// Validate checks the board is well formed and every move chain terminates
func (b *Board) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidBoard)
	}
	if b.End <= engine.BridgeTargetIndex {
		return fmt.Errorf("%w: end must be past the bridge target %d, got %d", ErrInvalidBoard, engine.BridgeTargetIndex, b.End)
	}
	if b.Bridge == 0 || b.Bridge >= b.End {
		return fmt.Errorf("%w: bridge must be between 1 and %d, got %d", ErrInvalidBoard, b.End-1, b.Bridge)
	}
	if b.Bridge == engine.BridgeTargetIndex {
		return fmt.Errorf("%w: bridge cannot be its own target %d", ErrInvalidBoard, engine.BridgeTargetIndex)
	}

	seen := make(map[uint32]bool, len(b.Geese))
	for _, g := range b.Geese {
		if g == 0 || g >= b.End {
			return fmt.Errorf("%w: goose square %d must be between 1 and %d", ErrInvalidBoard, g, b.End-1)
		}
		if g == b.Bridge {
			return fmt.Errorf("%w: goose square %d is also the bridge", ErrInvalidBoard, g)
		}
		if seen[g] {
			return fmt.Errorf("%w: goose square %d listed twice", ErrInvalidBoard, g)
		}
		seen[g] = true
	}

	analysis := b.Analyze()
	if len(analysis.Loops) > 0 {
		loop := analysis.Loops[0]
		return fmt.Errorf("%w: moving %d from square %d never settles (%d looping moves)",
			ErrInvalidBoard, loop.Distance, loop.From, len(analysis.Loops))
	}

	return nil
}
