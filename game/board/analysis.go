package board

import "github.com/wricardo/mcp-training/goosegame/game/engine"

// Move is a starting square and a two-dice distance
type Move struct {
	From     uint32 `json:"from"`
	Distance int    `json:"distance"`
}

// Analysis summarizes every move chain a board can produce
type Analysis struct {
	// LongestChain is the most hops any single roll takes to settle
	LongestChain int `json:"longest_chain"`
	// Longest is one move producing LongestChain
	Longest Move `json:"longest"`
	// Hops counts settled moves by the number of hops they took
	Hops map[int]int `json:"hops"`
	// Loops lists moves that keep landing on geese past MaxHops
	Loops []Move `json:"loops,omitempty"`
}

// Analyze plays every distance from every square short of the end and
// measures how long the resulting chains get
func (b *Board) Analyze() Analysis {
	analysis := Analysis{Hops: make(map[int]int)}
	limit := b.MaxHops()

	for from := uint32(0); from < b.End; from++ {
		for distance := MinDistance; distance <= MaxDistance; distance++ {
			hops, settled := b.chain(from, distance, limit)
			if !settled {
				analysis.Loops = append(analysis.Loops, Move{From: from, Distance: distance})
				continue
			}
			analysis.Hops[hops]++
			if hops > analysis.LongestChain {
				analysis.LongestChain = hops
				analysis.Longest = Move{From: from, Distance: distance}
			}
		}
	}

	return analysis
}

// chain counts the hops a move takes, giving up after limit hops
func (b *Board) chain(from uint32, distance, limit int) (int, bool) {
	square := b.At(from)
	for hop := 1; hop <= limit; hop++ {
		square = square.Advance(distance).To
		if square.Type() != engine.GooseSquare {
			return hop, true
		}
	}
	return limit, false
}
