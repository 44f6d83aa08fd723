package engine

// SquareType classifies a square on the track
type SquareType int

const (
	NormalSquare SquareType = iota
	GooseSquare
	BridgeSquare
	EndSquare
)

// Track indices the engine needs to build positions from
const (
	StartIndex        uint32 = 0
	BridgeTargetIndex uint32 = 12

	// DefaultMaxHops bounds a move chain when the track does not report its own limit
	DefaultMaxHops = 64
)

// String returns the square type name
func (t SquareType) String() string {
	switch t {
	case NormalSquare:
		return "normal"
	case GooseSquare:
		return "goose"
	case BridgeSquare:
		return "bridge"
	case EndSquare:
		return "end"
	default:
		return "unknown"
	}
}

// Roll is the value of a single die
type Roll interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Step is the result of advancing a position by a distance.
//
// To is where the piece comes to rest. When Bounced is set, Touched is the
// end square the piece reached before reflecting back; otherwise Touched
// equals To.
type Step[P any] struct {
	To      P
	Touched P
	Bounced bool
}

// Landed builds a step that stops exactly where the distance took it
func Landed[P any](to P) Step[P] {
	return Step[P]{To: to, Touched: to}
}

// Bounce builds a step that overshot the end square and came back to rest at to
func Bounce[P any](touched, to P) Step[P] {
	return Step[P]{To: to, Touched: touched, Bounced: true}
}

// Position is a square on the track. Values are compared with == to find
// players sharing a square.
type Position[P any, R Roll] interface {
	comparable
	Advance(distance R) Step[P]
	Type() SquareType
}

// Track builds positions from raw track indices
type Track[P any] interface {
	At(index uint32) P
}

// HopLimiter is implemented by tracks that know the longest legal move chain
type HopLimiter interface {
	MaxHops() int
}

// Dice produces one die value per call
type Dice[R Roll] interface {
	Roll() R
}
