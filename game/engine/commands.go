package engine

// CommandKind selects what a Command does
type CommandKind int

const (
	CommandAdd CommandKind = iota
	CommandRemove
	CommandMove
	CommandRollAndMove
)

// String returns the command name
func (k CommandKind) String() string {
	switch k {
	case CommandAdd:
		return "add"
	case CommandRemove:
		return "remove"
	case CommandMove:
		return "move"
	case CommandRollAndMove:
		return "roll_and_move"
	default:
		return "unknown"
	}
}

// Command is one request to the game. Dice is only read by CommandMove.
type Command[Pl, R any] struct {
	Kind   CommandKind
	Player Pl
	Dice   [2]R
}

// Add registers a player at the start square
func Add[Pl, R any](player Pl) Command[Pl, R] {
	return Command[Pl, R]{Kind: CommandAdd, Player: player}
}

// Remove unregisters a player
func Remove[Pl, R any](player Pl) Command[Pl, R] {
	return Command[Pl, R]{Kind: CommandRemove, Player: player}
}

// Move moves a player with explicit dice
func Move[Pl, R any](player Pl, first, second R) Command[Pl, R] {
	return Command[Pl, R]{Kind: CommandMove, Player: player, Dice: [2]R{first, second}}
}

// RollAndMove moves a player with dice drawn from the game's dice source
func RollAndMove[Pl, R any](player Pl) Command[Pl, R] {
	return Command[Pl, R]{Kind: CommandRollAndMove, Player: player}
}
