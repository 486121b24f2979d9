package core

// PlayerID identifies one of the two sides of the field.
// Player1 always owns the left edge, Player2 the right edge.
type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "Unknown"
	}
}

// Opponent returns the player on the other side of the field.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Valid reports whether p names one of the two players.
func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}
