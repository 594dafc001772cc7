package entity

// Tally counts finished rounds over a session.
type Tally struct {
	PlayerWins int
	BotWins    int
	Draws      int
}

func (that Tally) Rounds() int {
	return that.PlayerWins + that.BotWins + that.Draws
}
