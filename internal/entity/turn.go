package entity

const (
	PlayerX = "X"
	PlayerO = "O"
)

// Turn - whose move is next. Only TurnPlayer and TurnBot exist.
type Turn int

const (
	TurnPlayer Turn = iota
	TurnBot
)

// Next - returns the other side.
func (that Turn) Next() Turn {
	switch that {
	case TurnPlayer:
		return TurnBot
	case TurnBot:
		return TurnPlayer
	default:
		panic("unknown turn")
	}
}

// Marker - the claim symbol placed by this side.
func (that Turn) Marker() string {
	if that == TurnBot {
		return PlayerO
	}
	return PlayerX
}

func (that Turn) String() string {
	if that == TurnBot {
		return "bot"
	}
	return "player"
}
