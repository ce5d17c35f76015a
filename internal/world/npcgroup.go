package world

// MessageColor is the text colour of a dialogue box.
type MessageColor uint8

const (
	MessageBlack MessageColor = iota
	MessageWhite
	MessageRed
	MessageBlue
)

// String returns a human-readable colour name.
func (c MessageColor) String() string {
	switch c {
	case MessageBlack:
		return "black"
	case MessageWhite:
		return "white"
	case MessageRed:
		return "red"
	case MessageBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// MarshalText encodes the colour by name.
func (c MessageColor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// TrainerGroup is shared presentation for a class of trainers.
type TrainerGroup struct {
	// Name prefixes the trainer's own name, as in "Youngster Joey".
	Name  string
	Music MusicID
}

// NpcGroup is shared presentation for NPCs of the same kind.
type NpcGroup struct {
	Message MessageColor
	Trainer *TrainerGroup
}
