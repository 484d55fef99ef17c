package game

// Channel tells adapters what kind of text they are being sent.
type Channel int

const (
	ChannelMessage Channel = iota
	ChannelBoard
	ChannelPrompt
)

func (c Channel) String() string {
	switch c {
	case ChannelBoard:
		return "board"
	case ChannelPrompt:
		return "prompt"
	}
	return "message"
}

// Player is anything that can sit at the table. Choose returns the index of
// the selected option; an error means the player cannot answer and a safe
// default is used instead.
type Player interface {
	Name() string
	Choose(prompt string, options []string) (int, error)
	Write(message string, channel Channel)
}
