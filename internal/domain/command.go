package domain

import "strings"

// Command is a recognised user action
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandNext
	CommandDeleteWord
	CommandAddWord
)

func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandNext:
		return "next"
	case CommandDeleteWord:
		return "delete_word"
	case CommandAddWord:
		return "add_word"
	default:
		return "none"
	}
}

// Labels are the display strings of the keyboard action buttons
type Labels struct {
	AddWord    string
	DeleteWord string
	Next       string
}

// Resolve maps message text to a command by exact match.
// Slash commands may carry a bot mention or a payload.
func (l Labels) Resolve(text string) Command {
	if strings.HasPrefix(text, "/") {
		name := strings.Fields(text)[0]
		if i := strings.IndexByte(name, '@'); i >= 0 {
			name = name[:i]
		}
		switch name {
		case "/start", "/cards":
			return CommandStart
		}
		return CommandNone
	}

	switch text {
	case l.Next:
		return CommandNext
	case l.DeleteWord:
		return CommandDeleteWord
	case l.AddWord:
		return CommandAddWord
	}
	return CommandNone
}

// Buttons returns the action labels in keyboard order
func (l Labels) Buttons() []string {
	return []string{l.Next, l.AddWord, l.DeleteWord}
}
