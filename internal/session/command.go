package session

import (
	"errors"
	"strings"
)

// Command is one token of the fixed browse vocabulary.
type Command string

// Browse commands. Which of these are legal at any moment depends on
// the session mode and page position; see Session.LegalCommands.
const (
	CommandNext     Command = "n"
	CommandPrevious Command = "p"
	CommandSave     Command = "s"
	CommandUnsave   Command = "u"
	CommandEat      Command = "e"
	CommandMenu     Command = "m"
)

// ErrUnknownCommand is returned by ParseCommand for any input outside
// the fixed vocabulary. Callers treat it as a recoverable user error.
var ErrUnknownCommand = errors.New("unknown command")

// ParseCommand maps free-form user input to a Command. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseCommand(input string) (Command, error) {
	switch Command(strings.ToLower(strings.TrimSpace(input))) {
	case CommandNext:
		return CommandNext, nil
	case CommandPrevious:
		return CommandPrevious, nil
	case CommandSave:
		return CommandSave, nil
	case CommandUnsave:
		return CommandUnsave, nil
	case CommandEat:
		return CommandEat, nil
	case CommandMenu:
		return CommandMenu, nil
	default:
		return "", ErrUnknownCommand
	}
}
