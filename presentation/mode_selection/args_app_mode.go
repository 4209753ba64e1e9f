package mode_selection

import (
	"strings"

	"labbot/domain/mode"
)

type ArgsAppMode struct {
	arguments []string
}

func NewArgsAppMode(arguments []string) AppMode {
	return &ArgsAppMode{
		arguments: arguments,
	}
}

func (a *ArgsAppMode) Mode() (mode.Mode, error) {
	if len(a.arguments) == 0 {
		return mode.Unknown, mode.NewInvalidExecPathProvided()
	}

	// no arguments: interactive toggle loop
	if len(a.arguments) < 2 {
		return mode.Toggle, nil
	}

	modeArgument := strings.TrimSpace(strings.ToLower(a.arguments[1]))
	switch modeArgument {
	case "--keygen":
		return mode.Keygen, nil
	case "-h", "--help":
		return mode.Help, nil
	default:
		return mode.Unknown, mode.NewInvalidModeProvided(modeArgument)
	}
}
