package mode

import "fmt"

// InvalidExecPathProvided is returned when the argument vector is missing
// the binary path expected at index zero
type InvalidExecPathProvided struct {
}

func NewInvalidExecPathProvided() InvalidExecPathProvided {
	return InvalidExecPathProvided{}
}

func (i InvalidExecPathProvided) Error() string {
	return "missing execution binary path as first argument"
}

// InvalidModeProvided is returned when an unrecognized argument was provided when running the app
type InvalidModeProvided struct {
	arg string
}

func NewInvalidModeProvided(arg string) InvalidModeProvided {
	return InvalidModeProvided{
		arg: arg,
	}
}

func (i InvalidModeProvided) Error() string {
	if i.arg == "" {
		return "empty string is not a valid mode"
	}
	return fmt.Sprintf("%s is not a valid mode", i.arg)
}
