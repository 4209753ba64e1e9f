package mode

type Mode int

const (
	Unknown Mode = iota
	// Toggle mode runs the interactive toggle loop
	Toggle
	// Keygen mode requests a new pre-shared key from the controller and exits
	Keygen
	// Help mode prints usage and exits
	Help
)
