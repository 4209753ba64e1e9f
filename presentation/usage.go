package presentation

import (
	"fmt"

	"labbot/domain/app"
)

// PrintUsage writes the command-line help to stdout.
func PrintUsage() {
	fmt.Printf("%s usage: %s [--keygen]\n", app.Name, app.Name)
	fmt.Println()
	fmt.Println("The following files are used during operation:")
	fmt.Println("\tconfiguration\t[labbot_configuration.json, or $LABBOT_CONFIG]")
	fmt.Println("\tkey file\t[psk.b64]")
	fmt.Println("\tlog file\t[client.log]")
	fmt.Println("\tpinned CA\t[pinned.pem]")
	fmt.Println()
	fmt.Println("The --keygen option requests a new pre-shared key from the controller")
	fmt.Println()
	fmt.Println("Use any key to toggle open/close, or control-c to quit")
}
