package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"labbot/domain/mode"
	"labbot/presentation"
	"labbot/presentation/mode_selection"
	"labbot/settings/client_configuration"
)

func main() {
	appCtx, appCtxCancel := context.WithCancel(context.Background())
	defer appCtxCancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupt received. Shutting down...")
		appCtxCancel()
	}()

	am := mode_selection.NewArgsAppMode(os.Args)
	selectedMode, selectedModeErr := am.Mode()
	if selectedModeErr != nil {
		fmt.Println(selectedModeErr)
		presentation.PrintUsage()
		os.Exit(1)
	}

	if selectedMode == mode.Help {
		presentation.PrintUsage()
		return
	}

	deps := presentation.NewClientDependencies(client_configuration.NewManager())
	if initErr := deps.Initialize(); initErr != nil {
		log.Fatal(initErr)
	}
	defer deps.Teardown()

	switch selectedMode {
	case mode.Keygen:
		if err := presentation.NewKeygenRunner(deps).Run(); err != nil {
			log.Fatal(err)
		}
	case mode.Toggle:
		if err := presentation.NewToggleRunner(deps).Run(appCtx); err != nil {
			log.Fatal(err)
		}
	}
}
