package main

import (
	"fmt"
	"os"

	"github.com/npgrosser/houston/cmd/hu"
	"github.com/npgrosser/houston/pkg/ui"
)

func main() {
	rootCmd := hu.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		msg := fmt.Sprintf("Error: %v", err)
		if ui.DetectFormat(os.Stderr) == ui.FormatTerminal {
			msg = ui.ErrorStyle.Render(msg)
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}
