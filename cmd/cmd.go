// Package cmd provides CLI commands for the Inkpad notes backend.
//
// Commands:
//   - serve: HTTP API server
//   - migrate: apply pending database migrations and exit
//
// The serve command handles signals and shuts down gracefully via
// context cancellation.
package cmd

import (
	"fmt"
	"os"
)

// Execute is the main entry point for the inkpad CLI.
func Execute() error {
	if len(os.Args) < 2 {
		runHelp()
		return nil
	}

	switch os.Args[1] {
	case "serve":
		return runServe()
	case "migrate":
		return runMigrate()
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("Inkpad - note-taking backend")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  inkpad serve [addr] Start HTTP API server (default: 127.0.0.1:8080)")
	fmt.Println("  inkpad migrate      Apply pending database migrations")
	fmt.Println("  inkpad --version    Show version information")
	fmt.Println("  inkpad --help       Show this help")
}
