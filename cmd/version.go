package cmd

import "fmt"

// Version information (injected at build time via ldflags).
var (
	Version   = "development"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// runVersion prints build metadata.
func runVersion() {
	fmt.Printf("inkpad %s\n", Version)
	fmt.Printf("Build Time: %s\n", BuildTime)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
