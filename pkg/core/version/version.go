// ============================================================================
// charx - character-indexed string tools
// ============================================================================
//
// Package:     version
// Description: Central version information for the library and the CLI
// Author:      msto63
// Created:     2025-11-08
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Library is the version of the charx engine package
	Library = "0.1.0"

	// CLI is the version of the charx command
	CLI = "0.1.0"
)

// Set via -ldflags "-X github.com/msto63/charx/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info is the version report printed by "charx version"
type Info struct {
	Library   string `json:"library" yaml:"library"`
	CLI       string `json:"cli" yaml:"cli"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get collects the version information of the running binary
func Get() Info {
	return Info{
		Library:   Library,
		CLI:       CLI,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("charx v%s (library %s, commit %s, built %s)", i.CLI, i.Library, i.GitCommit, i.BuildDate)
}
