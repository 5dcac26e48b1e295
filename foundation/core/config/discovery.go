// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of directories for charx.toml, charx.yaml
//              or charx.yml and loads the first match.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-06
//
// Change History:
// - 2025-11-06 v0.1.0: Initial implementation of file discovery

package config

import (
	"os"
	"path/filepath"
	"strings"

	charxerror "github.com/msto63/charx/foundation/core/error"
)

// DiscoveryOptions defines where Discover looks for a configuration file
type DiscoveryOptions struct {
	Paths      []string
	Filenames  []string
	Extensions []string
	EnvPrefix  string
	Required   bool
}

// DefaultDiscoveryOptions searches the working directory, ./config and
// the user's config directory for charx.{toml,yaml,yml}.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./config"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "charx"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"charx"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "CHARX",
	}
}

// Discover loads the first configuration file found. Without a match it
// returns an empty configuration, or a NOT_FOUND error when Required.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	path, found := FindConfigFile(options)
	if found {
		cfg, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: options.EnvPrefix})
		if err != nil {
			return nil, charxerror.Wrap(err, "found config file "+path+" but failed to load").
				WithOperation("config.Discover")
		}
		return cfg, nil
	}

	if options.Required {
		candidates := ListPossibleConfigFiles(options)
		return nil, charxerror.New("no configuration file found in: "+strings.Join(candidates, ", ")).
			WithCode(charxerror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", candidates)
	}
	return Empty(options.EnvPrefix), nil
}

// FindConfigFile returns the first existing candidate path
func FindConfigFile(options DiscoveryOptions) (string, bool) {
	for _, candidate := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// ListPossibleConfigFiles returns all candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}
