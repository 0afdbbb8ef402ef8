package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is looked up in the workspace root.
const SettingsFileName = ".yojana.yaml"

// Settings are optional per-project overrides, committed alongside the code
// they describe (unlike Config, which is per-user and holds credentials).
type Settings struct {
	// Provider overrides the enabled provider from the user config.
	Provider string `yaml:"provider,omitempty"`
	// Model overrides the provider's default model.
	Model string `yaml:"model,omitempty"`
	// Exclude holds doublestar globs matched against relative paths,
	// e.g. "generated/**" or "**/*.pb.go".
	Exclude []string `yaml:"exclude,omitempty"`
	// Extensions extends the built-in source-file extension allowlist.
	Extensions []string `yaml:"extensions,omitempty"`
}

// LoadSettings reads <root>/.yojana.yaml. A missing file yields empty
// settings; a malformed one is an error, since silently ignoring it would
// feed the planner a different view of the tree than the user expects.
func LoadSettings(root string) (*Settings, error) {
	data, err := os.ReadFile(filepath.Join(root, SettingsFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read project settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SettingsFileName, err)
	}
	return &s, nil
}
