package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// AgentCommand is the external code-generation agent binary.
	AgentCommand string `json:"agent_command"`

	// AgentTimeoutSecs bounds a single agent invocation. On timeout the
	// call fails cleanly with no retry.
	AgentTimeoutSecs int `json:"agent_timeout_secs"`

	// ProjectKeyFiles is the allow-list of project-relative paths the
	// collector reads into every context snapshot.
	ProjectKeyFiles []string `json:"project_key_files,omitempty"`

	// TreeExcludes lists directory names excluded from the rendered
	// workspace tree (version control, dependency caches).
	TreeExcludes []string `json:"tree_excludes,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from
	// registration. Unknown names are ignored at registration time.
	DisabledTools []string `json:"disabled_tools,omitempty"`

	// WebBind and WebPort configure the local workspace viewer.
	WebBind string `json:"web_bind,omitempty"`
	WebPort int    `json:"web_port,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		AgentCommand:     "claude-code",
		AgentTimeoutSecs: 120,
		ProjectKeyFiles:  []string{"package.json", "src/App.tsx", "src/index.tsx", "README.md"},
		TreeExcludes:     []string{"node_modules", ".git"},
		WebBind:          "127.0.0.1",
		WebPort:          7483,
	}
}

// Load loads configuration from baseDir/config.json, merged over defaults.
// Returns default config if the file doesn't exist. The baseDir parameter
// allows tests to use t.TempDir() instead of a real workspace state dir.
func Load(baseDir string) (*Config, error) {
	overlay, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), overlay), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge combines base and overlay configs. Overlay values take precedence
// for scalars; list values replace wholesale when set (a narrower key-file
// allow-list must be able to shrink the default), except DisabledTools,
// which merges and deduplicates.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.AgentCommand = overlay.AgentCommand
	if result.AgentCommand == "" {
		result.AgentCommand = base.AgentCommand
	}

	result.AgentTimeoutSecs = overlay.AgentTimeoutSecs
	if result.AgentTimeoutSecs == 0 {
		result.AgentTimeoutSecs = base.AgentTimeoutSecs
	}

	result.WebBind = overlay.WebBind
	if result.WebBind == "" {
		result.WebBind = base.WebBind
	}

	result.WebPort = overlay.WebPort
	if result.WebPort == 0 {
		result.WebPort = base.WebPort
	}

	result.ProjectKeyFiles = overlay.ProjectKeyFiles
	if result.ProjectKeyFiles == nil {
		result.ProjectKeyFiles = base.ProjectKeyFiles
	}

	result.TreeExcludes = overlay.TreeExcludes
	if result.TreeExcludes == nil {
		result.TreeExcludes = base.TreeExcludes
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range append(append([]string{}, a...), b...) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
