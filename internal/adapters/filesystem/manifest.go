// Package filesystem contains file-based adapters for manifest exchange.
package filesystem

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/example/curator/internal/ports/primary"
)

// Manifest is the YAML document written by curator export.
type Manifest struct {
	GeneratedAt string          `yaml:"generated_at"`
	Entries     []ManifestEntry `yaml:"entries"`
}

// ManifestEntry is one ordered entry of an exported manifest.
type ManifestEntry struct {
	Name      string `yaml:"name"`
	Priority  int    `yaml:"priority"`
	Separator bool   `yaml:"separator,omitempty"`
}

// WriteManifest writes the mod list as a YAML manifest at path.
func WriteManifest(path string, mods []*primary.Mod) error {
	manifest := Manifest{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, m := range mods {
		manifest.Entries = append(manifest.Entries, ManifestEntry{
			Name:      m.Name,
			Priority:  m.Priority,
			Separator: m.Separator,
		})
	}

	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}

// ReadNames reads an ordered name list from path. YAML manifests (written by
// curator export) and plain text files (one name per line, # comments) are
// both accepted; the result is always top-of-list first.
func ReadNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return namesFromManifest(data)
	}
	return namesFromLines(data), nil
}

func namesFromManifest(data []byte) ([]string, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	entries := make([]ManifestEntry, len(manifest.Entries))
	copy(entries, manifest.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority < entries[j].Priority
	})

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names, nil
}

func namesFromLines(data []byte) []string {
	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names
}
