package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// topLevelTable matches an unindented, non-array table header without dots,
// e.g. "[layout]" but not "[[layout.panes]]" or "  [appearance.palette]".
var topLevelTable = regexp.MustCompile(`^\[([^.\[\]]+)\]\s*$`)

// WriteConfigOrdered writes the configuration to disk with consistent ordering.
// Fields within a table keep their definition order; top-level tables are
// sorted alphabetically. Nested tables and arrays of tables stay under the
// table that owns them, since moving them would reattach them elsewhere.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := MarshalOrdered(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MarshalOrdered encodes cfg as TOML the way WriteConfigOrdered writes it.
func MarshalOrdered(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

// sortTOMLSections sorts the top-level tables of TOML content alphabetically.
// Keys before the first table stay first.
func sortTOMLSections(content string) string {
	type section struct {
		header string
		lines  []string
	}

	var sections []section
	var current *section
	var preamble []string

	for _, line := range strings.Split(content, "\n") {
		if match := topLevelTable.FindStringSubmatch(line); match != nil {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &section{header: match[1], lines: []string{line}}
			continue
		}
		if current != nil {
			current.lines = append(current.lines, line)
		} else {
			preamble = append(preamble, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	var result strings.Builder
	writeBlock := func(lines []string) {
		block := strings.TrimRight(strings.Join(lines, "\n"), "\n")
		if block == "" {
			return
		}
		if result.Len() > 0 {
			result.WriteString("\n\n")
		}
		result.WriteString(block)
	}

	writeBlock(preamble)
	for _, sec := range sections {
		writeBlock(sec.lines)
	}

	if result.Len() == 0 {
		return ""
	}
	return result.String() + "\n"
}
