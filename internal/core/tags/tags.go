// Package tags contains the pure name algebra for curated mod names.
// A curated name carries bracketed tags in canonical order ahead of the
// clean name: [NoDelete] [NNN.NNNNN] [custom...] Clean Name.
package tags

import (
	"fmt"
	"regexp"
	"strings"
)

// NoDelete is the protection tag that marks an entry as preserved.
const NoDelete = "NoDelete"

var (
	leadingTags = regexp.MustCompile(`^(\[[^\]]+\]\s*)+`)
	singleTag   = regexp.MustCompile(`\[([^\]]+)\]`)
	indexTag    = regexp.MustCompile(`^[0-9]{3}\.[0-9]{5}$`)
	inlineIndex = regexp.MustCompile(`\s*\[[0-9]{3}\.[0-9]{5}\]\s*`)
)

// Info is the parsed structure of a curated name.
type Info struct {
	NoDelete  bool
	Index     string // "NNN.NNNNN" or empty
	Custom    []string
	CleanName string
}

// Parse splits a name into its leading tags and clean remainder.
// Names without leading tags parse to a bare Info with CleanName set.
func Parse(name string) Info {
	info := Info{CleanName: name}

	loc := leadingTags.FindString(name)
	if loc == "" {
		return info
	}
	info.CleanName = strings.TrimSpace(name[len(loc):])

	for _, m := range singleTag.FindAllStringSubmatch(loc, -1) {
		tag := m[1]
		switch {
		case tag == NoDelete:
			info.NoDelete = true
		case indexTag.MatchString(tag):
			info.Index = tag
		default:
			info.Custom = append(info.Custom, tag)
		}
	}

	return info
}

// Build assembles a curated name in canonical tag order.
func Build(info Info) string {
	var parts []string

	if info.NoDelete {
		parts = append(parts, "["+NoDelete+"]")
	}
	if info.Index != "" {
		parts = append(parts, "["+info.Index+"]")
	}
	for _, tag := range info.Custom {
		parts = append(parts, "["+tag+"]")
	}

	if len(parts) == 0 {
		return info.CleanName
	}
	return strings.TrimSpace(strings.Join(parts, " ") + " " + info.CleanName)
}

// Strip removes all leading bracketed tags from a name.
func Strip(name string) string {
	return strings.TrimSpace(leadingTags.ReplaceAllString(name, ""))
}

// StripIndex removes a numerical index tag while preserving all other tags.
// Only the exact NNN.NNNNN format is removed; version-like tags such as
// [v1.2] are left alone.
func StripIndex(name string) string {
	return strings.TrimSpace(inlineIndex.ReplaceAllString(name, " "))
}

// FormatIndex renders a section/position pair as an index tag value.
func FormatIndex(section, position int) string {
	return fmt.Sprintf("%03d.%05d", section, position)
}

// IsIndex reports whether a tag value is a numerical index.
func IsIndex(tag string) bool {
	return indexTag.MatchString(tag)
}
