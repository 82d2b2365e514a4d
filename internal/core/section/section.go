// Package section contains the pure logic for grouping an ordered snapshot
// into sections delimited by separator entries, and for planning the
// numerical indexes that preserve a curated order across list rebuilds.
package section

import (
	"strings"

	"github.com/example/curator/internal/core/batch"
	"github.com/example/curator/internal/core/tags"
)

// Unsectioned is the synthetic section for entries above the topmost separator.
const Unsectioned = "Unsectioned"

const separatorSuffix = "_separator"

// Organization describes how a snapshot is grouped by its separators.
type Organization struct {
	// Sections maps a section name to the IDs of its member entries,
	// highest priority first.
	Sections map[string][]string
	// Order lists section names from the bottom of the list upward.
	Order []string
	// SeparatorOf maps a section name to the ID of its separator entry.
	SeparatorOf map[string]string
}

// IsSeparator reports whether an entry delimits a section.
func IsSeparator(e batch.Entry) bool {
	return e.Separator || strings.HasSuffix(e.Name, separatorSuffix)
}

// SectionName derives the section name from its separator entry.
func SectionName(e batch.Entry) string {
	if strings.HasSuffix(e.Name, separatorSuffix) {
		return strings.TrimSuffix(e.Name, separatorSuffix)
	}
	return tags.Strip(e.Name)
}

// Analyze groups the snapshot into separator-delimited sections.
// The snapshot is walked from highest priority downward; entries buffered
// before a separator belong to that separator's section, and anything left
// over lands in the Unsectioned bucket.
func Analyze(snapshot batch.Snapshot) Organization {
	org := Organization{
		Sections:    make(map[string][]string),
		SeparatorOf: make(map[string]string),
	}

	var buffer []string
	for i := len(snapshot) - 1; i >= 0; i-- {
		entry := snapshot[i]

		if IsSeparator(entry) {
			name := SectionName(entry)
			if len(buffer) > 0 {
				org.Sections[name] = buffer
				buffer = nil
			}
			if _, seen := org.SeparatorOf[name]; !seen {
				org.Order = append(org.Order, name)
				org.SeparatorOf[name] = entry.ID
			}
			continue
		}

		buffer = append(buffer, entry.ID)
	}

	if len(buffer) > 0 {
		org.Sections[Unsectioned] = buffer
		org.Order = append(org.Order, Unsectioned)
	}

	return org
}

// PlanIndexes computes the index tag value for every protected entry in the
// snapshot. Sections are numbered 1..n in display order (top of the list
// first); members are numbered 1..m from the top of their section, and the
// separator itself gets position 0.
//
// The returned map is keyed by entry ID; entries without a NoDelete tag are
// absent. The plan reads only the snapshot, never the store.
func PlanIndexes(snapshot batch.Snapshot) map[string]string {
	org := Analyze(snapshot)

	// Display order is the reverse of discovery order.
	sectionNumber := make(map[string]int, len(org.Order))
	for i := len(org.Order) - 1; i >= 0; i-- {
		sectionNumber[org.Order[i]] = len(org.Order) - i
	}

	sectionOfEntry := make(map[string]string)
	positionOfEntry := make(map[string]int)
	for name, members := range org.Sections {
		for i, id := range members {
			sectionOfEntry[id] = name
			positionOfEntry[id] = len(members) - i
		}
	}
	for name, sepID := range org.SeparatorOf {
		sectionOfEntry[sepID] = name
		positionOfEntry[sepID] = 0
	}

	plan := make(map[string]string)
	for _, entry := range snapshot {
		if !tags.Parse(entry.Name).NoDelete {
			continue
		}
		name, ok := sectionOfEntry[entry.ID]
		if !ok {
			continue
		}
		plan[entry.ID] = tags.FormatIndex(sectionNumber[name], positionOfEntry[entry.ID])
	}

	return plan
}
