// Package catalog adapts catalog data to the prerequisite compiler: it loads
// course tables, pulls requisite clauses out of course descriptions and reads
// already-fetched catalog pages.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"golang.org/x/net/html"

	"github.com/brequin/brequin/prereq/requisite"
)

type CourseEntry struct {
	Code          string
	Id            int64
	Description   string
	Prerequisites []string
}

type courseRecord struct {
	Id            int64    `json:"id"`
	Description   string   `json:"description"`
	Prerequisites []string `json:"prerequisites"`
}

// LoadCourses reads a course data file keyed by course code:
//
//	{"CS 3345": {"id": 42, "prerequisites": ["Prerequisite: CS 2305"]}}
//
// Entries are returned sorted by code.
func LoadCourses(r io.Reader) ([]CourseEntry, error) {
	var records map[string]courseRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode course data: %w", err)
	}

	entries := make([]CourseEntry, 0, len(records))
	for code, record := range records {
		prerequisites := make([]string, 0, len(record.Prerequisites))
		for _, prerequisite := range record.Prerequisites {
			prerequisites = append(prerequisites, html.UnescapeString(prerequisite))
		}

		entries = append(entries, CourseEntry{
			Code:          code,
			Id:            record.Id,
			Description:   html.UnescapeString(record.Description),
			Prerequisites: prerequisites,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Code < entries[j].Code })

	return entries, nil
}

func Table(entries []CourseEntry) requisite.CourseTable {
	table := make(requisite.CourseTable, len(entries))
	for _, entry := range entries {
		table[entry.Code] = requisite.Course{ID: requisite.CourseID(entry.Id), Code: entry.Code}
	}
	return table
}

// Requisites returns the entry's stored requisite strings, falling back to
// clauses found in its description.
func (e CourseEntry) Requisites() []Requisite {
	if len(e.Prerequisites) == 0 {
		return ExtractRequisites(e.Description)
	}

	var requisites []Requisite
	for _, prerequisite := range e.Prerequisites {
		if r, ok := SplitRequisite(prerequisite); ok {
			requisites = append(requisites, r)
		}
	}
	return requisites
}
