package catalog

import (
	"bytes"
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/brequin/brequin/prereq/requisite"
)

type Kind string

const (
	KindPrerequisite              Kind = "Prerequisites"
	KindCorequisite               Kind = "Corequisites"
	KindPrerequisiteOrCorequisite Kind = "Prerequisites or Corequisites"
	KindRecommendedCorequisite    Kind = "Recommended Corequisites"
)

type Requisite struct {
	Kind Kind
	Text string
}

var requisitePattern = regexp.MustCompile(`(Recommended Corequisites?|Prerequisites? or Corequisites?|Prerequisites?|Corequisites?): ([^.]*)\.?`)

var gradePattern = regexp.MustCompile(`with a (?:minimum )?grade (?:of )?([ABC]-?)(?: or (?:higher|better))?`)

func parseKind(label string) (Kind, bool) {
	label = strings.TrimSpace(label)
	switch {
	case strings.HasPrefix(label, "Recommended Corequisite"):
		return KindRecommendedCorequisite, true
	case strings.HasPrefix(label, "Prerequisite") && strings.Contains(label, " or Corequisite"):
		return KindPrerequisiteOrCorequisite, true
	case strings.HasPrefix(label, "Prerequisite"):
		return KindPrerequisite, true
	case strings.HasPrefix(label, "Corequisite"):
		return KindCorequisite, true
	}
	return "", false
}

// ExtractRequisites finds the requisite clauses of a course description in
// the order they appear. Each clause runs to the next period.
func ExtractRequisites(description string) []Requisite {
	var requisites []Requisite
	for _, match := range requisitePattern.FindAllStringSubmatch(description, -1) {
		kind, ok := parseKind(match[1])
		if !ok {
			continue
		}
		requisites = append(requisites, Requisite{Kind: kind, Text: strings.TrimSpace(match[2])})
	}
	return requisites
}

// SplitRequisite parses a stored clause such as "Prerequisite: CS 1337".
func SplitRequisite(s string) (Requisite, bool) {
	label, text, found := strings.Cut(s, ": ")
	if !found {
		return Requisite{}, false
	}
	kind, ok := parseKind(label)
	if !ok {
		return Requisite{}, false
	}
	return Requisite{Kind: kind, Text: strings.TrimSpace(text)}, true
}

// RewriteGrades turns catalog phrasing such as "with a minimum grade of C or
// better" into the "with GRADE_C" qualifier.
func RewriteGrades(text string) string {
	return gradePattern.ReplaceAllString(text, "with GRADE_$1")
}

// AbbreviateSubjects replaces subject area names followed by a catalog number
// with the subject code, e.g. "Mathematics 2413" becomes "MATH 2413".
func AbbreviateSubjects(text string, subjectAreaNameCodeMap map[string]string) string {
	names := make([]string, 0, len(subjectAreaNameCodeMap))
	for name := range subjectAreaNameCodeMap {
		names = append(names, name)
	}
	// Longest first so "Applied Mathematics" is not read as "Mathematics".
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })

	for _, name := range names {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + ` ([0-9])`)
		text = re.ReplaceAllString(text, subjectAreaNameCodeMap[name]+" $1")
	}
	return text
}

type CompiledRequisite struct {
	Kind        Kind
	Requirement requisite.Requirement
}

func (c CompiledRequisite) MarshalJSON() ([]byte, error) {
	requirement, err := json.Marshal(c.Requirement)
	if err != nil {
		return nil, err
	}
	kind, err := json.Marshal(c.Kind)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	buffer.WriteByte('{')
	buffer.Write(kind)
	buffer.WriteByte(':')
	buffer.Write(requirement)
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// CompileRequisites compiles each clause against table after rewriting
// catalog grade phrasing.
func CompileRequisites(requisites []Requisite, table requisite.CourseTable) []CompiledRequisite {
	compiled := make([]CompiledRequisite, 0, len(requisites))
	for _, r := range requisites {
		compiled = append(compiled, CompiledRequisite{
			Kind:        r.Kind,
			Requirement: requisite.Compile(RewriteGrades(r.Text), table),
		})
	}
	return compiled
}
