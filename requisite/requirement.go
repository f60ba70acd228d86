package requisite

import "encoding/json"

// ParseFailureMessage is reported for every expression that does not parse.
const ParseFailureMessage = "Prerequisites can not be parsed"

type CourseID int64

type Course struct {
	ID   CourseID
	Code string
}

// CourseTable maps a course code such as "CS 3345" to its course. It is only
// read during compilation.
type CourseTable map[string]Course

func (t CourseTable) Lookup(code string) (Course, bool) {
	course, ok := t[code]
	return course, ok
}

type Operator string

const (
	OperatorAnd Operator = "and"
	OperatorOr  Operator = "or"
)

// Requirement is a normalized requirement tree node: one of
// CourseRequirement, BooleanGroup, Unresolved or ParseFailure.
type Requirement interface {
	json.Marshaler
	requirement()
}

type CourseRequirement struct {
	CourseID CourseID
	MinGrade Grade
}

// BooleanGroup is an n-ary combinator with at least two children.
type BooleanGroup struct {
	Operator Operator
	Children []Requirement
}

// Unresolved is a token that names nothing in the course table, kept verbatim.
type Unresolved struct {
	RawText string
}

// ParseFailure is returned by Compile for input that is not an expression.
// Cause is kept for logging and never serialized.
type ParseFailure struct {
	Message string
	Cause   error
}

func (CourseRequirement) requirement() {}
func (BooleanGroup) requirement()      {}
func (Unresolved) requirement()        {}
func (ParseFailure) requirement()      {}

type courseJSON struct {
	Type  string   `json:"type"`
	ID    CourseID `json:"id"`
	Grade Grade    `json:"grade"`
}

type operatorJSON struct {
	Type     string        `json:"type"`
	ID       Operator      `json:"id"`
	Children []Requirement `json:"children"`
}

type groupJSON struct {
	Node operatorJSON `json:"node"`
}

type messageJSON struct {
	Message string `json:"message"`
}

func (c CourseRequirement) MarshalJSON() ([]byte, error) {
	grade := c.MinGrade
	if grade == "" {
		grade = GradeCredit
	}
	return json.Marshal(courseJSON{Type: "course", ID: c.CourseID, Grade: grade})
}

func (g BooleanGroup) MarshalJSON() ([]byte, error) {
	children := g.Children
	if children == nil {
		children = []Requirement{}
	}
	return json.Marshal(groupJSON{Node: operatorJSON{Type: "op", ID: g.Operator, Children: children}})
}

func (u Unresolved) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.RawText)
}

func (f ParseFailure) MarshalJSON() ([]byte, error) {
	return json.Marshal(messageJSON{Message: f.Message})
}
