// Package requisite compiles prerequisite expressions such as
// "(CE 3311 or EE 3311) and RHET 1302 with GRADE_C" into requirement trees
// of course identifiers and minimum grades.
//
// "with" binds tighter than "and" and "or", which share one precedence
// level. Compile is safe for concurrent use as long as the course table is
// not modified while it runs.
package requisite

// Compile parses and normalizes raw against table. It always returns a
// requirement; input that does not parse yields a ParseFailure.
func Compile(raw string, table CourseTable) Requirement {
	node, err := Parse(raw)
	if err != nil {
		return ParseFailure{Message: ParseFailureMessage, Cause: err}
	}

	return Normalize(node, table, GradeCredit)
}
