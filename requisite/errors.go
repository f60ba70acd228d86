package requisite

import "fmt"

// GrammarError reports input that does not conform to the prerequisite
// grammar. Text is the offending substring and Pos its byte offset.
type GrammarError struct {
	Text   string
	Pos    int
	Reason string
}

func (e *GrammarError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%v at offset %d", e.Reason, e.Pos)
	}
	return fmt.Sprintf("%v %q at offset %d", e.Reason, e.Text, e.Pos)
}
