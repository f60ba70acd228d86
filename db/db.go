package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the part of *pgxpool.Pool the database reads through.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Database struct {
	Pool Querier
}

// CourseCode joins a subject area and catalog number the way prerequisite
// expressions spell courses, e.g. "CS 3345".
func CourseCode(subjectAreaCode, catalogNumber string) string {
	const codeTemplate = "%v %v"
	return fmt.Sprintf(codeTemplate, subjectAreaCode, catalogNumber)
}
