package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brequin/brequin/prereq/requisite"
)

type fakeRows struct {
	values [][]any
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.values) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	return r.values[r.pos-1], nil
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.values[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d destinations for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		switch d := d.(type) {
		case *int64:
			*d = row[i].(int64)
		case *string:
			*d = row[i].(string)
		case **string:
			if row[i] == nil {
				*d = nil
			} else {
				value := row[i].(string)
				*d = &value
			}
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

type fakeQuerier struct {
	rows    *fakeRows
	err     error
	queries []string
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.queries = append(q.queries, sql)
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestListCourses(t *testing.T) {
	description := "Data structures. Prerequisite: CS 2305."
	rows := &fakeRows{values: [][]any{
		{int64(42), "CS", "3345", description},
		{int64(7), "RHET", "1302", nil},
	}}
	database := Database{Pool: &fakeQuerier{rows: rows}}

	courses, err := database.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.True(t, rows.closed)

	assert.Equal(t, "CS 3345", courses[0].Code())
	assert.Equal(t, description, FormatOptionalString(courses[0].Description))
	assert.Nil(t, courses[1].Description)
	assert.Equal(t, "", FormatOptionalString(courses[1].Description))

	assert.Equal(t, requisite.CourseTable{
		"CS 3345":   {ID: 42, Code: "CS 3345"},
		"RHET 1302": {ID: 7, Code: "RHET 1302"},
	}, CourseTable(courses))
}

func TestListCoursesErrors(t *testing.T) {
	queryErr := errors.New("connection refused")
	database := Database{Pool: &fakeQuerier{err: queryErr}}
	_, err := database.ListCourses(context.Background())
	assert.ErrorIs(t, err, queryErr)

	rowsErr := errors.New("conn closed")
	database = Database{Pool: &fakeQuerier{rows: &fakeRows{err: rowsErr}}}
	_, err = database.ListCourses(context.Background())
	assert.ErrorIs(t, err, rowsErr)
}

func TestListSubjectAreas(t *testing.T) {
	querier := &fakeQuerier{rows: &fakeRows{values: [][]any{
		{"CS", "Computer Science"},
		{"MATH", "Mathematics"},
	}}}
	database := Database{Pool: querier}

	subjectAreas, err := database.ListSubjectAreas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{listSubjectAreas}, querier.queries)
	assert.Equal(t, map[string]string{
		"Computer Science": "CS",
		"Mathematics":      "MATH",
	}, SubjectAreaNames(subjectAreas))
}
