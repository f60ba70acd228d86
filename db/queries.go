package db

import (
	"context"

	"github.com/brequin/brequin/prereq/requisite"
)

const listSubjectAreas = `SELECT code, name FROM subject_areas ORDER BY code`

const listCourses = `SELECT id, subject_area_code, catalog_number, description FROM courses ORDER BY subject_area_code, catalog_number`

func FormatOptionalString(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

func (d *Database) ListSubjectAreas(ctx context.Context) ([]SubjectArea, error) {
	sql := listSubjectAreas
	rows, err := d.Pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjectAreas []SubjectArea
	for rows.Next() {
		var subjectArea SubjectArea
		if err := rows.Scan(&subjectArea.Code, &subjectArea.Name); err != nil {
			return nil, err
		}
		subjectAreas = append(subjectAreas, subjectArea)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjectAreas, nil
}

func (d *Database) ListCourses(ctx context.Context) ([]Course, error) {
	sql := listCourses
	rows, err := d.Pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []Course
	for rows.Next() {
		var course Course
		if err := rows.Scan(&course.Id, &course.SubjectAreaCode, &course.CatalogNumber, &course.Description); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// CourseTable indexes courses by their code. Later rows win on duplicate codes.
func CourseTable(courses []Course) requisite.CourseTable {
	table := make(requisite.CourseTable, len(courses))
	for _, course := range courses {
		code := course.Code()
		table[code] = requisite.Course{ID: requisite.CourseID(course.Id), Code: code}
	}
	return table
}

// SubjectAreaNames maps subject area names to codes, e.g. "Computer Science"
// to "CS".
func SubjectAreaNames(subjectAreas []SubjectArea) map[string]string {
	names := make(map[string]string, len(subjectAreas))
	for _, subjectArea := range subjectAreas {
		names[subjectArea.Name] = subjectArea.Code
	}
	return names
}
