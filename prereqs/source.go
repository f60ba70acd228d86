package main

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brequin/brequin/prereq/catalog"
	"github.com/brequin/brequin/prereq/db"
	"github.com/brequin/brequin/prereq/requisite"
)

// LoadCatalog reads the course data file at path, or the database when path
// is empty.
func LoadCatalog(ctx context.Context, path string) ([]catalog.CourseEntry, requisite.CourseTable, error) {
	if path != "" {
		return loadCatalogFile(path)
	}

	connectionString := os.Getenv("DATABASE_CONNECTION_STRING")
	if connectionString == "" {
		return nil, nil, errors.New("Either --table or DATABASE_CONNECTION_STRING is required")
	}

	pool, err := pgxpool.New(ctx, connectionString)
	if err != nil {
		return nil, nil, err
	}
	defer pool.Close()
	database := db.Database{Pool: pool}

	return loadCatalogDatabase(ctx, database)
}

func loadCatalogFile(path string) ([]catalog.CourseEntry, requisite.CourseTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	entries, err := catalog.LoadCourses(file)
	if err != nil {
		return nil, nil, err
	}

	return entries, catalog.Table(entries), nil
}

func loadCatalogDatabase(ctx context.Context, database db.Database) ([]catalog.CourseEntry, requisite.CourseTable, error) {
	subjectAreas, err := database.ListSubjectAreas(ctx)
	if err != nil {
		return nil, nil, err
	}
	subjectAreaNameCodeMap := db.SubjectAreaNames(subjectAreas)

	courses, err := database.ListCourses(ctx)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]catalog.CourseEntry, 0, len(courses))
	for _, course := range courses {
		description := db.FormatOptionalString(course.Description)
		entries = append(entries, catalog.CourseEntry{
			Code:        course.Code(),
			Id:          course.Id,
			Description: catalog.AbbreviateSubjects(description, subjectAreaNameCodeMap),
		})
	}

	return entries, db.CourseTable(courses), nil
}
