package db

type SubjectArea struct {
	Code string
	Name string
}

type Course struct {
	Id              int64
	SubjectAreaCode string
	CatalogNumber   string
	Description     *string
}

func (c Course) Code() string {
	return CourseCode(c.SubjectAreaCode, c.CatalogNumber)
}
