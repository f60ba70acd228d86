package requisite

import "strings"

// Grade is the minimum grade a course requirement must be passed with.
type Grade string

const (
	GradeCredit Grade = "CR"
	GradeA      Grade = "A"
	GradeB      Grade = "B"
	GradeC      Grade = "C"
	GradeBMinus Grade = "B-"
	GradeCMinus Grade = "C-"
)

var grades = map[Grade]bool{
	GradeA:      true,
	GradeB:      true,
	GradeC:      true,
	GradeBMinus: true,
	GradeCMinus: true,
}

// ParseGradeToken maps source text such as "GRADE_B-" to its grade.
func ParseGradeToken(text string) (Grade, bool) {
	letter, found := strings.CutPrefix(text, gradePrefix)
	if !found {
		return "", false
	}
	grade := Grade(letter)
	return grade, grades[grade]
}

func (g Grade) Token() string {
	if g == GradeCredit {
		return string(g)
	}
	return gradePrefix + string(g)
}
