package requisite

// Normalize resolves a parse tree against a course table. Course requirements
// carry grade unless a "with" qualifier overrides it further down. Normalize
// never fails: anything it cannot interpret becomes Unresolved.
func Normalize(node ParseNode, table CourseTable, grade Grade) Requirement {
	if grade == "" {
		grade = GradeCredit
	}

	switch n := node.(type) {
	case Group:
		return Normalize(n.Child, table, grade)
	case Leaf:
		course, ok := table.Lookup(n.Token.Value)
		if !ok {
			return Unresolved{RawText: n.Token.Value}
		}
		return CourseRequirement{CourseID: course.ID, MinGrade: grade}
	case OperatorRun:
		return normalizeRun(n, table, grade)
	case nil:
		return Unresolved{}
	}
	return Unresolved{RawText: node.String()}
}

func normalizeRun(run OperatorRun, table CourseTable, grade Grade) Requirement {
	if len(run.Operators) == 0 && len(run.Operands) == 1 {
		return Normalize(run.Operands[0], table, grade)
	}
	if !run.wellFormed() {
		return Unresolved{RawText: run.String()}
	}

	switch run.Operators[0].Type {
	case TokenWith:
		return normalizeWith(run, table, grade)
	case TokenAnd, TokenOr:
		for _, operator := range run.Operators {
			if operator.Type != TokenAnd && operator.Type != TokenOr {
				return Unresolved{RawText: run.String()}
			}
		}
		return normalizeBoolean(run, table, grade)
	}

	// Comparisons are not interpreted.
	return Unresolved{RawText: run.String()}
}

// normalizeWith evaluates the left operand under the grade named by the first
// qualifier. In "A with GRADE_B with GRADE_C" the innermost qualifier wins,
// so A requires B.
func normalizeWith(run OperatorRun, table CourseTable, grade Grade) Requirement {
	if leaf, ok := unwrap(run.Operands[1]).(Leaf); ok {
		if qualified, ok := ParseGradeToken(leaf.Token.Value); ok {
			grade = qualified
		}
	}
	return Normalize(run.Operands[0], table, grade)
}

// normalizeBoolean flattens each maximal same-operator run into one group.
// When the operator changes the group built so far becomes the first child
// of the next one, so "A and B or C" is or(and(A, B), C).
func normalizeBoolean(run OperatorRun, table CourseTable, grade Grade) Requirement {
	operator := booleanOperator(run.Operators[0])
	children := []Requirement{Normalize(run.Operands[0], table, grade)}

	for i, token := range run.Operators {
		if next := booleanOperator(token); next != operator {
			children = []Requirement{BooleanGroup{Operator: operator, Children: children}}
			operator = next
		}
		children = append(children, Normalize(run.Operands[i+1], table, grade))
	}

	return BooleanGroup{Operator: operator, Children: children}
}

func booleanOperator(token Token) Operator {
	if token.Type == TokenOr {
		return OperatorOr
	}
	return OperatorAnd
}
