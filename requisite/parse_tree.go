package requisite

import "strings"

// ParseNode is the untyped output of Parse. It is one of Leaf, Group or
// OperatorRun.
type ParseNode interface {
	String() string
	parseNode()
}

// Leaf is a single course or grade token.
type Leaf struct {
	Token Token
}

// Group is a parenthesized sub-expression.
type Group struct {
	Child ParseNode
}

// OperatorRun is a flat chain of operands joined by operators of one
// precedence level. Operators[i] sits between Operands[i] and Operands[i+1].
type OperatorRun struct {
	Operands  []ParseNode
	Operators []Token
}

func (Leaf) parseNode()        {}
func (Group) parseNode()       {}
func (OperatorRun) parseNode() {}

func (l Leaf) String() string {
	return l.Token.Value
}

func (g Group) String() string {
	if g.Child == nil {
		return "()"
	}
	return "(" + g.Child.String() + ")"
}

func (r OperatorRun) String() string {
	var builder strings.Builder
	for i, operand := range r.Operands {
		if i > 0 {
			builder.WriteString(" ")
			if i-1 < len(r.Operators) {
				builder.WriteString(r.Operators[i-1].Value)
				builder.WriteString(" ")
			}
		}
		if operand != nil {
			builder.WriteString(operand.String())
		}
	}
	return builder.String()
}

// wellFormed reports whether the run strictly alternates operand and
// operator with at least one operator.
func (r OperatorRun) wellFormed() bool {
	return len(r.Operators) > 0 && len(r.Operands) == len(r.Operators)+1
}

// unwrap strips redundant parentheses.
func unwrap(node ParseNode) ParseNode {
	for {
		group, ok := node.(Group)
		if !ok {
			return node
		}
		node = group.Child
	}
}
