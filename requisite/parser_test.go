package requisite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func course(code string, pos int) Leaf {
	return Leaf{Token: Token{Type: TokenCourse, Value: code, Pos: pos}}
}

func TestParseSingleCourse(t *testing.T) {
	node, err := Parse("CS 3345")
	require.NoError(t, err)
	assert.Equal(t, course("CS 3345", 0), node)
}

func TestParseWithBindsTighterThanAnd(t *testing.T) {
	node, err := Parse("RHET 1302 with GRADE_C and BIOL 1301")
	require.NoError(t, err)

	run, ok := node.(OperatorRun)
	require.True(t, ok, "expected OperatorRun, got %T", node)
	require.Len(t, run.Operators, 1)
	assert.Equal(t, TokenAnd, run.Operators[0].Type)

	left, ok := run.Operands[0].(OperatorRun)
	require.True(t, ok, "expected with run, got %T", run.Operands[0])
	assert.Equal(t, TokenWith, left.Operators[0].Type)
	assert.Equal(t, "RHET 1302 with GRADE_C", left.String())
	assert.Equal(t, course("BIOL 1301", 27), run.Operands[1])
}

func TestParseFlatRun(t *testing.T) {
	node, err := Parse("CS 1 or CS 2 and CS 3 or CS 4")
	require.NoError(t, err)

	run, ok := node.(OperatorRun)
	require.True(t, ok)
	assert.Len(t, run.Operands, 4)
	assert.Equal(t, []TokenType{TokenOr, TokenAnd, TokenOr}, tokenTypes(run.Operators))
}

func TestParseGroups(t *testing.T) {
	node, err := Parse("(CE 3311 or EE 3311) and (CE 3320 or EE 3320)")
	require.NoError(t, err)

	run, ok := node.(OperatorRun)
	require.True(t, ok)
	require.Len(t, run.Operands, 2)

	for _, operand := range run.Operands {
		group, ok := operand.(Group)
		require.True(t, ok, "expected Group, got %T", operand)
		inner, ok := group.Child.(OperatorRun)
		require.True(t, ok)
		assert.Equal(t, TokenOr, inner.Operators[0].Type)
	}
	assert.Equal(t, "(CE 3311 or EE 3311) and (CE 3320 or EE 3320)", node.String())
}

func TestParseCondition(t *testing.T) {
	node, err := Parse("CS 1337 >= GRADE_C")
	require.NoError(t, err)

	run, ok := node.(OperatorRun)
	require.True(t, ok)
	assert.Equal(t, TokenCompare, run.Operators[0].Type)
	assert.Equal(t, "CS 1337 >= GRADE_C", run.String())
}

func TestParseParenthesizedGrade(t *testing.T) {
	node, err := Parse("CS 1337 with (GRADE_A)")
	require.NoError(t, err)
	assert.Equal(t, "CS 1337 with (GRADE_A)", node.String())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		text   string
		reason string
	}{
		{name: "empty", raw: "", reason: "empty expression"},
		{name: "open parentheses", raw: "(((", reason: "unexpected end of input, expected course or grade"},
		{name: "unmatched close", raw: "CS 1337 )", text: ")", reason: "unexpected token"},
		{name: "unclosed group", raw: "(CS 1337 or CS 2305", reason: "unexpected end of input, expected )"},
		{name: "empty group", raw: "()", text: ")", reason: "expected course or grade"},
		{name: "trailing operand", raw: "CS 1337 CS 2305", text: "CS 2305", reason: "unexpected token"},
		{name: "dangling operator", raw: "CS 1337 and", reason: "unexpected end of input, expected course or grade"},
		{name: "with course", raw: "CS 1337 with CS 2305", text: "CS 2305", reason: "expected grade after with"},
		{name: "with group", raw: "CS 1337 with (GRADE_A or GRADE_B)", text: "(GRADE_A or GRADE_B)", reason: "expected grade after with"},
		{name: "freeform", raw: "MAJOR STANDING", text: "MAJOR", reason: "unknown token"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			node, err := Parse(c.raw)
			require.Error(t, err)
			assert.Nil(t, node)

			var grammarErr *GrammarError
			require.True(t, errors.As(err, &grammarErr))
			assert.Equal(t, c.text, grammarErr.Text)
			assert.Equal(t, c.reason, grammarErr.Reason)
		})
	}
}
