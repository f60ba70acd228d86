package requisite

import "fmt"

func peek(tokens *[]Token) Token {
	if len(*tokens) == 0 {
		return Token{Type: TokenEnd, Value: "$"}
	}
	return (*tokens)[0]
}

func unexpected(token Token, reason string) *GrammarError {
	if token.Type == TokenEnd {
		return &GrammarError{Pos: token.Pos, Reason: "unexpected end of input, " + reason}
	}
	return &GrammarError{Text: token.Value, Pos: token.Pos, Reason: reason}
}

func Eat(tokens *[]Token, tokenType TokenType) (Token, error) {
	token := peek(tokens)
	if len(*tokens) == 0 || token.Type != tokenType {
		return Token{}, unexpected(token, fmt.Sprintf("expected %v", tokenType))
	}

	*tokens = (*tokens)[1:]
	return token, nil
}

// Parse turns a prerequisite expression into its parse tree. The whole input
// must match; any syntax violation is returned as a *GrammarError.
func Parse(raw string) (ParseNode, error) {
	tokens, err := Tokenize(raw)
	if err != nil {
		return nil, err
	}
	if peek(&tokens).Type == TokenEnd {
		return nil, &GrammarError{Reason: "empty expression"}
	}

	node, err := Expression(&tokens)
	if err != nil {
		return nil, err
	}

	if _, err := Eat(&tokens, TokenEnd); err != nil {
		return nil, unexpected(peek(&tokens), "unexpected token")
	}

	return node, nil
}

// Expression parses a left-associative chain of with-expressions joined by
// "and" or "or". Both operators share one precedence level.
func Expression(tokens *[]Token) (ParseNode, error) {
	head, err := WithExpression(tokens)
	if err != nil {
		return nil, err
	}

	run := OperatorRun{Operands: []ParseNode{head}}
	for {
		operator := peek(tokens)
		if operator.Type != TokenAnd && operator.Type != TokenOr {
			break
		}
		*tokens = (*tokens)[1:]

		operand, err := WithExpression(tokens)
		if err != nil {
			return nil, err
		}
		run.Operators = append(run.Operators, operator)
		run.Operands = append(run.Operands, operand)
	}

	if len(run.Operators) == 0 {
		return head, nil
	}
	return run, nil
}

// WithExpression parses a clause qualified by one or more grades.
func WithExpression(tokens *[]Token) (ParseNode, error) {
	head, err := Clause(tokens)
	if err != nil {
		return nil, err
	}

	run := OperatorRun{Operands: []ParseNode{head}}
	for peek(tokens).Type == TokenWith {
		operator, _ := Eat(tokens, TokenWith)

		gradeToken := peek(tokens)
		grade, err := Clause(tokens)
		if err != nil {
			return nil, err
		}
		if leaf, ok := unwrap(grade).(Leaf); !ok || leaf.Token.Type != TokenGrade {
			return nil, &GrammarError{Text: grade.String(), Pos: gradeToken.Pos, Reason: "expected grade after with"}
		}

		run.Operators = append(run.Operators, operator)
		run.Operands = append(run.Operands, grade)
	}

	if len(run.Operators) == 0 {
		return head, nil
	}
	return run, nil
}

// Clause parses either a parenthesized expression or a condition.
func Clause(tokens *[]Token) (ParseNode, error) {
	if peek(tokens).Type != TokenLParen {
		return Condition(tokens)
	}

	Eat(tokens, TokenLParen)

	expression, err := Expression(tokens)
	if err != nil {
		return nil, err
	}

	if _, err := Eat(tokens, TokenRParen); err != nil {
		return nil, err
	}

	return Group{Child: expression}, nil
}

// Condition parses an operand, optionally compared against a second one.
func Condition(tokens *[]Token) (ParseNode, error) {
	left, err := operand(tokens)
	if err != nil {
		return nil, err
	}

	if peek(tokens).Type != TokenCompare {
		return left, nil
	}
	operator, _ := Eat(tokens, TokenCompare)

	right, err := operand(tokens)
	if err != nil {
		return nil, err
	}

	return OperatorRun{Operands: []ParseNode{left, right}, Operators: []Token{operator}}, nil
}

func operand(tokens *[]Token) (ParseNode, error) {
	token := peek(tokens)
	if !token.IsOperand() {
		return nil, unexpected(token, "expected course or grade")
	}

	*tokens = (*tokens)[1:]
	return Leaf{Token: token}, nil
}
