package requisite

import (
	"strings"
	"unicode"
)

type TokenType int

const (
	TokenCourse TokenType = iota
	TokenGrade
	TokenCompare
	TokenAnd
	TokenOr
	TokenWith
	TokenLParen
	TokenRParen
	TokenEnd
)

func (t TokenType) String() string {
	switch t {
	case TokenCourse:
		return "course"
	case TokenGrade:
		return "grade"
	case TokenCompare:
		return "comparison"
	case TokenAnd:
		return "and"
	case TokenOr:
		return "or"
	case TokenWith:
		return "with"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenEnd:
		return "end of input"
	}
	return "unknown"
}

// Token is a lexical atom. Value holds the source text, except for logical
// operators which are lower-cased.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

func (t Token) IsOperand() bool {
	return t.Type == TokenCourse || t.Type == TokenGrade
}

type LexerState int

const (
	LexerStart LexerState = iota
	LexerWord
	LexerCourseNumber
)

const gradePrefix = "GRADE_"

var compareOperators = []string{">=", "<=", "!=", ">", "<", "="}

func isWordBoundary(char rune) bool {
	return unicode.IsSpace(char) || strings.ContainsRune("()<>=!", char)
}

func isSubject(word string) bool {
	for _, char := range word {
		if char < 'A' || char > 'Z' {
			return false
		}
	}
	return len(word) > 0
}

func isDigits(word string) bool {
	for _, char := range word {
		if char < '0' || char > '9' {
			return false
		}
	}
	return len(word) > 0
}

// wordToken classifies a bare word that is not the subject half of a course.
func wordToken(word string, pos int) (Token, error) {
	switch strings.ToLower(word) {
	case "and":
		return Token{Type: TokenAnd, Value: "and", Pos: pos}, nil
	case "or":
		return Token{Type: TokenOr, Value: "or", Pos: pos}, nil
	case "with":
		return Token{Type: TokenWith, Value: "with", Pos: pos}, nil
	}
	if _, ok := ParseGradeToken(word); ok {
		return Token{Type: TokenGrade, Value: word, Pos: pos}, nil
	}
	return Token{}, &GrammarError{Text: word, Pos: pos, Reason: "unknown token"}
}

// Tokenize splits a prerequisite expression into tokens terminated by a
// TokenEnd. It fails on the first word that is not part of the grammar.
func Tokenize(raw string) ([]Token, error) {
	var tokens []Token

	state := LexerStart
	initialPos := 0
	numberPos := 0

	// finishWord closes the word starting at initialPos and ending before pos.
	finishWord := func(pos int) error {
		token, err := wordToken(raw[initialPos:pos], initialPos)
		if err != nil {
			return err
		}
		tokens = append(tokens, token)
		return nil
	}

	runes := []rune(raw)
	offsets := make([]int, 0, len(runes)+1)
	for pos := range raw {
		offsets = append(offsets, pos)
	}
	offsets = append(offsets, len(raw))

	for i := 0; i < len(runes); i++ {
		pos := offsets[i]
		char := runes[i]

		switch state {
		case LexerWord:
			if char == ' ' && isSubject(raw[initialPos:pos]) && i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
				state = LexerCourseNumber
				numberPos = offsets[i+1]
				continue
			}
			if !isWordBoundary(char) {
				continue
			}
			if err := finishWord(pos); err != nil {
				return nil, err
			}
			state = LexerStart
		case LexerCourseNumber:
			if !isWordBoundary(char) {
				continue
			}
			if !isDigits(raw[numberPos:pos]) {
				return nil, &GrammarError{Text: raw[initialPos:pos], Pos: initialPos, Reason: "malformed course"}
			}
			tokens = append(tokens, Token{Type: TokenCourse, Value: raw[initialPos:pos], Pos: initialPos})
			state = LexerStart
		}

		// LexerStart, possibly re-entered on the boundary character above
		switch {
		case unicode.IsSpace(char):
		case char == '(':
			tokens = append(tokens, Token{Type: TokenLParen, Value: "(", Pos: pos})
		case char == ')':
			tokens = append(tokens, Token{Type: TokenRParen, Value: ")", Pos: pos})
		case strings.ContainsRune("<>=!", char):
			operator := ""
			for _, candidate := range compareOperators {
				if strings.HasPrefix(raw[pos:], candidate) {
					operator = candidate
					break
				}
			}
			if operator == "" {
				return nil, &GrammarError{Text: string(char), Pos: pos, Reason: "unknown operator"}
			}
			tokens = append(tokens, Token{Type: TokenCompare, Value: operator, Pos: pos})
			i += len(operator) - 1
		default:
			state = LexerWord
			initialPos = pos
		}
	}

	switch state {
	case LexerWord:
		if err := finishWord(len(raw)); err != nil {
			return nil, err
		}
	case LexerCourseNumber:
		if !isDigits(raw[numberPos:]) {
			return nil, &GrammarError{Text: raw[initialPos:], Pos: initialPos, Reason: "malformed course"}
		}
		tokens = append(tokens, Token{Type: TokenCourse, Value: raw[initialPos:], Pos: initialPos})
	}

	tokens = append(tokens, Token{Type: TokenEnd, Value: "$", Pos: len(raw)})
	return tokens, nil
}
