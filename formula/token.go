// SPDX-License-Identifier: MIT
//
// File: token.go
// Role: Token kinds, the tokenizer and the syntax error type.
// Policy:
//   - Whitespace is removed first; positions still refer to the input text.
//   - Token patterns are distinguished by their first rune, no backtracking.

package formula

import (
	"errors"
	"fmt"
	"unicode"
)

// Literal spellings of the fixed tokens.
const (
	FalsityLit     = "⊥"
	DiamondLit     = "♢"
	ImplicationLit = "-->"
)

// ErrSyntax is the sentinel matched by every *SyntaxError.
var ErrSyntax = errors.New("formula: syntax error")

// SyntaxError reports malformed input at a rune offset of the original text.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("formula: syntax error at position %d: %s", e.Pos, e.Msg)
}

// Is makes errors.Is(err, ErrSyntax) hold.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// Kind enumerates token types.
type Kind int

const (
	KindProposition Kind = iota
	KindFalsity
	KindDiamond
	KindLParen
	KindRParen
	KindImplication
	KindEOF
)

func (k Kind) String() string {
	switch k {
	case KindProposition:
		return "proposition"
	case KindFalsity:
		return FalsityLit
	case KindDiamond:
		return DiamondLit
	case KindLParen:
		return "("
	case KindRParen:
		return ")"
	case KindImplication:
		return ImplicationLit
	case KindEOF:
		return "end of input"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is one lexeme. Lit is empty for KindEOF.
type Token struct {
	Kind Kind
	Lit  string
	Pos  int // rune offset in the original text
}

// Tokenize splits text into tokens terminated by a KindEOF token.
func Tokenize(text string) ([]Token, error) {
	src := []rune(text)
	// Strip whitespace but remember where every kept rune came from.
	runes := make([]rune, 0, len(src))
	pos := make([]int, 0, len(src))
	for i, r := range src {
		if unicode.IsSpace(r) {
			continue
		}
		runes = append(runes, r)
		pos = append(pos, i)
	}

	var toks []Token
	for i := 0; i < len(runes); {
		at := pos[i]
		switch r := runes[i]; {
		case r == 'p':
			j := i + 1
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			if j == i+1 {
				return nil, &SyntaxError{Pos: at, Msg: "proposition needs digits after 'p'"}
			}
			toks = append(toks, Token{Kind: KindProposition, Lit: string(runes[i:j]), Pos: at})
			i = j
		case r == '⊥':
			toks = append(toks, Token{Kind: KindFalsity, Lit: FalsityLit, Pos: at})
			i++
		case r == '♢':
			toks = append(toks, Token{Kind: KindDiamond, Lit: DiamondLit, Pos: at})
			i++
		case r == '(':
			toks = append(toks, Token{Kind: KindLParen, Lit: "(", Pos: at})
			i++
		case r == ')':
			toks = append(toks, Token{Kind: KindRParen, Lit: ")", Pos: at})
			i++
		case r == '-':
			if i+2 >= len(runes) || runes[i+1] != '-' || runes[i+2] != '>' {
				return nil, &SyntaxError{Pos: at, Msg: "incomplete implication, want " + ImplicationLit}
			}
			toks = append(toks, Token{Kind: KindImplication, Lit: ImplicationLit, Pos: at})
			i += 3
		default:
			return nil, &SyntaxError{Pos: at, Msg: fmt.Sprintf("invalid token %q", r)}
		}
	}

	return append(toks, Token{Kind: KindEOF, Pos: len(src)}), nil
}
