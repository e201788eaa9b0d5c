// SPDX-License-Identifier: MIT
//
// File: parser.go
// Role: Recursive-descent parser producing the AST and subformula list.
// Determinism:
//   - Subformulas are appended when a production finishes, so children
//     always precede their parents; the first occurrence of a string wins.

package formula

import (
	"fmt"
	"sort"
	"strings"
)

// NodeKind tags the AST variants.
type NodeKind int

const (
	NodeProposition NodeKind = iota
	NodeFalsity
	NodeImplication
	NodeDiamond
)

// Node is an immutable AST node. Name is set for propositions; Left and
// Right for implications; Left for diamonds.
type Node struct {
	Kind  NodeKind
	Name  string
	Left  *Node
	Right *Node
}

// String renders the node with the minimal parentheses the grammar needs.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)

	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	switch n.Kind {
	case NodeProposition:
		sb.WriteString(n.Name)
	case NodeFalsity:
		sb.WriteString(FalsityLit)
	case NodeDiamond:
		sb.WriteString(DiamondLit + "(")
		n.Left.write(sb)
		sb.WriteString(")")
	case NodeImplication:
		if n.Left.Kind == NodeImplication {
			sb.WriteString("(")
			n.Left.write(sb)
			sb.WriteString(")")
		} else {
			n.Left.write(sb)
		}
		sb.WriteString(" " + ImplicationLit + " ")
		n.Right.write(sb)
	}
}

// Formula is a parsed modal formula.
type Formula struct {
	Root         *Node
	Subformulas  []string // children before parents, duplicate-free
	Propositions []string // distinct names, ordered by index (p2 before p10)
}

// String returns the canonical text of the whole formula.
func (f *Formula) String() string {
	if len(f.Subformulas) == 0 {
		return ""
	}

	return f.Subformulas[len(f.Subformulas)-1]
}

// Parse tokenizes and parses text. Trailing tokens after a complete
// expression are a syntax error.
func Parse(text string) (*Formula, error) {
	toks, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &parser{
		toks:  toks,
		match: matchParens(toks),
		seen:  make(map[string]struct{}),
		props: make(map[string]struct{}),
	}
	root, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != KindEOF {
		return nil, &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("unexpected %s after formula", describe(tok))}
	}

	props := make([]string, 0, len(p.props))
	for name := range p.props {
		props = append(props, name)
	}
	sort.Slice(props, func(i, j int) bool { return lessProposition(props[i], props[j]) })

	return &Formula{Root: root, Subformulas: p.subs, Propositions: props}, nil
}

// Subformulas parses text and returns only its subformula list.
func Subformulas(text string) ([]string, error) {
	f, err := Parse(text)
	if err != nil {
		return nil, err
	}

	return f.Subformulas, nil
}

type parser struct {
	toks  []Token
	match []int // index of the matching paren, -1 if none
	pos   int
	subs  []string
	seen  map[string]struct{}
	props map[string]struct{}
}

func (p *parser) peek() Token { return p.toks[p.pos] }

// accept consumes the next token if it has kind k.
func (p *parser) accept(k Kind) bool {
	if p.toks[p.pos].Kind == k {
		p.pos++
		return true
	}

	return false
}

func (p *parser) expect(k Kind) error {
	if p.accept(k) {
		return nil
	}
	tok := p.peek()

	return &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("expected %s, found %s", k, describe(tok))}
}

// expr := term ("-->" expr)?
func (p *parser) expr() (*Node, error) {
	start := p.pos
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	node := left
	if p.accept(KindImplication) {
		right, err := p.expr()
		if err != nil {
			return nil, err
		}
		node = &Node{Kind: NodeImplication, Left: left, Right: right}
	}
	p.record(start, p.pos)

	return node, nil
}

// term := "(" expr ")" | "♢" "(" expr ")" | var
func (p *parser) term() (*Node, error) {
	start := p.pos
	var node *Node
	switch {
	case p.accept(KindLParen):
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(KindRParen); err != nil {
			return nil, err
		}
		node = inner
	case p.accept(KindDiamond):
		if err := p.expect(KindLParen); err != nil {
			return nil, err
		}
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(KindRParen); err != nil {
			return nil, err
		}
		node = &Node{Kind: NodeDiamond, Left: inner}
	default:
		tok := p.peek()
		switch tok.Kind {
		case KindProposition:
			p.props[tok.Lit] = struct{}{}
			node = &Node{Kind: NodeProposition, Name: tok.Lit}
		case KindFalsity:
			node = &Node{Kind: NodeFalsity}
		default:
			return nil, &SyntaxError{Pos: tok.Pos, Msg: fmt.Sprintf("expected proposition or %s, found %s", FalsityLit, describe(tok))}
		}
		p.pos++
	}
	p.record(start, p.pos)

	return node, nil
}

// record appends the canonical text of toks[start:end] if it is new.
func (p *parser) record(start, end int) {
	for end-start >= 2 && p.toks[start].Kind == KindLParen && p.match[start] == end-1 {
		start++
		end--
	}
	var sb strings.Builder
	for _, tok := range p.toks[start:end] {
		if tok.Kind == KindImplication {
			sb.WriteString(" " + ImplicationLit + " ")
			continue
		}
		sb.WriteString(tok.Lit)
	}
	s := sb.String()
	if _, dup := p.seen[s]; dup {
		return
	}
	p.seen[s] = struct{}{}
	p.subs = append(p.subs, s)
}

// matchParens pairs every '(' with its ')' by token index.
func matchParens(toks []Token) []int {
	match := make([]int, len(toks))
	var stack []int
	for i, tok := range toks {
		match[i] = -1
		switch tok.Kind {
		case KindLParen:
			stack = append(stack, i)
		case KindRParen:
			if len(stack) > 0 {
				open := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				match[open], match[i] = i, open
			}
		}
	}

	return match
}

func describe(tok Token) string {
	if tok.Kind == KindEOF {
		return tok.Kind.String()
	}

	return fmt.Sprintf("%q", tok.Lit)
}

// lessProposition orders "p2" before "p10"; equal indices with different
// spellings ("p1", "p01") fall back to string order.
func lessProposition(a, b string) bool {
	da := strings.TrimLeft(a[1:], "0")
	db := strings.TrimLeft(b[1:], "0")
	if len(da) != len(db) {
		return len(da) < len(db)
	}
	if da != db {
		return da < db
	}

	return a < b
}
