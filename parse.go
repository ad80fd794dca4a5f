package lip

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

var (
	// ErrNoInput is returned for input holding no expression at all.
	ErrNoInput = errors.New("expected expression")
)

// Tags of the parse tree. A tag lists the grammar rules that matched the
// node, outermost first, so "expr|number|regex" is a number literal reached
// through expr.
const (
	TagRoot   = ">"
	TagNumber = "expr|number|regex"
	TagSym    = "expr|sym|char"
	TagSexpr  = "expr|sexpr|>"
	TagChar   = "char"
	TagRegex  = "regex"
)

// Node is a node of the generic parse tree. Leaves carry Contents, interior
// nodes carry Children.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
}

type ParseError struct {
	Name    string
	Line    int
	Col     int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: error: %s", e.Name, e.Line, e.Col, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func NewParser(name string, r io.Reader) *Parser {
	return &Parser{
		name: name,
		buf:  bufio.NewReader(r),
		line: 1,
		col:  1,
	}
}

type Parser struct {
	name    string
	buf     *bufio.Reader
	line    int
	col     int
	prevCol int
	last    rune
}

func (p *Parser) NewError(err error, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Name:    p.name,
		Line:    p.line,
		Col:     p.col,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

func isSymbolLetter(r rune) bool {
	return strings.ContainsRune(`+-*/^%`, r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func (p *Parser) readRune() (rune, error) {
	r, _, err := p.buf.ReadRune()
	if err != nil {
		return r, err
	}
	p.last = r
	p.prevCol = p.col
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return r, nil
}

func (p *Parser) unreadRune() error {
	err := p.buf.UnreadRune()
	if err != nil {
		return err
	}
	if p.last == '\n' {
		p.line--
	}
	p.col = p.prevCol
	return nil
}

func (p *Parser) peekRune() (rune, error) {
	r, err := p.readRune()
	if err != nil {
		return r, err
	}
	return r, p.unreadRune()
}

func (p *Parser) SkipWhite() {
	for {
		r, err := p.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			p.unreadRune()
			return
		}
	}
}

// Parse reads every expression up to the end of input and returns the root
// of the tree. The root is framed by two empty regex anchors.
func (p *Parser) Parse() (*Node, error) {
	root := &Node{
		Tag:      TagRoot,
		Children: []*Node{{Tag: TagRegex}},
	}
	for {
		p.SkipWhite()
		if _, err := p.peekRune(); err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		child, err := p.ParseAny()
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, child)
	}
	if len(root.Children) == 1 {
		return nil, p.NewError(ErrNoInput, "%v", ErrNoInput)
	}
	root.Children = append(root.Children, &Node{Tag: TagRegex})
	return root, nil
}

func (p *Parser) ParseAny() (*Node, error) {
	p.SkipWhite()
	r, err := p.readRune()
	if err == io.EOF {
		return nil, p.NewError(ErrNoInput, "%v", ErrNoInput)
	}
	if err != nil {
		return nil, err
	}

	if r == '(' {
		return p.ParseSexpr()
	}
	if isDigit(r) {
		p.unreadRune()
		return p.ParseNumber()
	}
	if r == '-' {
		next, err := p.peekRune()
		if err == nil && isDigit(next) {
			return p.parseDigits("-")
		}
	}
	if isSymbolLetter(r) {
		return &Node{
			Tag:      TagSym,
			Contents: string(r),
		}, nil
	}
	p.unreadRune()
	return nil, p.NewError(nil, "unexpected %q", r)
}

func (p *Parser) ParseNumber() (*Node, error) {
	return p.parseDigits("")
}

func (p *Parser) parseDigits(prefix string) (*Node, error) {
	var buf bytes.Buffer
	buf.WriteString(prefix)
	for {
		r, err := p.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !isDigit(r) {
			p.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return &Node{
		Tag:      TagNumber,
		Contents: buf.String(),
	}, nil
}

// ParseSexpr parses the rest of a group whose '(' was already consumed.
func (p *Parser) ParseSexpr() (*Node, error) {
	node := &Node{
		Tag:      TagSexpr,
		Children: []*Node{{Tag: TagChar, Contents: "("}},
	}
	for {
		p.SkipWhite()
		r, err := p.peekRune()
		if err == io.EOF {
			return nil, p.NewError(io.ErrUnexpectedEOF, "expected ')' at end of input")
		}
		if err != nil {
			return nil, err
		}
		if r == ')' {
			p.readRune()
			node.Children = append(node.Children, &Node{Tag: TagChar, Contents: ")"})
			return node, nil
		}
		child, err := p.ParseAny()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
}

// Parse parses a single line of input.
func Parse(name, input string) (*Node, error) {
	return ParseLine(name, 1, input)
}

// ParseLine is Parse for input found on line n of name, so that errors
// point at the right place.
func ParseLine(name string, n int, input string) (*Node, error) {
	p := NewParser(name, strings.NewReader(input))
	p.line = n
	return p.Parse()
}

func (n *Node) String() string {
	var buf bytes.Buffer
	n.print(&buf, 0)
	return buf.String()
}

func (n *Node) print(buf *bytes.Buffer, depth int) {
	fmt.Fprint(buf, strings.Repeat("  ", depth))
	if len(n.Children) > 0 {
		fmt.Fprintln(buf, n.Tag)
		for _, c := range n.Children {
			c.print(buf, depth+1)
		}
		return
	}
	fmt.Fprintf(buf, "%s '%s'\n", n.Tag, n.Contents)
}
