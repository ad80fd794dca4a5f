package lip

import (
	"strconv"
	"strings"
)

// Read converts a parse tree into a Value. It never evaluates anything.
// Interior nodes always become a *Sexpr, possibly empty.
func Read(n *Node) Value {
	if strings.Contains(n.Tag, "number") {
		return readNum(n)
	}
	if strings.Contains(n.Tag, "sym") {
		return NewSym(n.Contents)
	}

	x := NewSexpr()
	for _, c := range n.Children {
		if isPunct(c) {
			continue
		}
		x.Add(Read(c))
	}
	return x
}

func readNum(n *Node) Value {
	i, err := strconv.ParseInt(n.Contents, 10, 64)
	if err != nil {
		return NewErr(ErrBadNumber)
	}
	return NewNum(i)
}

// isPunct reports whether c is grammar noise: a delimiter or an anchor.
func isPunct(c *Node) bool {
	switch c.Contents {
	case "(", ")", "{", "}":
		return true
	}
	return c.Tag == TagRegex
}
