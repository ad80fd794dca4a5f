package lip

import (
	"bytes"
	"fmt"
	"strconv"
)

type ValueType int

const (
	ValueNum ValueType = iota
	ValueErr
	ValueSym
	ValueSexpr
)

func (t ValueType) String() string {
	switch t {
	case ValueNum:
		return "number"
	case ValueErr:
		return "error"
	case ValueSym:
		return "symbol"
	case ValueSexpr:
		return "s-expression"
	}
	return "ValueType(" + strconv.Itoa(int(t)) + ")"
}

// Error messages carried by Err values.
const (
	ErrBadNumber   = "Bad number"
	ErrNonNumber   = "non-number passed to numeric operator"
	ErrNoSymbol    = "a symbol must start an expression"
	ErrDivZero     = "division by zero"
	ErrIndexRange  = "index out of range"
	ErrBadOperator = "bad operator"
)

// Value is a runtime value. The set of implementations is closed: Num, Err,
// Sym and *Sexpr.
type Value interface {
	Type() ValueType
	String() string
	value()
}

// Num is an integer.
type Num int64

// Err is a terminal error value. It is never evaluated further.
type Err string

// Sym names an operator. It only means something at the head of a Sexpr.
type Sym string

// Sexpr is an expression. It exclusively owns its cells.
type Sexpr struct {
	cells []Value
}

func NewNum(n int64) Num {
	return Num(n)
}

func NewErr(msg string) Err {
	return Err(msg)
}

// NewErrf builds an Err from a format string, as fmt.Sprintf does.
func NewErrf(format string, args ...interface{}) Err {
	return Err(fmt.Sprintf(format, args...))
}

func NewSym(name string) Sym {
	return Sym(name)
}

// NewSexpr returns an expression owning the given children.
func NewSexpr(cells ...Value) *Sexpr {
	s := &Sexpr{}
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

func (Num) Type() ValueType    { return ValueNum }
func (Err) Type() ValueType    { return ValueErr }
func (Sym) Type() ValueType    { return ValueSym }
func (*Sexpr) Type() ValueType { return ValueSexpr }

func (Num) value()    {}
func (Err) value()    {}
func (Sym) value()    {}
func (*Sexpr) value() {}

func (n Num) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (e Err) String() string {
	return "Error: " + string(e)
}

func (s Sym) String() string {
	return string(s)
}

func (s *Sexpr) String() string {
	var buf bytes.Buffer
	fmt.Fprint(&buf, "(")
	for i, c := range s.cells {
		if i > 0 {
			fmt.Fprint(&buf, " ")
		}
		fmt.Fprint(&buf, c)
	}
	fmt.Fprint(&buf, ")")
	return buf.String()
}

// Len returns the number of cells.
func (s *Sexpr) Len() int {
	return len(s.cells)
}

// Cell returns the i'th cell without giving up ownership of it.
func (s *Sexpr) Cell(i int) Value {
	if i < 0 || i >= len(s.cells) {
		return Err(ErrIndexRange)
	}
	return s.cells[i]
}

// Add appends v, which now belongs to s.
func (s *Sexpr) Add(v Value) *Sexpr {
	s.cells = append(s.cells, v)
	return s
}

// Pop removes the i'th cell and hands it to the caller. The remaining cells
// keep their order.
func (s *Sexpr) Pop(i int) Value {
	if i < 0 || i >= len(s.cells) {
		return Err(ErrIndexRange)
	}
	v := s.cells[i]
	copy(s.cells[i:], s.cells[i+1:])
	s.cells[len(s.cells)-1] = nil
	s.cells = s.cells[:len(s.cells)-1]
	return v
}

// Take removes the i'th cell and discards s. s must not be used afterwards.
func (s *Sexpr) Take(i int) Value {
	v := s.Pop(i)
	s.release()
	return v
}

// release drops every cell so nothing stays reachable through a discarded
// expression.
func (s *Sexpr) release() {
	for i := range s.cells {
		s.cells[i] = nil
	}
	s.cells = nil
}
