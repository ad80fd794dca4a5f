package lip

import (
	"errors"
	"testing"
)

func testEval(t *testing.T, input, want string) {
	t.Helper()
	v, err := EvalString("<test>", input)
	if err != nil {
		t.Errorf("%q: %v", input, err)
		return
	}
	if got := v.String(); got != want {
		t.Errorf("want %q for %q but got %q", want, input, got)
	}
}

func TestArithmetic(t *testing.T) {
	testEval(t, "(+ 1 2 3)", "6")
	testEval(t, "(* 2 (+ 1 1))", "4")
	testEval(t, "(- 10 2 3)", "5")
	testEval(t, "(/ 100 5 2)", "10")
	testEval(t, "(/ 7 2)", "3")
	testEval(t, "(/ -7 2)", "-3")
	testEval(t, "(% 7 3)", "1")
	testEval(t, "(% -7 3)", "-1")
	testEval(t, "(^ 2 10)", "1024")
	testEval(t, "(^ 2 3 2)", "64")
	testEval(t, "(^ -3 3)", "-27")
	testEval(t, "(^ 5 0)", "1")
	testEval(t, "(- (+ 5 (* 2 3)) 3)", "8")
	testEval(t, "(/ (- (+ 515 (* -87 311)) 296) 27)", "-994")
}

func TestUnary(t *testing.T) {
	testEval(t, "(- 5)", "-5")
	testEval(t, "(- -5)", "5")
	testEval(t, "(+ 5)", "5")
	testEval(t, "(* 5)", "5")
	testEval(t, "(/ 5)", "5")
}

func TestCollapse(t *testing.T) {
	testEval(t, "5", "5")
	testEval(t, "(5)", "5")
	testEval(t, "((5))", "5")
	testEval(t, "(+)", "+")
	testEval(t, "+ 1 2", "3")
	testEval(t, "(+ 1 2)", "3")
}

func TestEmpty(t *testing.T) {
	testEval(t, "()", "()")
	testEval(t, "(())", "()")
}

func TestErrors(t *testing.T) {
	testEval(t, "(/ 10 0)", "Error: division by zero")
	testEval(t, "(/ 10 0 5)", "Error: division by zero")
	testEval(t, "(/ 10 2 0 (+ 1 1))", "Error: division by zero")
	testEval(t, "(% 10 0)", "Error: division by zero")
	testEval(t, "(+ 1 (/ 1 0) (* 2 2))", "Error: division by zero")
	testEval(t, "(1 2)", "Error: a symbol must start an expression")
	testEval(t, "1 2", "Error: a symbol must start an expression")
	testEval(t, "(+ 1 ())", "Error: non-number passed to numeric operator")
	testEval(t, "(+ 1 -)", "Error: non-number passed to numeric operator")
	testEval(t, "(+ 1 99999999999999999999)", "Error: Bad number")
	testEval(t, "(- (1 2) (/ 1 0))", "Error: a symbol must start an expression")
}

func TestEvalLeaves(t *testing.T) {
	tests := []Value{
		NewNum(3),
		NewErr("boom"),
		NewSym("+"),
	}
	for _, v := range tests {
		if got := Eval(v); got != v {
			t.Errorf("want %v to evaluate to itself but got %v", v, got)
		}
	}
}

func TestEvalNonNumber(t *testing.T) {
	v := Eval(NewSexpr(NewSym("+"), NewNum(1), NewSym("foo")))
	if v != NewErr(ErrNonNumber) {
		t.Errorf("want non-number error but got %v", v)
	}
}

func TestEvalBadOperator(t *testing.T) {
	v := Eval(NewSexpr(NewSym("max"), NewNum(1), NewNum(2)))
	if v != NewErr("bad operator max") {
		t.Errorf("want bad operator but got %v", v)
	}
}

func TestEvalFirstError(t *testing.T) {
	s := NewSexpr(NewSym("+"), NewErr("first"), NewNum(1), NewErr("second"))
	if v := Eval(s); v != NewErr("first") {
		t.Errorf("want first error but got %v", v)
	}
	if s.Len() != 0 {
		t.Errorf("discarded expression still owns %v", s)
	}
}

func TestEvalConsumes(t *testing.T) {
	inner := NewSexpr(NewSym("*"), NewNum(2), NewNum(2))
	s := NewSexpr(NewSym("+"), NewNum(1), inner)
	if v := Eval(s); v != NewNum(5) {
		t.Fatalf("want 5 but got %v", v)
	}
	if s.Len() != 0 || inner.Len() != 0 {
		t.Errorf("evaluated expressions must be released: %v %v", s, inner)
	}
}

func TestEvalStringParseError(t *testing.T) {
	_, err := EvalString("<test>", "(+ 1")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("want parse error but got %v", err)
	}
}
