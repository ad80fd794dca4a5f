package lip

// Eval reduces v to its final value. Numbers, errors and symbols evaluate to
// themselves. An expression is consumed: v must not be used afterwards.
//
// Eval has no state of its own, so it is safe to call from anywhere.
func Eval(v Value) Value {
	if s, ok := v.(*Sexpr); ok {
		return evalSexpr(s)
	}
	return v
}

func evalSexpr(s *Sexpr) Value {
	for i, c := range s.cells {
		s.cells[i] = Eval(c)
	}

	// the first error wins, every sibling goes with the expression
	for i, c := range s.cells {
		if c.Type() == ValueErr {
			return s.Take(i)
		}
	}

	switch s.Len() {
	case 0:
		return s
	case 1:
		return s.Take(0)
	}

	op, ok := s.Pop(0).(Sym)
	if !ok {
		s.release()
		return NewErr(ErrNoSymbol)
	}
	return call(op, s)
}

// EvalString parses input, converts and evaluates it. The error is only
// non-nil when input does not parse; evaluation failures come back as Err.
func EvalString(name, input string) (Value, error) {
	return evalLine(name, 1, input)
}

func evalLine(name string, n int, input string) (Value, error) {
	node, err := ParseLine(name, n, input)
	if err != nil {
		return nil, err
	}
	return Eval(Read(node)), nil
}
