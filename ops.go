package lip

// Fn folds one more operand into the accumulator. It returns either a Num
// or an Err; an Err stops the fold.
type Fn func(acc, y Num) Value

var ops map[string]Fn

func init() {
	ops = map[string]Fn{
		"+": doPlus,
		"-": doMinus,
		"*": doMul,
		"/": doDiv,
		"%": doMod,
		"^": doPow,
	}
}

// call applies the builtin named by op to args, which it consumes.
func call(op Sym, args *Sexpr) Value {
	defer args.release()

	for _, c := range args.cells {
		if c.Type() != ValueNum {
			return NewErr(ErrNonNumber)
		}
	}
	fn, ok := ops[string(op)]
	if !ok {
		return NewErrf("%s %s", ErrBadOperator, op)
	}

	x := args.Pop(0).(Num)
	if op == "-" && args.Len() == 0 {
		return -x
	}

	var acc Value = x
	for args.Len() > 0 {
		acc = fn(acc.(Num), args.Pop(0).(Num))
		if acc.Type() == ValueErr {
			break
		}
	}
	return acc
}

func doPlus(x, y Num) Value {
	return x + y
}

func doMinus(x, y Num) Value {
	return x - y
}

func doMul(x, y Num) Value {
	return x * y
}

func doDiv(x, y Num) Value {
	if y == 0 {
		return NewErr(ErrDivZero)
	}
	return x / y
}

func doMod(x, y Num) Value {
	if y == 0 {
		return NewErr(ErrDivZero)
	}
	return x % y
}

// doPow raises x to the y'th power. Negative exponents give the integer part
// of the real result.
func doPow(x, y Num) Value {
	if y < 0 {
		switch x {
		case 0:
			return NewErr(ErrDivZero)
		case 1:
			return Num(1)
		case -1:
			if y%2 == 0 {
				return Num(1)
			}
			return Num(-1)
		}
		return Num(0)
	}
	r := Num(1)
	for y > 0 {
		if y&1 == 1 {
			r *= x
		}
		x *= x
		y >>= 1
	}
	return r
}
