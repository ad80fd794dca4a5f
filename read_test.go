package lip

import (
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		input *Node
		want  string
	}{
		{
			input: root(num("5")),
			want:  "(5)",
		},
		{
			input: root(group(sym("+"), num("1"), group(sym("-"), num("-2")))),
			want:  "((+ 1 (- -2)))",
		},
		{
			input: root(group()),
			want:  "(())",
		},
		{
			input: root(num("9223372036854775807")),
			want:  "(9223372036854775807)",
		},
		{
			input: root(num("9223372036854775808")),
			want:  "(Error: Bad number)",
		},
		{
			input: root(num("-9223372036854775809")),
			want:  "(Error: Bad number)",
		},
		{
			input: &Node{Tag: "expr|sexpr|>", Children: []*Node{
				{Tag: TagChar, Contents: "{"},
				num("1"),
				{Tag: TagChar, Contents: "}"},
			}},
			want: "(1)",
		},
		{
			input: &Node{Tag: TagRoot},
			want:  "()",
		},
	}
	for _, test := range tests {
		got := Read(test.input)
		if got.String() != test.want {
			t.Errorf("want %q but got %q", test.want, got)
		}
	}
}

func TestReadLeaves(t *testing.T) {
	if got := Read(sym("^")); got != NewSym("^") {
		t.Errorf("want symbol ^ but got %#v", got)
	}
	if got := Read(num("-3")); got != NewNum(-3) {
		t.Errorf("want -3 but got %#v", got)
	}
	if got := Read(root()); got.Type() != ValueSexpr {
		t.Errorf("root must read as an expression, got %v", got.Type())
	}
}
