package xpath

import "testing"

type quoteTestcase struct {
	in   string // literal to quote
	want string // expected XPath string expression
}

var quoteTests = []quoteTestcase{
	{"foo", `"foo"`},
	{"", `""`},
	{"it's", `"it's"`},
	{"''", `"''"`},
	{`say "hi"`, `'say "hi"'`},
	{`"`, `concat("", '"', "")`},
	{`foo"bar'`, `concat("foo", '"', "bar'")`},
	{`a"b"c'`, `concat("a", '"', "b", '"', "c'")`},
	{`'"`, `concat("'", '"', "")`},
}

// TestQuote makes sure every literal comes back as a single valid string
// expression regardless of which quote characters it contains.
func TestQuote(t *testing.T) {
	for _, tt := range quoteTests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := Quote(tt.in); got != tt.want {
				t.Errorf("Quote(%q) = %s, want %s\n", tt.in, got, tt.want)
			}
		})
	}
}

type atTestcase struct {
	path  string
	index int
	want  string
}

var atTests = []atTestcase{
	{"//div", 0, "(//div)[1]"},
	{"//div", 1, "(//div)[2]"},
	{"//div", 41, "(//div)[42]"},
	{"//div", -1, "(//div)[last()]"},
	{"//div", -2, "(//div)[last()-1]"},
	{"//div", -5, "(//div)[last()-4]"},
	{"//a[@href]", 2, "(//a[@href])[3]"},
}

// TestAt checks the translation from zero-based and negative indices to
// 1-based XPath positions.
func TestAt(t *testing.T) {
	for _, tt := range atTests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := At(tt.path, tt.index); got != tt.want {
				t.Errorf("At(%q, %d) = %s, want %s\n", tt.path, tt.index, got, tt.want)
			}
		})
	}
}

func TestLowerCase(t *testing.T) {
	want := `translate(@id,"ABCDEFGHIJKLMNOPQRSTUVWXYZ","abcdefghijklmnopqrstuvwxyz")`
	if got := LowerCase("@id"); got != want {
		t.Errorf("LowerCase(@id) = %s, want %s\n", got, want)
	}
}

func TestID(t *testing.T) {
	if got, want := ID("foo"), `id("foo")`; got != want {
		t.Errorf("ID(foo) = %s, want %s\n", got, want)
	}
	// Values pass through Quote, so quote characters cannot break out of
	// the literal.
	if got, want := ID(`o"k`), `id('o"k')`; got != want {
		t.Errorf("ID(o\"k) = %s, want %s\n", got, want)
	}
}
