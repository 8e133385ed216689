package xpath

import "testing"

const (
	lowerID  = `translate(@id,"ABCDEFGHIJKLMNOPQRSTUVWXYZ","abcdefghijklmnopqrstuvwxyz")`
	lowerFoo = `translate("FOO","ABCDEFGHIJKLMNOPQRSTUVWXYZ","abcdefghijklmnopqrstuvwxyz")`
)

type predicateTestcase struct {
	name string
	got  string
	want string
}

var predicateTests = []predicateTestcase{
	{"eq", ByID.Eq("foo"), `//*[@id="foo"]`},
	{"eq with context", ByID.Eq("foo", "//div"), `//div[@id="foo"]`},
	{"eq empty value", ByID.Eq(""), `//*[@id=""]`},
	{"exists", ByID.Exists(), `//*[@id]`},
	{"exists with context", ByID.Exists("//input"), `//input[@id]`},
	{"contains", ByID.Contains("foo"), `//*[contains(@id,"foo")]`},
	{"contains with context", ByID.Contains("foo", `id("bar")`), `id("bar")[contains(@id,"foo")]`},
	{"case-insensitive eq", ByID.EqI("FOO"), `//*[` + lowerID + `=` + lowerFoo + `]`},
	{"case-insensitive contains", ByID.ContainsI("FOO"), `//*[contains(` + lowerID + `,` + lowerFoo + `)]`},
	{"negated eq", ByID.NotEq("foo"), `//*[not(@id="foo")]`},
	{"negated contains", ByID.NotContains("foo"), `//*[not(contains(@id,"foo"))]`},
	{"negated case-insensitive eq", ByID.NotEqI("FOO"), `//*[not(` + lowerID + `=` + lowerFoo + `)]`},
	{"negated case-insensitive contains", ByID.NotContainsI("FOO"), `//*[not(contains(` + lowerID + `,` + lowerFoo + `))]`},
	{"text node value", ByText.Eq("hello"), `//*[text()="hello"]`},
	{"class contains", ByClass.Contains("active"), `//*[contains(@class,"active")]`},
	{"name with both quote kinds", ByName.Eq(`mixed"quo'te`), `//*[@name=concat("mixed", '"', "quo'te")]`},
	{"custom attribute", NewAttribute("@data-test").Eq("ok"), `//*[@data-test="ok"]`},
}

// TestPredicateGeneration covers the base generator and all eight variant
// shapes, plus the omitted-value existence mode.
func TestPredicateGeneration(t *testing.T) {
	for _, tt := range predicateTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.got != tt.want {
				t.Errorf("got %s, want %s\n", tt.got, tt.want)
			}
		})
	}
}

// TestPrebuiltKeys pins down the keys of the ten pre-built generators.
func TestPrebuiltKeys(t *testing.T) {
	wantKeys := map[string]Attribute{
		"@id":    ByID,
		"@class": ByClass,
		"@name":  ByName,
		"@title": ByTitle,
		"@style": ByStyle,
		"@href":  ByHref,
		"@type":  ByType,
		"@value": ByValue,
		"@src":   BySrc,
		"text()": ByText,
	}
	for key, attr := range wantKeys {
		if attr.Key() != key {
			t.Errorf("expected generator key %s, got %s\n", key, attr.Key())
		}
	}
}
