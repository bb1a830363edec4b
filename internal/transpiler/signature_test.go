package transpiler

import (
	"testing"

	"github.com/kr/pretty"
)

func TestParseSignature(t *testing.T) {
	tests := []struct {
		params   string
		names    []string
		variadic bool
		unnamed  bool
		args     string
	}{
		{"", nil, false, false, ""},
		{"a int", []string{"a"}, false, false, "a"},
		{"a, b int, xs ...string", []string{"a", "b", "xs"}, true, false, "a, b, xs..."},
		{"f func(int) (string, error), m map[string][]int", []string{"f", "m"}, false, false, "f, m"},
		{"int, string", nil, false, true, ""},
		{"_ int, x T", []string{"_", "x"}, false, true, "_, x"},
	}
	for _, tt := range tests {
		sig, err := parseSignature(tt.params)
		if err != nil {
			t.Errorf("parseSignature(%q): %v", tt.params, err)
			continue
		}
		if diff := pretty.Diff(sig.names, tt.names); len(diff) > 0 {
			t.Errorf("parseSignature(%q) names diff: %v", tt.params, diff)
		}
		if sig.variadic != tt.variadic || sig.unnamed != tt.unnamed {
			t.Errorf("parseSignature(%q) = variadic %v unnamed %v", tt.params, sig.variadic, sig.unnamed)
		}
		if got := sig.args(); got != tt.args {
			t.Errorf("parseSignature(%q).args() = %q, want %q", tt.params, got, tt.args)
		}
	}

	for _, bad := range []string{"a int,, b", "self int", "meaning int", "a int)"} {
		if _, err := parseSignature(bad); err == nil {
			t.Errorf("parseSignature(%q) should fail", bad)
		}
	}
}

func TestParseTypeParams(t *testing.T) {
	names, err := parseTypeParams("K comparable, V any")
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(names, []string{"K", "V"}); len(diff) > 0 {
		t.Errorf("names diff: %v", diff)
	}

	if names, err := parseTypeParams(""); err != nil || names != nil {
		t.Errorf("empty list = %v, %v", names, err)
	}
	if _, err := parseTypeParams("T"); err == nil {
		t.Error("a type parameter without a constraint should fail")
	}
}

func TestSignatureTypes(t *testing.T) {
	tests := []struct {
		params string
		want   []string
	}{
		{"", nil},
		{"a, b int", []string{"int", "int"}},
		{"k  map[ string ]int, xs ...  string", []string{"map[string]int", "...string"}},
		{"f func(int) (string, error)", []string{"func(int) (string, error)"}},
		{"int, *T", []string{"int", "*T"}},
	}
	for _, tt := range tests {
		sig, err := parseSignature(tt.params)
		if err != nil {
			t.Errorf("parseSignature(%q): %v", tt.params, err)
			continue
		}
		if diff := pretty.Diff(sig.types, tt.want); len(diff) > 0 {
			t.Errorf("parseSignature(%q) types diff: %v", tt.params, diff)
		}
	}
}

func TestParseResults(t *testing.T) {
	tests := []struct {
		results string
		want    []string
	}{
		{"", nil},
		{"string", []string{"string"}},
		{"(int, error)", []string{"int", "error"}},
		{"(n, m int, err error)", []string{"int", "int", "error"}},
		{"[]map[string]*T", []string{"[]map[string]*T"}},
	}
	for _, tt := range tests {
		got, err := parseResults(tt.results)
		if err != nil {
			t.Errorf("parseResults(%q): %v", tt.results, err)
			continue
		}
		if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
			t.Errorf("parseResults(%q) diff: %v", tt.results, diff)
		}
	}
	if _, err := parseResults("(int,"); err == nil {
		t.Error("parseResults should reject an unbalanced list")
	}
}

func TestFuncSignature(t *testing.T) {
	tests := []struct {
		params, results []string
		want            string
	}{
		{nil, nil, "()"},
		{[]string{"int"}, []string{"int"}, "(int) int"},
		{[]string{"string", "...int"}, []string{"int", "error"}, "(string, ...int) (int, error)"},
	}
	for _, tt := range tests {
		if got := funcSignature(tt.params, tt.results); got != tt.want {
			t.Errorf("funcSignature(%v, %v) = %q, want %q", tt.params, tt.results, got, tt.want)
		}
	}
}
