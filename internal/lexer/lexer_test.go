package lexer

import (
	"testing"

	"github.com/kr/pretty"
)

func TestNextTokenDeclaration(t *testing.T) {
	input := `meaning Circle: Shape {
    let ref name: map[string]int = nil;
    /// Area computes the area.
    override fn Area() float64 { return x <<= 2 }
}`
	type tk struct {
		Type    TokenType
		Literal string
	}
	want := []tk{
		{TOKEN_MEANING, "meaning"},
		{TOKEN_IDENT, "Circle"},
		{TOKEN_COLON, ":"},
		{TOKEN_IDENT, "Shape"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_LET, "let"},
		{TOKEN_REF, "ref"},
		{TOKEN_IDENT, "name"},
		{TOKEN_COLON, ":"},
		{TOKEN_IDENT, "map"},
		{TOKEN_LBRACKET, "["},
		{TOKEN_IDENT, "string"},
		{TOKEN_RBRACKET, "]"},
		{TOKEN_IDENT, "int"},
		{TOKEN_ASSIGN, "="},
		{TOKEN_IDENT, "nil"},
		{TOKEN_SEMICOLON, ";"},
		{TOKEN_DOC_COMMENT, "Area computes the area."},
		{TOKEN_OVERRIDE, "override"},
		{TOKEN_FN, "fn"},
		{TOKEN_IDENT, "Area"},
		{TOKEN_LPAREN, "("},
		{TOKEN_RPAREN, ")"},
		{TOKEN_IDENT, "float64"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_IDENT, "return"},
		{TOKEN_IDENT, "x"},
		{TOKEN_OPERATOR, "<<="},
		{TOKEN_INT, "2"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_EOF, ""},
	}

	var got []tk
	for _, tok := range Tokenize(input) {
		got = append(got, tk{tok.Type, tok.Literal})
	}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("token diff: %v", diff)
	}
}

func TestTokenPositions(t *testing.T) {
	input := "let x: int;\n  fn"
	toks := Tokenize(input)

	x := toks[1]
	if x.Line != 1 || x.Column != 5 || input[x.Pos:x.End] != "x" {
		t.Errorf("x at %d:%d [%d:%d]", x.Line, x.Column, x.Pos, x.End)
	}
	fn := toks[5]
	if fn.Type != TOKEN_FN || fn.Line != 2 || fn.Column != 3 {
		t.Errorf("fn = %v at %d:%d", TokenTypeName(fn.Type), fn.Line, fn.Column)
	}
	if input[fn.Pos:fn.End] != "fn" {
		t.Errorf("fn slice = %q", input[fn.Pos:fn.End])
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
		lit   string
	}{
		{`"a\"b"`, TOKEN_STRING, `"a\"b"`},
		{"`raw\nstr`", TOKEN_STRING, "`raw\nstr`"},
		{`'\n'`, TOKEN_CHAR, `'\n'`},
		{"0x1F", TOKEN_INT, "0x1F"},
		{"1_000", TOKEN_INT, "1_000"},
		{"3.14", TOKEN_FLOAT, "3.14"},
		{"1e9", TOKEN_FLOAT, "1e9"},
		{"...", TOKEN_ELLIPSIS, "..."},
		{"&^", TOKEN_OPERATOR, "&^"},
		{"/* block */", TOKEN_COMMENT, "/* block */"},
		{"// line", TOKEN_COMMENT, "// line"},
		{"@", TOKEN_ILLEGAL, "@"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := New(tt.input).NextToken()
			if tok.Type != tt.typ || tok.Literal != tt.lit {
				t.Errorf("got = %s %q, want %s %q", TokenTypeName(tok.Type), tok.Literal, TokenTypeName(tt.typ), tt.lit)
			}
		})
	}
}

func TestLookupIdent(t *testing.T) {
	if LookupIdent("constructor") != TOKEN_CONSTRUCTOR {
		t.Error("constructor must be a keyword")
	}
	if LookupIdent("func") != TOKEN_IDENT {
		t.Error("func is host code, not a keyword")
	}
	if !(Token{Type: TOKEN_SUPER}).IsKeyword() || (Token{Type: TOKEN_IDENT}).IsKeyword() {
		t.Error("IsKeyword mismatch")
	}
}
