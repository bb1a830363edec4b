package lexer

// TokenType 表示 token 的类型
type TokenType int

const (
	// 特殊 token
	TOKEN_ILLEGAL TokenType = iota
	TOKEN_EOF
	TOKEN_COMMENT
	TOKEN_DOC_COMMENT // ///

	// 标识符和字面量
	TOKEN_IDENT
	TOKEN_INT
	TOKEN_FLOAT
	TOKEN_STRING
	TOKEN_CHAR

	// 宿主代码中出现、声明语法本身不关心的运算符
	TOKEN_OPERATOR

	TOKEN_ASSIGN    // =
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
	TOKEN_COLON     // :
	TOKEN_DOT       // .
	TOKEN_ELLIPSIS  // ...

	TOKEN_LPAREN   // (
	TOKEN_RPAREN   // )
	TOKEN_LBRACKET // [
	TOKEN_RBRACKET // ]
	TOKEN_LBRACE   // {
	TOKEN_RBRACE   // }

	// 关键字
	TOKEN_PACKAGE     // package
	TOKEN_IMPORT      // import
	TOKEN_ARENA       // arena
	TOKEN_MEANING     // meaning
	TOKEN_LET         // let
	TOKEN_REF         // ref
	TOKEN_FN          // fn
	TOKEN_OVERRIDE    // override
	TOKEN_CONSTRUCTOR // constructor
	TOKEN_SUPER       // super
)

// Token 表示一个词法单元
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
	Pos     int // 起始字节偏移
	End     int // 结束字节偏移（不含）
}

var keywords = map[string]TokenType{
	"package":     TOKEN_PACKAGE,
	"import":      TOKEN_IMPORT,
	"arena":       TOKEN_ARENA,
	"meaning":     TOKEN_MEANING,
	"let":         TOKEN_LET,
	"ref":         TOKEN_REF,
	"fn":          TOKEN_FN,
	"override":    TOKEN_OVERRIDE,
	"constructor": TOKEN_CONSTRUCTOR,
	"super":       TOKEN_SUPER,
}

// LookupIdent 查找标识符是否为关键字
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENT
}

// IsKeyword 判断 token 是否为关键字
func (t Token) IsKeyword() bool {
	return t.Type >= TOKEN_PACKAGE && t.Type <= TOKEN_SUPER
}

var tokenNames = map[TokenType]string{
	TOKEN_ILLEGAL:     "ILLEGAL",
	TOKEN_EOF:         "EOF",
	TOKEN_COMMENT:     "COMMENT",
	TOKEN_DOC_COMMENT: "DOC_COMMENT",
	TOKEN_IDENT:       "IDENT",
	TOKEN_INT:         "INT",
	TOKEN_FLOAT:       "FLOAT",
	TOKEN_STRING:      "STRING",
	TOKEN_CHAR:        "CHAR",
	TOKEN_OPERATOR:    "OPERATOR",
	TOKEN_ASSIGN:      "=",
	TOKEN_COMMA:       ",",
	TOKEN_SEMICOLON:   ";",
	TOKEN_COLON:       ":",
	TOKEN_DOT:         ".",
	TOKEN_ELLIPSIS:    "...",
	TOKEN_LPAREN:      "(",
	TOKEN_RPAREN:      ")",
	TOKEN_LBRACKET:    "[",
	TOKEN_RBRACKET:    "]",
	TOKEN_LBRACE:      "{",
	TOKEN_RBRACE:      "}",
	TOKEN_PACKAGE:     "package",
	TOKEN_IMPORT:      "import",
	TOKEN_ARENA:       "arena",
	TOKEN_MEANING:     "meaning",
	TOKEN_LET:         "let",
	TOKEN_REF:         "ref",
	TOKEN_FN:          "fn",
	TOKEN_OVERRIDE:    "override",
	TOKEN_CONSTRUCTOR: "constructor",
	TOKEN_SUPER:       "super",
}

// TokenTypeName 返回 token 类型的名称
func TokenTypeName(t TokenType) string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}
