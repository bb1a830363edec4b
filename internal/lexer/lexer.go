package lexer

import (
	"strings"
	"unicode"
)

// Lexer 词法分析器
type Lexer struct {
	input   string
	pos     int  // 当前位置
	readPos int  // 下一个读取位置
	ch      byte // 当前字符
	line    int  // 当前行号
	column  int  // 当前列号
}

// New 创建一个新的词法分析器
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// Input 返回源文本，供语法分析器截取原始片段
func (l *Lexer) Input() string {
	return l.input
}

// readChar 读取下一个字符
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++
}

// peekChar 查看下一个字符但不移动位置
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// 多字符运算符，按长度从长到短匹配
var operators = []string{
	"<<=", ">>=", "&^=", "&&", "||", "<-", "++", "--", "==", "!=", "<=", ">=",
	":=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "&^",
}

var singles = map[byte]TokenType{
	'=': TOKEN_ASSIGN,
	',': TOKEN_COMMA,
	';': TOKEN_SEMICOLON,
	':': TOKEN_COLON,
	'.': TOKEN_DOT,
	'(': TOKEN_LPAREN,
	')': TOKEN_RPAREN,
	'[': TOKEN_LBRACKET,
	']': TOKEN_RBRACKET,
	'{': TOKEN_LBRACE,
	'}': TOKEN_RBRACE,
}

// NextToken 获取下一个 token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Line: l.line, Column: l.column, Pos: l.pos}

	switch {
	case l.ch == 0:
		tok.Type = TOKEN_EOF
		tok.Pos = len(l.input)
		tok.End = len(l.input)
		return tok
	case l.ch == '/' && l.peekChar() == '/':
		tok.Type = TOKEN_COMMENT
		tok.Literal = l.readLineComment()
		if strings.HasPrefix(tok.Literal, "///") {
			tok.Type = TOKEN_DOC_COMMENT
			tok.Literal = strings.TrimSpace(strings.TrimPrefix(tok.Literal, "///"))
		}
	case l.ch == '/' && l.peekChar() == '*':
		tok.Type = TOKEN_COMMENT
		tok.Literal = l.readBlockComment()
	case l.ch == '"':
		tok.Type = TOKEN_STRING
		tok.Literal = l.readQuoted('"')
	case l.ch == '\'':
		tok.Type = TOKEN_CHAR
		tok.Literal = l.readQuoted('\'')
	case l.ch == '`':
		tok.Type = TOKEN_STRING
		tok.Literal = l.readRawString()
	case l.isLetter(l.ch):
		tok.Literal = l.readIdentifier()
		tok.Type = LookupIdent(tok.Literal)
	case l.isDigit(l.ch):
		tok.Literal, tok.Type = l.readNumber()
	case l.ch == '.' && l.peekChar() == '.':
		if strings.HasPrefix(l.input[l.pos:], "...") {
			tok.Type = TOKEN_ELLIPSIS
			tok.Literal = "..."
			l.advance(3)
		} else {
			tok.Type = TOKEN_ILLEGAL
			tok.Literal = ".."
			l.advance(2)
		}
	default:
		if op := l.matchOperator(); op != "" {
			tok.Type = TOKEN_OPERATOR
			tok.Literal = op
			l.advance(len(op))
		} else if t, ok := singles[l.ch]; ok {
			tok.Type = t
			tok.Literal = string(l.ch)
			l.readChar()
		} else if strings.IndexByte("+-*/%<>!&|^~?", l.ch) >= 0 {
			tok.Type = TOKEN_OPERATOR
			tok.Literal = string(l.ch)
			l.readChar()
		} else {
			tok.Type = TOKEN_ILLEGAL
			tok.Literal = string(l.ch)
			l.readChar()
		}
	}

	tok.End = l.pos
	return tok
}

// matchOperator 匹配当前位置的多字符运算符
func (l *Lexer) matchOperator() string {
	rest := l.input[l.pos:]
	for _, op := range operators {
		if strings.HasPrefix(rest, op) {
			return op
		}
	}
	return ""
}

// advance 前进 n 个字符
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		l.readChar()
	}
}

// skipWhitespace 跳过空白字符
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier 读取标识符
func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for l.isLetter(l.ch) || l.isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readNumber 读取数字（整数或浮点数）
func (l *Lexer) readNumber() (string, TokenType) {
	pos := l.pos
	tokenType := TOKEN_INT

	if l.ch == '0' && strings.IndexByte("xXbBoO", l.peekChar()) >= 0 {
		l.advance(2)
		for l.isHexDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		return l.input[pos:l.pos], TOKEN_INT
	}

	for l.isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}

	// 浮点数
	if l.ch == '.' && l.isDigit(l.peekChar()) {
		tokenType = TOKEN_FLOAT
		l.readChar()
		for l.isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}

	// 科学计数法
	if l.ch == 'e' || l.ch == 'E' {
		tokenType = TOKEN_FLOAT
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for l.isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[pos:l.pos], tokenType
}

// readQuoted 读取带转义的字符串或字符字面量，返回值包含引号
func (l *Lexer) readQuoted(quote byte) string {
	pos := l.pos
	l.readChar() // 跳过开头的引号
	for l.ch != quote && l.ch != 0 && l.ch != '\n' {
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}
	if l.ch == quote {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readRawString 读取反引号原始字符串
func (l *Lexer) readRawString() string {
	pos := l.pos
	l.readChar() // 跳过开头的 `
	for l.ch != '`' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == '`' {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readLineComment 读取单行注释
func (l *Lexer) readLineComment() string {
	pos := l.pos
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readBlockComment 读取块注释
func (l *Lexer) readBlockComment() string {
	pos := l.pos
	l.advance(2)
	for l.ch != 0 && !(l.ch == '*' && l.peekChar() == '/') {
		l.readChar()
	}
	if l.ch != 0 {
		l.advance(2)
	}
	return l.input[pos:l.pos]
}

// isLetter 判断是否为字母
func (l *Lexer) isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_' || ch >= 0x80
}

// isDigit 判断是否为数字
func (l *Lexer) isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isHexDigit 判断是否为十六进制数字
func (l *Lexer) isHexDigit(ch byte) bool {
	return l.isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// Tokenize 将输入字符串转换为 token 列表
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens
}
