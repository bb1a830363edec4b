package parser

import (
	"strconv"
	"strings"

	"github.com/tangzhangming/meantree/internal/i18n"
	"github.com/tangzhangming/meantree/internal/lexer"
)

// Parser 语法分析器
type Parser struct {
	l         *lexer.Lexer
	src       string
	curToken  lexer.Token
	peekToken lexer.Token

	// curDoc/peekDoc 是紧挨在对应 token 之前的 /// 注释
	curDoc  []string
	peekDoc []string

	errors []Error
}

// New 创建一个新的语法分析器
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, src: l.Input()}
	// 读取两个 token，初始化 curToken 和 peekToken
	p.nextToken()
	p.nextToken()
	return p
}

// ParseString 解析一段声明源码
func ParseString(name, src string) (*File, []Error) {
	p := New(lexer.New(src))
	f := p.ParseFile()
	f.Name = name
	return f, p.Errors()
}

// Errors 返回解析过程中的错误
func (p *Parser) Errors() []Error {
	return p.errors
}

// nextToken 前进到下一个 token，普通注释被跳过，文档注释挂到下一个 token 上
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.curDoc = p.peekDoc
	p.peekDoc = nil
	p.peekToken = p.l.NextToken()
	for p.peekToken.Type == lexer.TOKEN_COMMENT || p.peekToken.Type == lexer.TOKEN_DOC_COMMENT {
		if p.peekToken.Type == lexer.TOKEN_DOC_COMMENT {
			p.peekDoc = append(p.peekDoc, p.peekToken.Literal)
		} else {
			p.peekDoc = nil
		}
		p.peekToken = p.l.NextToken()
	}
}

// curTokenIs 检查当前 token 类型
func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

// peekTokenIs 检查下一个 token 类型
func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek 期望下一个 token 类型并前进
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

// peekError 记录期望错误
func (p *Parser) peekError(t lexer.TokenType) {
	p.errorAt(p.peekToken, i18n.T(i18n.ErrExpectedToken, lexer.TokenTypeName(t), describe(p.peekToken)))
}

// errorAt 在 token 处记录错误
func (p *Parser) errorAt(tok lexer.Token, msg string) {
	p.errors = append(p.errors, Error{Pos: posOf(tok), Msg: msg})
}

func posOf(tok lexer.Token) Pos {
	return Pos{Line: tok.Line, Column: tok.Column}
}

func describe(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TOKEN_EOF:
		return "EOF"
	case lexer.TOKEN_IDENT, lexer.TOKEN_OPERATOR, lexer.TOKEN_ILLEGAL:
		return strconv.Quote(tok.Literal)
	}
	return lexer.TokenTypeName(tok.Type)
}

// ParseFile 解析整个文件
func (p *Parser) ParseFile() *File {
	file := &File{}

	for !p.curTokenIs(lexer.TOKEN_EOF) {
		switch p.curToken.Type {
		case lexer.TOKEN_PACKAGE:
			if p.expectPeek(lexer.TOKEN_IDENT) {
				file.Package = p.curToken.Literal
			}
			p.nextToken()
			p.skipSemicolon()
		case lexer.TOKEN_IMPORT:
			file.Imports = append(file.Imports, p.parseImportDecl()...)
		case lexer.TOKEN_ARENA:
			if p.expectPeek(lexer.TOKEN_IDENT) {
				file.Arena = p.curToken.Literal
			}
			p.nextToken()
			p.skipSemicolon()
		case lexer.TOKEN_MEANING:
			if m := p.parseMeaningDecl(); m != nil {
				file.Meanings = append(file.Meanings, m)
			}
		case lexer.TOKEN_SEMICOLON:
			p.nextToken()
		default:
			p.errorAt(p.curToken, i18n.T(i18n.ErrUnexpectedTopLevel, describe(p.curToken)))
			p.syncTopLevel()
		}
	}

	return file
}

// skipSemicolon 跳过可选的分号
func (p *Parser) skipSemicolon() {
	if p.curTokenIs(lexer.TOKEN_SEMICOLON) {
		p.nextToken()
	}
}

// syncTopLevel 出错后跳到下一个顶层关键字
func (p *Parser) syncTopLevel() {
	p.nextToken()
	for !p.curTokenIs(lexer.TOKEN_EOF) {
		switch p.curToken.Type {
		case lexer.TOKEN_PACKAGE, lexer.TOKEN_IMPORT, lexer.TOKEN_ARENA, lexer.TOKEN_MEANING:
			return
		}
		p.nextToken()
	}
}

// parseImportDecl 解析 import 声明
// 支持的语法:
// - import "fmt"
// - import str "strings"
// - import ( "fmt"; str "strings" )
func (p *Parser) parseImportDecl() []*Import {
	p.nextToken()
	if !p.curTokenIs(lexer.TOKEN_LPAREN) {
		imp := p.parseImportSpec()
		p.skipSemicolon()
		if imp == nil {
			return nil
		}
		return []*Import{imp}
	}

	var imports []*Import
	p.nextToken()
	for !p.curTokenIs(lexer.TOKEN_RPAREN) && !p.curTokenIs(lexer.TOKEN_EOF) {
		if p.curTokenIs(lexer.TOKEN_SEMICOLON) {
			p.nextToken()
			continue
		}
		imp := p.parseImportSpec()
		if imp == nil {
			p.syncTopLevel()
			return imports
		}
		imports = append(imports, imp)
	}
	if p.curTokenIs(lexer.TOKEN_EOF) {
		p.errorAt(p.curToken, i18n.T(i18n.ErrUnterminated, "import"))
		return imports
	}
	p.nextToken() // 消费 )
	return imports
}

// parseImportSpec 解析单个导入项，结束时 curToken 位于导入项之后
func (p *Parser) parseImportSpec() *Import {
	imp := &Import{Pos: posOf(p.curToken)}
	if p.curTokenIs(lexer.TOKEN_IDENT) || p.curTokenIs(lexer.TOKEN_DOT) {
		imp.Alias = p.curToken.Literal
		p.nextToken()
	}
	if !p.curTokenIs(lexer.TOKEN_STRING) {
		p.errorAt(p.curToken, i18n.T(i18n.ErrExpectedToken, lexer.TokenTypeName(lexer.TOKEN_STRING), describe(p.curToken)))
		return nil
	}
	path, err := strconv.Unquote(p.curToken.Literal)
	if err != nil {
		path = strings.Trim(p.curToken.Literal, "\"`")
	}
	imp.Path = path
	p.nextToken()
	return imp
}

// parseMeaningDecl 解析 meaning Name[: Parent] { members }
func (p *Parser) parseMeaningDecl() *MeaningDecl {
	decl := &MeaningDecl{Pos: posOf(p.curToken), Doc: strings.Join(p.curDoc, "\n")}

	if !p.expectPeek(lexer.TOKEN_IDENT) {
		p.syncTopLevel()
		return nil
	}
	decl.Name = p.curToken.Literal

	if p.peekTokenIs(lexer.TOKEN_COLON) {
		p.nextToken()
		if !p.expectPeek(lexer.TOKEN_IDENT) {
			p.syncTopLevel()
			return nil
		}
		decl.Parent = p.curToken.Literal
		decl.ParentPos = posOf(p.curToken)
	}

	if !p.expectPeek(lexer.TOKEN_LBRACE) {
		p.syncTopLevel()
		return nil
	}
	p.nextToken()

	for !p.curTokenIs(lexer.TOKEN_RBRACE) {
		if p.curTokenIs(lexer.TOKEN_EOF) || p.curTokenIs(lexer.TOKEN_MEANING) {
			p.errorAt(p.curToken, i18n.T(i18n.ErrUnterminated, "meaning "+decl.Name))
			return decl
		}
		if !p.parseMember(decl) {
			p.syncMember()
		}
	}
	p.nextToken() // 消费 }
	return decl
}

// syncMember 出错后跳到下一个成员或 meaning 结尾
func (p *Parser) syncMember() {
	if p.curTokenIs(lexer.TOKEN_RBRACE) || p.curTokenIs(lexer.TOKEN_EOF) {
		return
	}
	p.nextToken()
	depth := 0
	for !p.curTokenIs(lexer.TOKEN_EOF) {
		switch p.curToken.Type {
		case lexer.TOKEN_LBRACE:
			depth++
		case lexer.TOKEN_RBRACE:
			if depth == 0 {
				return
			}
			depth--
			if depth == 0 {
				p.nextToken()
				return
			}
		case lexer.TOKEN_SEMICOLON:
			if depth == 0 {
				p.nextToken()
				return
			}
		case lexer.TOKEN_LET, lexer.TOKEN_FN, lexer.TOKEN_OVERRIDE, lexer.TOKEN_CONSTRUCTOR, lexer.TOKEN_MEANING:
			if depth == 0 {
				return
			}
		}
		p.nextToken()
	}
}

// parseMember 解析一个成员，失败时返回 false
func (p *Parser) parseMember(decl *MeaningDecl) bool {
	switch p.curToken.Type {
	case lexer.TOKEN_LET:
		f := p.parseField()
		if f == nil {
			return false
		}
		decl.Fields = append(decl.Fields, f)
	case lexer.TOKEN_CONSTRUCTOR:
		c := p.parseConstructor()
		if c == nil {
			return false
		}
		decl.Constructors = append(decl.Constructors, c)
	case lexer.TOKEN_FN, lexer.TOKEN_OVERRIDE:
		m := p.parseMethod()
		if m == nil {
			return false
		}
		decl.Methods = append(decl.Methods, m)
	case lexer.TOKEN_SEMICOLON:
		p.nextToken()
	default:
		p.errorAt(p.curToken, i18n.T(i18n.ErrUnexpectedMember, describe(p.curToken)))
		return false
	}
	return true
}

// parseField 解析 let [ref] name: TYPE [= EXPR];
func (p *Parser) parseField() *FieldDecl {
	field := &FieldDecl{Pos: posOf(p.curToken)}
	if p.peekTokenIs(lexer.TOKEN_REF) {
		p.nextToken()
		field.Ref = true
	}
	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}
	field.Name = p.curToken.Literal
	field.Pos = posOf(p.curToken)
	if !p.expectPeek(lexer.TOKEN_COLON) {
		return nil
	}
	p.nextToken()

	typ, stop, ok := p.captureUntil(lexer.TOKEN_ASSIGN, lexer.TOKEN_SEMICOLON)
	if !ok {
		return nil
	}
	if typ == "" {
		p.errorAt(stop, i18n.T(i18n.ErrMissingFieldType, field.Name))
		return nil
	}
	field.Type = typ

	if stop.Type == lexer.TOKEN_ASSIGN {
		p.nextToken()
		def, end, ok := p.captureUntil(lexer.TOKEN_SEMICOLON)
		if !ok {
			return nil
		}
		if def == "" {
			p.errorAt(end, i18n.T(i18n.ErrMissingFieldInit, field.Name))
			return nil
		}
		field.Default = def
	}
	p.nextToken() // 消费 ;
	return field
}

// captureUntil 从 curToken 开始截取原始文本，直到深度为 0 处出现任一终止 token。
// 结束时 curToken 为终止 token。
func (p *Parser) captureUntil(stops ...lexer.TokenType) (string, lexer.Token, bool) {
	start := p.curToken.Pos
	depth := 0
	for {
		tok := p.curToken
		if tok.Type == lexer.TOKEN_EOF {
			p.errorAt(tok, i18n.T(i18n.ErrExpectedToken, lexer.TokenTypeName(stops[len(stops)-1]), "EOF"))
			return "", tok, false
		}
		if depth == 0 {
			for _, s := range stops {
				if tok.Type == s {
					return strings.TrimSpace(p.src[start:tok.Pos]), tok, true
				}
			}
		}
		switch tok.Type {
		case lexer.TOKEN_LPAREN, lexer.TOKEN_LBRACKET, lexer.TOKEN_LBRACE:
			depth++
		case lexer.TOKEN_RPAREN, lexer.TOKEN_RBRACKET, lexer.TOKEN_RBRACE:
			if depth == 0 {
				p.errorAt(tok, i18n.T(i18n.ErrExpectedToken, lexer.TokenTypeName(stops[len(stops)-1]), describe(tok)))
				return "", tok, false
			}
			depth--
		}
		p.nextToken()
	}
}

// captureGroup 截取 curToken 处的成对括号内部文本，结束时 curToken 为右括号
func (p *Parser) captureGroup(open, close lexer.TokenType) (string, bool) {
	if !p.curTokenIs(open) {
		p.errorAt(p.curToken, i18n.T(i18n.ErrExpectedToken, lexer.TokenTypeName(open), describe(p.curToken)))
		return "", false
	}
	p.nextToken()
	inner, _, ok := p.captureUntil(close)
	return inner, ok
}

// parseConstructor 解析 constructor[TP](params) { [super(args);] body }
func (p *Parser) parseConstructor() *ConstructorDecl {
	ctor := &ConstructorDecl{Pos: posOf(p.curToken)}
	p.nextToken()

	if p.curTokenIs(lexer.TOKEN_LBRACKET) {
		tp, ok := p.captureGroup(lexer.TOKEN_LBRACKET, lexer.TOKEN_RBRACKET)
		if !ok {
			return nil
		}
		ctor.TypeParams = tp
		p.nextToken()
	}

	params, ok := p.captureGroup(lexer.TOKEN_LPAREN, lexer.TOKEN_RPAREN)
	if !ok {
		return nil
	}
	ctor.Params = params
	if !p.expectPeek(lexer.TOKEN_LBRACE) {
		return nil
	}
	p.nextToken()

	if p.curTokenIs(lexer.TOKEN_SUPER) {
		ctor.HasSuper = true
		p.nextToken()
		args, ok := p.captureGroup(lexer.TOKEN_LPAREN, lexer.TOKEN_RPAREN)
		if !ok {
			return nil
		}
		ctor.SuperArgs = args
		p.nextToken()
		p.skipSemicolon()
	}

	body, _, ok := p.captureUntil(lexer.TOKEN_RBRACE)
	if !ok {
		return nil
	}
	ctor.Body = body
	p.nextToken() // 消费 }
	return ctor
}

// parseMethod 解析 [override] fn Name[TP](params) results { body }
func (p *Parser) parseMethod() *MethodDecl {
	method := &MethodDecl{Pos: posOf(p.curToken), Doc: strings.Join(p.curDoc, "\n")}
	if p.curTokenIs(lexer.TOKEN_OVERRIDE) {
		method.Override = true
		if !p.expectPeek(lexer.TOKEN_FN) {
			return nil
		}
		if method.Doc == "" {
			method.Doc = strings.Join(p.curDoc, "\n")
		}
	}
	if !p.expectPeek(lexer.TOKEN_IDENT) {
		return nil
	}
	method.Name = p.curToken.Literal
	method.Pos = posOf(p.curToken)
	p.nextToken()

	if p.curTokenIs(lexer.TOKEN_LBRACKET) {
		tp, ok := p.captureGroup(lexer.TOKEN_LBRACKET, lexer.TOKEN_RBRACKET)
		if !ok {
			return nil
		}
		method.TypeParams = tp
		p.nextToken()
	}

	params, ok := p.captureGroup(lexer.TOKEN_LPAREN, lexer.TOKEN_RPAREN)
	if !ok {
		return nil
	}
	method.Params = params
	p.nextToken()

	results, _, ok := p.captureUntil(lexer.TOKEN_LBRACE)
	if !ok {
		return nil
	}
	method.Results = results
	p.nextToken()

	body, _, ok := p.captureUntil(lexer.TOKEN_RBRACE)
	if !ok {
		return nil
	}
	method.Body = body
	p.nextToken() // 消费 }
	return method
}
