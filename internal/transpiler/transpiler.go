package transpiler

import (
	"fmt"
	"strings"

	"github.com/tangzhangming/meantree/internal/config"
	"github.com/tangzhangming/meantree/internal/i18n"
	"github.com/tangzhangming/meantree/internal/logging"
	"github.com/tangzhangming/meantree/internal/parser"
	"github.com/tangzhangming/meantree/internal/symbol"
)

// Transpiler 把一个声明文件编译为 Go 代码
type Transpiler struct {
	config  *config.Config
	factory *symbol.Factory

	file  *parser.File
	pkg   string
	arena string

	meanings   *symbol.SharedMap[string, symbol.Symbol] // 按声明顺序
	decls      map[symbol.Symbol]*parser.MeaningDecl
	ctors      map[symbol.Symbol]*constructor
	methods    map[symbol.Symbol]*method // 方法符号 -> 定义
	overrides  map[symbol.Symbol][]*override
	overridden map[symbol.Symbol]map[string]bool
	members    map[symbol.Symbol]map[string]memberKind // 生成到句柄类型上的成员名

	diags []logging.Diagnostic
}

// constructor 是解析后的构造器，没有声明时为合成的空构造器
type constructor struct {
	decl       *parser.ConstructorDecl
	params     *signature
	typeParams []string
}

// method 是 meaning 自己定义的方法或一个覆盖的声明
type method struct {
	decl    *parser.MethodDecl
	params  *signature
	results []string
}

// override 是后代对祖先方法的覆盖
type override struct {
	decl    *parser.MethodDecl
	base    symbol.Symbol // 被覆盖的方法
	meaning symbol.Symbol // 覆盖者
}

// GeneratedFile 是一个生成的 Go 文件
type GeneratedFile struct {
	Filename string
	Content  []byte
}

// New 创建一个新的转译器，cfg 为 nil 时使用默认配置
func New(cfg *config.Config) *Transpiler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Transpiler{config: cfg}
}

// GetConfig 获取项目配置
func (t *Transpiler) GetConfig() *config.Config {
	return t.config
}

// reset 为新文件重建符号表
func (t *Transpiler) reset(file *parser.File) {
	if t.factory != nil {
		t.factory.Release()
	}
	t.factory = symbol.NewFactory()
	t.file = file
	t.pkg = file.Package
	if t.pkg == "" {
		t.pkg = t.config.Project.Package
	}
	t.arena = file.Arena
	if t.arena == "" {
		t.arena = t.config.Project.Arena
	}
	t.meanings = symbol.NewSharedMap[string, symbol.Symbol]()
	t.decls = make(map[symbol.Symbol]*parser.MeaningDecl)
	t.ctors = make(map[symbol.Symbol]*constructor)
	t.methods = make(map[symbol.Symbol]*method)
	t.overrides = make(map[symbol.Symbol][]*override)
	t.overridden = make(map[symbol.Symbol]map[string]bool)
	t.members = make(map[symbol.Symbol]map[string]memberKind)
	t.diags = nil
}

// Analyze 构建符号表并返回诊断，不生成代码
func (t *Transpiler) Analyze(file *parser.File) []logging.Diagnostic {
	t.reset(file)
	t.collectMeanings()
	t.resolveInheritance()
	t.checkGeneratedNames()
	for _, m := range t.analysisOrder() {
		t.reserveMembers(m)
		t.collectFields(m)
		t.collectConstructor(m)
		t.collectMethods(m)
	}
	return t.diags
}

// TranspileFile 编译单个文件，有诊断时返回 *DiagnosticsError
func (t *Transpiler) TranspileFile(file *parser.File) ([]byte, error) {
	if diags := t.Analyze(file); logging.CountErrors(diags) > 0 {
		return nil, &DiagnosticsError{Diagnostics: diags}
	}
	gen := NewCodeGen(t)
	return gen.Generate()
}

// Meaning 按名称查找当前文件中的 meaning
func (t *Transpiler) Meaning(name string) (symbol.Symbol, bool) {
	if t.meanings == nil {
		return symbol.Symbol{}, false
	}
	return t.meanings.Get(name)
}

// Transpile 解析并编译一段 .mt 源码
func Transpile(name, source string, cfg *config.Config) ([]byte, error) {
	file, errs := parser.ParseString(name, source)
	if len(errs) > 0 {
		return nil, &ParseError{File: name, Errors: errs}
	}
	return New(cfg).TranspileFile(file)
}

// report 记录一条诊断
func (t *Transpiler) report(pos parser.Pos, key string, args ...any) {
	t.diags = append(t.diags, logging.Diagnostic{
		File:    t.file.Name,
		Line:    pos.Line,
		Column:  pos.Column,
		Message: i18n.T(key, args...),
	})
}

// ParseError 解析错误
type ParseError struct {
	File   string
	Errors []parser.Error
}

// Diagnostics 把语法错误转换为诊断
func (e *ParseError) Diagnostics() []logging.Diagnostic {
	diags := make([]logging.Diagnostic, 0, len(e.Errors))
	for _, pe := range e.Errors {
		diags = append(diags, logging.Diagnostic{File: e.File, Line: pe.Line, Column: pe.Column, Message: pe.Msg})
	}
	return diags
}

func (e *ParseError) Error() string {
	if len(e.Errors) == 0 {
		return "parse error"
	}
	return e.Diagnostics()[0].String()
}

// DiagnosticsError 编译阶段发现的问题
type DiagnosticsError struct {
	Diagnostics []logging.Diagnostic
}

func (e *DiagnosticsError) Error() string {
	switch len(e.Diagnostics) {
	case 0:
		return "transpile error"
	case 1:
		return e.Diagnostics[0].String()
	}
	var sb strings.Builder
	sb.WriteString(e.Diagnostics[0].String())
	fmt.Fprintf(&sb, " (and %d more)", len(e.Diagnostics)-1)
	return sb.String()
}
