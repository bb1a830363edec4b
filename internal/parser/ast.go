package parser

// Pos 源码位置
type Pos struct {
	Line   int
	Column int
}

// File 表示一个声明文件
type File struct {
	Name     string // 文件路径，仅用于诊断
	Package  string
	Imports  []*Import
	Arena    string // 生成的 Arena 别名，为空时使用配置
	Meanings []*MeaningDecl
}

// Import 表示一个导入项
type Import struct {
	Pos
	Alias string // 可选别名
	Path  string // 不带引号的导入路径
}

// MeaningDecl 表示 meaning 声明
type MeaningDecl struct {
	Pos
	Name         string
	Parent       string // 为空表示根 meaning
	ParentPos    Pos
	Doc          string
	Fields       []*FieldDecl
	Constructors []*ConstructorDecl // 合法输入至多一个，多余的由编译阶段报告
	Methods      []*MethodDecl
}

// FieldDecl 表示 let 字段声明
type FieldDecl struct {
	Pos
	Name    string
	Ref     bool
	Type    string // Go 类型片段
	Default string // Go 表达式片段，为空表示零值
}

// ConstructorDecl 表示构造器声明
type ConstructorDecl struct {
	Pos
	TypeParams string // 不含方括号，例如 "T any"
	Params     string // 不含圆括号
	HasSuper   bool
	SuperArgs  string // super(...) 中的实参
	Body       string // 去掉 super 调用后的函数体
}

// MethodDecl 表示 fn 方法声明
type MethodDecl struct {
	Pos
	Name       string
	Override   bool
	Doc        string
	TypeParams string
	Params     string
	Results    string
	Body       string
}

// Error 语法错误
type Error struct {
	Pos
	Msg string
}
