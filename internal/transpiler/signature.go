package transpiler

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
)

// receiverName 是生成的方法和构造器中句柄参数的名字
const receiverName = "self"

// signature 是参数列表中可以转发的部分
type signature struct {
	names    []string
	types    []string // 每个参数一项，已规范化
	variadic bool
	unnamed  bool // 存在未命名或名为 _ 的参数
}

// args 返回转发用的实参列表，可变参数以 ... 展开
func (s *signature) args() string {
	if len(s.names) == 0 {
		return ""
	}
	out := strings.Join(s.names, ", ")
	if s.variadic {
		out += "..."
	}
	return out
}

// parseSignature 用 go/parser 解析参数列表
func parseSignature(params string) (*signature, error) {
	sig := &signature{}
	if strings.TrimSpace(params) == "" {
		return sig, nil
	}
	expr, err := parser.ParseExpr("func(" + params + ")")
	if err != nil {
		return nil, err
	}
	ft, ok := expr.(*ast.FuncType)
	if !ok {
		return nil, fmt.Errorf("not a parameter list")
	}
	for i, field := range ft.Params.List {
		typ := types.ExprString(field.Type)
		if len(field.Names) == 0 {
			sig.unnamed = true
			sig.types = append(sig.types, typ)
			continue
		}
		for _, name := range field.Names {
			switch name.Name {
			case "_":
				sig.unnamed = true
			case receiverName:
				return nil, fmt.Errorf("parameter name %q is reserved for the receiver", receiverName)
			case runtimeAlias:
				return nil, fmt.Errorf("parameter name %q is reserved for the runtime package", runtimeAlias)
			}
			sig.names = append(sig.names, name.Name)
			sig.types = append(sig.types, typ)
		}
		if _, isVariadic := field.Type.(*ast.Ellipsis); isVariadic && i == len(ft.Params.List)-1 {
			sig.variadic = true
		}
	}
	return sig, nil
}

// parseResults 返回结果列表中每个结果的类型，已规范化
func parseResults(results string) ([]string, error) {
	if strings.TrimSpace(results) == "" {
		return nil, nil
	}
	expr, err := parser.ParseExpr("func()" + results)
	if err != nil {
		return nil, err
	}
	ft, ok := expr.(*ast.FuncType)
	if !ok || ft.Results == nil {
		return nil, fmt.Errorf("not a result list")
	}
	var out []string
	for _, field := range ft.Results.List {
		typ := types.ExprString(field.Type)
		out = append(out, typ)
		for i := 1; i < len(field.Names); i++ {
			out = append(out, typ)
		}
	}
	return out, nil
}

// funcSignature 把参数和结果类型写成 (int, string) error 的形式
func funcSignature(params, results []string) string {
	out := "(" + strings.Join(params, ", ") + ")"
	switch len(results) {
	case 0:
	case 1:
		out += " " + results[0]
	default:
		out += " (" + strings.Join(results, ", ") + ")"
	}
	return out
}

// parseTypeParams 返回类型参数列表中的名字
func parseTypeParams(typeParams string) ([]string, error) {
	if strings.TrimSpace(typeParams) == "" {
		return nil, nil
	}
	src := "package p\nfunc f[" + typeParams + "]() {}\n"
	f, err := parser.ParseFile(token.NewFileSet(), "", src, 0)
	if err != nil {
		return nil, err
	}
	fn, ok := f.Decls[0].(*ast.FuncDecl)
	if !ok || fn.Type.TypeParams == nil {
		return nil, fmt.Errorf("not a type parameter list")
	}
	var names []string
	for _, field := range fn.Type.TypeParams.List {
		for _, name := range field.Names {
			names = append(names, name.Name)
		}
	}
	return names, nil
}
