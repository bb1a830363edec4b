// Package schema 读取 YAML 形式的 meaning 声明，产出与 .mt 源码相同的语法树
package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tangzhangming/meantree/internal/i18n"
	"github.com/tangzhangming/meantree/internal/parser"
)

type document struct {
	Package  string       `yaml:"package"`
	Arena    string       `yaml:"arena"`
	Imports  []importDoc  `yaml:"imports"`
	Meanings []meaningDoc `yaml:"meanings"`
}

type importDoc struct {
	Alias string `yaml:"alias"`
	Path  string `yaml:"path"`
	pos   parser.Pos
}

// UnmarshalYAML 接受 "fmt" 或 {alias: str, path: strings} 两种写法
func (d *importDoc) UnmarshalYAML(n *yaml.Node) error {
	d.pos = nodePos(n)
	if n.Kind == yaml.ScalarNode {
		d.Path = n.Value
		return nil
	}
	type plain importDoc
	return n.Decode((*plain)(d))
}

type meaningDoc struct {
	Name        string      `yaml:"name"`
	Extends     string      `yaml:"extends"`
	Doc         string      `yaml:"doc"`
	Fields      []fieldDoc  `yaml:"fields"`
	Constructor *ctorDoc    `yaml:"constructor"`
	Methods     []methodDoc `yaml:"methods"`
	pos         parser.Pos
	extendsPos  parser.Pos
}

func (d *meaningDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain meaningDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.pos = nodePos(n)
	if v := valueNode(n, "extends"); v != nil {
		d.extendsPos = nodePos(v)
	}
	return nil
}

type fieldDoc struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Default string `yaml:"default"`
	Ref     bool   `yaml:"ref"`
	pos     parser.Pos
}

func (d *fieldDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain fieldDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.pos = nodePos(n)
	if v := valueNode(n, "name"); v != nil {
		d.pos = nodePos(v)
	}
	return nil
}

type ctorDoc struct {
	TypeParams string  `yaml:"type_params"`
	Params     string  `yaml:"params"`
	Super      *string `yaml:"super"`
	Body       string  `yaml:"body"`
	pos        parser.Pos
}

func (d *ctorDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain ctorDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.pos = nodePos(n)
	return nil
}

type methodDoc struct {
	Name       string `yaml:"name"`
	Doc        string `yaml:"doc"`
	Override   bool   `yaml:"override"`
	TypeParams string `yaml:"type_params"`
	Params     string `yaml:"params"`
	Results    string `yaml:"results"`
	Body       string `yaml:"body"`
	pos        parser.Pos
}

func (d *methodDoc) UnmarshalYAML(n *yaml.Node) error {
	type plain methodDoc
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.pos = nodePos(n)
	if v := valueNode(n, "name"); v != nil {
		d.pos = nodePos(v)
	}
	return nil
}

func nodePos(n *yaml.Node) parser.Pos {
	return parser.Pos{Line: n.Line, Column: n.Column}
}

// valueNode 返回映射节点中 key 对应的值节点
func valueNode(n *yaml.Node, key string) *yaml.Node {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// IsSchemaFile 判断路径是否为 YAML 声明文件
func IsSchemaFile(path string) bool {
	return strings.HasSuffix(path, ".mt.yaml") || strings.HasSuffix(path, ".mt.yml")
}

// Load 读取并解析 YAML 声明文件
func Load(path string) (*parser.File, []parser.Error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading declarations %s: %w", path, err)
	}
	f, errs := Parse(data, path)
	return f, errs, nil
}

// Parse 解析 YAML 声明文档
func Parse(data []byte, path string) (*parser.File, []parser.Error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &parser.File{Name: path}, []parser.Error{{Msg: i18n.T(i18n.ErrYAMLDecode, err)}}
	}

	file := &parser.File{
		Name:    path,
		Package: doc.Package,
		Arena:   doc.Arena,
	}
	var errs []parser.Error
	missing := func(pos parser.Pos, where, key string) {
		errs = append(errs, parser.Error{Pos: pos, Msg: i18n.T(i18n.ErrYAMLMissingKey, where, key)})
	}

	for _, imp := range doc.Imports {
		if imp.Path == "" {
			missing(imp.pos, "import", "path")
			continue
		}
		file.Imports = append(file.Imports, &parser.Import{Pos: imp.pos, Alias: imp.Alias, Path: imp.Path})
	}

	for i, md := range doc.Meanings {
		if md.Name == "" {
			missing(md.pos, fmt.Sprintf("meanings[%d]", i), "name")
			continue
		}
		decl := &parser.MeaningDecl{
			Pos:       md.pos,
			Name:      md.Name,
			Parent:    md.Extends,
			ParentPos: md.extendsPos,
			Doc:       strings.TrimSpace(md.Doc),
		}

		for j, fd := range md.Fields {
			where := fmt.Sprintf("%s.fields[%d]", md.Name, j)
			if fd.Name == "" {
				missing(fd.pos, where, "name")
				continue
			}
			if strings.TrimSpace(fd.Type) == "" {
				missing(fd.pos, where, "type")
				continue
			}
			decl.Fields = append(decl.Fields, &parser.FieldDecl{
				Pos:     fd.pos,
				Name:    fd.Name,
				Ref:     fd.Ref,
				Type:    strings.TrimSpace(fd.Type),
				Default: strings.TrimSpace(fd.Default),
			})
		}

		if c := md.Constructor; c != nil {
			ctor := &parser.ConstructorDecl{
				Pos:        c.pos,
				TypeParams: strings.TrimSpace(c.TypeParams),
				Params:     strings.TrimSpace(c.Params),
				Body:       strings.TrimSpace(c.Body),
			}
			if c.Super != nil {
				ctor.HasSuper = true
				ctor.SuperArgs = strings.TrimSpace(*c.Super)
			}
			decl.Constructors = append(decl.Constructors, ctor)
		}

		for j, m := range md.Methods {
			if m.Name == "" {
				missing(m.pos, fmt.Sprintf("%s.methods[%d]", md.Name, j), "name")
				continue
			}
			decl.Methods = append(decl.Methods, &parser.MethodDecl{
				Pos:        m.pos,
				Name:       m.Name,
				Override:   m.Override,
				Doc:        strings.TrimSpace(m.Doc),
				TypeParams: strings.TrimSpace(m.TypeParams),
				Params:     strings.TrimSpace(m.Params),
				Results:    strings.TrimSpace(m.Results),
				Body:       strings.TrimSpace(m.Body),
			})
		}

		file.Meanings = append(file.Meanings, decl)
	}

	return file, errs
}
