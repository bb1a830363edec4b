package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tangzhangming/meantree/internal/config"
	"github.com/tangzhangming/meantree/internal/i18n"
	"github.com/tangzhangming/meantree/internal/logging"
	"github.com/tangzhangming/meantree/internal/parser"
	"github.com/tangzhangming/meantree/internal/schema"
	"github.com/tangzhangming/meantree/internal/transpiler"
)

// project 是一次编译的输入
type project struct {
	cfg        *config.Config
	configPath string
	root       string   // 输入目录，输入为单个文件时是它所在目录
	files      []string // 相对 root 的声明文件路径
}

// loadProject 收集输入文件并加载 meantree.toml
func loadProject(input string) (*project, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, &accessError{path: input, err: err}
	}

	p := &project{root: input}
	if info.IsDir() {
		p.files, err = collectInputs(input)
		if err != nil {
			return nil, err
		}
	} else {
		p.root = filepath.Dir(input)
		p.files = []string{filepath.Base(input)}
	}

	p.cfg, p.configPath, err = config.FindAndLoad(p.root)
	if err != nil {
		return nil, &configError{path: config.FindConfigFile(p.root), err: err}
	}
	return p, nil
}

// isDeclFile 判断路径是否为声明文件
func isDeclFile(path string) bool {
	return strings.HasSuffix(path, ".mt") || schema.IsSchemaFile(path)
}

// collectInputs 返回目录下全部声明文件的相对路径，按路径排序
func collectInputs(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isDeclFile(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, &accessError{path: dir, err: err}
	}
	if len(files) == 0 {
		return nil, &noFilesError{dir: dir}
	}
	sort.Strings(files)
	return files, nil
}

// outputName 把声明文件名换成生成文件名
func outputName(rel, suffix string) string {
	for _, ext := range []string{".mt.yaml", ".mt.yml", ".mt"} {
		if strings.HasSuffix(rel, ext) {
			return strings.TrimSuffix(rel, ext) + suffix
		}
	}
	return rel + suffix
}

// compileFile 解析并编译一个声明文件
func compileFile(path string, cfg *config.Config) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &readFileError{path: path, err: err}
	}
	logging.Default().AddSource(path, string(src))

	var file *parser.File
	var errs []parser.Error
	if schema.IsSchemaFile(path) {
		file, errs = schema.Parse(src, path)
	} else {
		file, errs = parser.ParseString(path, string(src))
	}
	if len(errs) > 0 {
		pe := &transpiler.ParseError{File: path, Errors: errs}
		return nil, &parseError{path: path, diags: pe.Diagnostics()}
	}

	out, err := transpiler.New(cfg).TranspileFile(file)
	var derr *transpiler.DiagnosticsError
	if errors.As(err, &derr) {
		return nil, &transpileError{path: path, diags: derr.Diagnostics}
	}
	if err != nil {
		return nil, &generateError{path: path, err: err}
	}
	return out, nil
}

// reportCompileError 把编译错误交给 Logger，诊断逐条展示
func reportCompileError(err error) {
	var de diagnosticsCarrier
	if errors.As(err, &de) {
		logging.Default().LogDiagnostics(de.diagnostics())
		return
	}
	logging.Default().LogError("Compile Error", err)
}

// announceConfig 输出使用的配置文件
func announceConfig(p *project) {
	logger := logging.Default()
	if p.configPath != "" {
		logger.LogInfo("Config", i18n.T(i18n.MsgUsingConfig, p.configPath))
	} else {
		logger.LogInfo("Config", i18n.T(i18n.MsgNoConfig, config.FileName))
	}
}

// runBuild 编译输入并写出生成文件，返回退出码
func runBuild(input, output string, noImports bool) int {
	logger := logging.Default()
	p, err := loadProject(input)
	if err != nil {
		logger.LogError("Input Error", err)
		return 1
	}
	announceConfig(p)
	if noImports {
		off := false
		p.cfg.Output.FixImports = &off
	}

	outDir := output
	if outDir == "" {
		outDir = p.cfg.Output.Dir
	}
	if outDir == "" {
		outDir = p.root
	}

	written := 0
	for _, rel := range p.files {
		inPath := filepath.Join(p.root, rel)
		outPath := filepath.Join(outDir, outputName(rel, p.cfg.Output.Suffix))
		logger.LogInfo("Build", i18n.T(i18n.MsgGenerating, inPath, outPath))

		code, err := compileFile(inPath, p.cfg)
		if err != nil {
			reportCompileError(err)
			continue
		}
		if err := writeOutput(outPath, code); err != nil {
			logger.LogError("Output Error", err)
			continue
		}
		written++
	}

	logger.Summary()
	if n := logger.ErrorCount(); n > 0 {
		logging.PrintErrorMessage("meantree", errors.New(i18n.T(i18n.MsgCompileFailed, n)))
		return 1
	}
	logger.LogInfo("Build", i18n.T(i18n.MsgBuildCompleted, written, outDir))
	return 0
}

// runCheck 只报告问题，不写任何文件
func runCheck(input string) int {
	logger := logging.Default()
	p, err := loadProject(input)
	if err != nil {
		logger.LogError("Input Error", err)
		return 1
	}
	announceConfig(p)
	off := false
	p.cfg.Output.FixImports = &off

	for _, rel := range p.files {
		inPath := filepath.Join(p.root, rel)
		logger.LogInfo("Check", i18n.T(i18n.MsgChecking, inPath))
		if _, err := compileFile(inPath, p.cfg); err != nil {
			reportCompileError(err)
		}
	}

	logger.Summary()
	if n := logger.ErrorCount(); n > 0 {
		logging.PrintErrorMessage("meantree", errors.New(i18n.T(i18n.MsgCompileFailed, n)))
		return 1
	}
	logger.LogInfo("Check", i18n.T(i18n.MsgCheckCompleted, len(p.files)))
	return 0
}

// writeOutput 写出生成文件，必要时创建目录
func writeOutput(path string, code []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &createDirError{path: dir, err: err}
	}
	if err := os.WriteFile(path, code, 0644); err != nil {
		return &writeFileError{path: path, err: err}
	}
	return nil
}
