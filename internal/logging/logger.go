// Package logging 负责 meantree 的控制台输出与诊断展示。
package logging

import (
	"fmt"
	"os"
	"sync"
)

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and the closing summary
	LogLevelWarning        // errors, warnings, and the closing summary
	LogLevelVerbose        // everything, including progress (DEFAULT)
)

// LogLevelNames 是命令行可选的级别名
var LogLevelNames = []string{"silent", "error", "warning", "verbose"}

// ParseLogLevel 把级别名转换为级别，未知名称视为 verbose
func ParseLogLevel(name string) int {
	switch name {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warning", "warn":
		return LogLevelWarning
	}
	return LogLevelVerbose
}

// Logger 负责统计并输出编译过程中的消息
type Logger struct {
	LogLevel     int
	errorCount   int
	warningCount int

	// sources 用于展示诊断时的源码片段，键为文件路径
	sources map[string]string

	m sync.Mutex
}

// NewLogger 创建一个新的 Logger
func NewLogger(loglevel int) *Logger {
	return &Logger{LogLevel: loglevel, sources: make(map[string]string)}
}

var logger = NewLogger(LogLevelVerbose)

// Initialize 用给定级别名初始化全局 Logger
func Initialize(loglevelname string) {
	logger = NewLogger(ParseLogLevel(loglevelname))
}

// Default 返回全局 Logger
func Default() *Logger {
	return logger
}

// AddSource 登记源码文本，供诊断展示片段
func (l *Logger) AddSource(path, src string) {
	l.m.Lock()
	defer l.m.Unlock()
	l.sources[path] = src
}

// ShouldProceed 判断是否还没有遇到错误
func (l *Logger) ShouldProceed() bool {
	l.m.Lock()
	defer l.m.Unlock()
	return l.errorCount == 0
}

// ErrorCount 返回已记录的错误数
func (l *Logger) ErrorCount() int {
	l.m.Lock()
	defer l.m.Unlock()
	return l.errorCount
}

// LogDiagnostics 记录并按级别展示一组诊断
func (l *Logger) LogDiagnostics(diags []Diagnostic) {
	l.m.Lock()
	defer l.m.Unlock()
	for _, d := range diags {
		if d.Warning {
			l.warningCount++
			if l.LogLevel >= LogLevelWarning {
				displayDiagnostic(d, l.sources[d.File])
			}
			continue
		}
		l.errorCount++
		if l.LogLevel >= LogLevelError {
			displayDiagnostic(d, l.sources[d.File])
		}
	}
}

// LogError 记录一个普通错误
func (l *Logger) LogError(tag string, err error) {
	l.m.Lock()
	defer l.m.Unlock()
	l.errorCount++
	if l.LogLevel >= LogLevelError {
		PrintErrorMessage(tag, err)
	}
}

// LogWarning 记录一个警告
func (l *Logger) LogWarning(tag, msg string) {
	l.m.Lock()
	defer l.m.Unlock()
	l.warningCount++
	if l.LogLevel >= LogLevelWarning {
		PrintWarningMessage(tag, msg)
	}
}

// LogInfo 输出进度信息，只在 verbose 级别显示
func (l *Logger) LogInfo(tag, msg string) {
	if l.LogLevel >= LogLevelVerbose {
		PrintInfoMessage(tag, msg)
	}
}

// LogFatal 输出内部错误并退出
func (l *Logger) LogFatal(msg string) {
	if l.LogLevel > LogLevelSilent {
		displayFatalError(msg)
	}
	fmt.Fprintln(os.Stderr, errFatal)
	os.Exit(2)
}

// Summary 输出结束时的统计
func (l *Logger) Summary() {
	l.m.Lock()
	defer l.m.Unlock()
	if l.LogLevel > LogLevelSilent {
		displaySummary(l.errorCount, l.warningCount)
	}
}
