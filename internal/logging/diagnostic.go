package logging

import (
	"fmt"
	"strconv"
	"strings"
)

// Diagnostic 是一条面向用户的编译问题，带源码位置
type Diagnostic struct {
	File    string
	Line    int
	Column  int
	Message string
	Warning bool
}

// String 返回 file:line:col: message 形式的文本
func (d Diagnostic) String() string {
	var sb strings.Builder
	if d.File != "" {
		sb.WriteString(d.File)
		sb.WriteString(":")
	}
	if d.Line > 0 {
		fmt.Fprintf(&sb, "%d:%d: ", d.Line, d.Column)
	} else if d.File != "" {
		sb.WriteString(" ")
	}
	sb.WriteString(d.Message)
	return sb.String()
}

func (d Diagnostic) Error() string {
	return d.String()
}

// CountErrors 统计非警告的诊断数
func CountErrors(diags []Diagnostic) int {
	n := 0
	for _, d := range diags {
		if !d.Warning {
			n++
		}
	}
	return n
}

// Excerpt 返回 src 中第 line 行及其下方指向 col 的插入符，行号右对齐
func Excerpt(src string, line, col int) []string {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return nil
	}
	text := strings.TrimRight(lines[line-1], "\r")
	trimmed := strings.TrimLeft(text, " \t")
	indent := len(text) - len(trimmed)

	width := len(strconv.Itoa(line)) + 1
	prefix := fmt.Sprintf("%-"+strconv.Itoa(width)+"d|  ", line)
	caret := col - 1 - indent
	if caret < 0 {
		caret = 0
	}
	return []string{
		prefix + trimmed,
		strings.Repeat(" ", width) + "|  " + strings.Repeat(" ", caret) + "^",
	}
}
