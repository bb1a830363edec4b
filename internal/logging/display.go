package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// ConfigureColor 在 stdout 不是终端时关闭颜色输出
func ConfigureColor() {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		pterm.DisableColor()
	}
}

// PrintErrorMessage prints a standard Go error to the console
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// PrintWarningMessage prints a warning message to the console
func PrintWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// PrintInfoMessage prints an informational message to the user
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// displayDiagnostic 打印横幅、消息以及源码片段
func displayDiagnostic(d Diagnostic, src string) {
	fmt.Print("\n-- ")
	kind := "Error"
	if d.Warning {
		kind = "Warning"
		WarnStyleBG.Print(kind)
	} else {
		ErrorStyleBG.Print(kind)
	}
	fmt.Print(" ")

	fileName := filepath.Base(d.File)
	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}
	dashCount := bannerLen - len(fileName) - len(kind) - 1
	if dashCount < 3 {
		dashCount = 3
	}
	fmt.Print(strings.Repeat("-", dashCount) + " ")
	InfoColorFG.Println(fileName)

	fmt.Println(d.String())
	if src == "" || d.Line == 0 {
		return
	}
	excerpt := Excerpt(src, d.Line, d.Column)
	if len(excerpt) != 2 {
		return
	}
	fmt.Println()
	fmt.Println(excerpt[0])
	if d.Warning {
		WarnColorFG.Println(excerpt[1])
	} else {
		ErrorColorFG.Println(excerpt[1])
	}
}

// displayFatalError 打印编译器内部错误
func displayFatalError(msg string) {
	fmt.Print("\n\n")
	ErrorStyleBG.Print("Fatal Error ")
	ErrorColorFG.Println(msg)
	InfoColorFG.Println("This is likely a bug in meantree.")
}

// displaySummary 打印结束时的统计
func displaySummary(errorCount, warningCount int) {
	fmt.Println()
	if errorCount == 0 {
		SuccessStyleBG.Print("Done")
	} else {
		ErrorStyleBG.Print("Failed")
	}
	fmt.Print(" (")
	if errorCount == 1 {
		ErrorColorFG.Print("1 error")
	} else {
		ErrorColorFG.Print(fmt.Sprintf("%d errors", errorCount))
	}
	fmt.Print(", ")
	if warningCount == 1 {
		WarnColorFG.Print("1 warning")
	} else {
		WarnColorFG.Print(fmt.Sprintf("%d warnings", warningCount))
	}
	fmt.Println(")")
}

var errFatal = errors.New("internal compiler error")
