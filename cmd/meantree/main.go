package main

import (
	"os"

	"github.com/ComedicChimera/olive"

	"github.com/tangzhangming/meantree/internal/i18n"
	"github.com/tangzhangming/meantree/internal/logging"
)

const version = "0.1.0"

func main() {
	os.Exit(execute(os.Args))
}

// execute 解析命令行并运行子命令，返回进程退出码
func execute(args []string) int {
	// 初始化国际化
	i18n.Init()
	logging.ConfigureColor()

	cli := olive.NewCLI("meantree", i18n.T(i18n.MsgCLIDescription), true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", i18n.T(i18n.MsgOptLogLevel), false, logging.LogLevelNames)
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", i18n.T(i18n.MsgCmdBuild), true)
	buildCmd.AddPrimaryArg("input", i18n.T(i18n.MsgArgInput), true)
	buildCmd.AddStringArg("output", "o", i18n.T(i18n.MsgOptOutput), false)
	buildCmd.AddFlag("no-imports", "ni", i18n.T(i18n.MsgOptNoImports))

	checkCmd := cli.AddSubcommand("check", i18n.T(i18n.MsgCmdCheck), true)
	checkCmd.AddPrimaryArg("input", i18n.T(i18n.MsgArgInput), true)

	cli.AddSubcommand("version", i18n.T(i18n.MsgCmdVersion), false)

	result, err := olive.ParseArgs(cli, args)
	if err != nil {
		logging.PrintErrorMessage(i18n.T(i18n.ErrBadArguments), err)
		return 2
	}

	loglevel := "verbose"
	if v, ok := result.Arguments["loglevel"]; ok {
		loglevel = v.(string)
	}
	logging.Initialize(loglevel)

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		input, _ := subResult.PrimaryArg()
		output := ""
		if v, ok := subResult.Arguments["output"]; ok {
			output = v.(string)
		}
		return runBuild(input, output, subResult.HasFlag("no-imports"))
	case "check":
		input, _ := subResult.PrimaryArg()
		return runCheck(input)
	case "version":
		logging.PrintInfoMessage("meantree", i18n.T(i18n.MsgVersion, version))
	}
	return 0
}
