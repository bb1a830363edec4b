package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// Parser errors
	ErrExpectedToken:      "期望 %s, 实际是 %s",
	ErrUnterminated:       "%s 未结束",
	ErrUnexpectedMember:   "meaning 体中出现意外的 %s",
	ErrUnexpectedTopLevel: "顶层出现意外的 %s",
	ErrMissingFieldType:   "字段 '%s' 缺少类型",
	ErrMissingFieldInit:   "字段 '%s' 的默认值为空",
	ErrYAMLDecode:         "声明文档无效: %v",
	ErrYAMLMissingKey:     "%s: 缺少必需的键 '%s'",

	// Diagnostics
	ErrRedefining:          "重复定义 '%s'",
	ErrDuplicateMeaning:    "meaning '%s' 已经定义",
	ErrUnknownParent:       "meaning %s: 父 meaning %s 未找到",
	ErrInheritanceCycle:    "meaning %s: 继承成环 %s",
	ErrDuplicateMethod:     "meaning %s: 方法 '%s' 已经定义",
	ErrOverrideMissing:     "meaning %s: '%s' 声明为 override, 但没有祖先定义它",
	ErrMustOverride:        "meaning %s: 方法 '%s' 继承自 %s, 必须声明为 override",
	ErrOverrideSignature:   "meaning %s: override '%s' 的签名必须是 %s, 与 %s 中的声明一致",
	ErrMethodTypeParams:    "meaning %s 方法 %s: 方法不能有类型参数",
	ErrUnnamedParams:       "meaning %s: %s 的参数必须具名",
	ErrInvalidParams:       "meaning %s: 无法解析 %s: %v",
	ErrDuplicateCtor:       "meaning %s: 构造器已经定义",
	ErrMemberConflict:      "meaning %s: '%s' 与 %s 的成员冲突",
	ErrSuperWithoutParent:  "meaning %s: 没有父 meaning 却调用了 super",
	ErrMissingSuper:        "meaning %s: %s 的构造器需要参数, 必须调用 super(...)",
	ErrArenaConflict:       "arena 名称 '%s' 与生成的声明冲突",
	ErrReservedMeaningName: "meaning 名称 '%s' 是保留名",
	ErrFormatGenerated:     "生成的代码无法编译: %v",

	// CLI
	MsgCLIDescription:  "将 meaning 层次结构编译为 Go 代码",
	MsgCmdBuild:        "为声明文件生成 Go 代码",
	MsgCmdCheck:        "只报告问题, 不写入文件",
	MsgCmdVersion:      "打印版本信息",
	MsgArgInput:        "输入的声明文件或目录",
	MsgOptOutput:       "输出目录",
	MsgOptLogLevel:     "控制台输出级别",
	MsgOptNoImports:    "生成代码时跳过 goimports 处理",
	MsgVersion:         "meantree %s",
	MsgUsingConfig:     "使用配置: %s",
	MsgNoConfig:        "未找到 %s, 使用默认配置",
	MsgGenerating:      "生成: %s -> %s",
	MsgChecking:        "检查: %s",
	MsgBuildCompleted:  "已生成 %d 个文件到 %s",
	MsgCheckCompleted:  "已检查 %d 个文件, 没有发现问题",
	MsgCompileFailed:   "编译失败, 共 %d 个错误",
	ErrCannotAccess:    "无法访问 %s",
	ErrCannotLoad:      "无法加载配置 %s",
	ErrCannotReadFile:  "无法读取文件 %s",
	ErrParseFailed:     "%s: %d 个语法错误",
	ErrTranspileFailed: "%s: %d 个问题",
	ErrNoInputFiles:    "在 %s 中没有找到 .mt 或 .mt.yaml 文件",
	ErrCannotCreateDir: "无法创建输出目录 %s",
	ErrCannotWriteFile: "无法写入文件 %s",
	ErrBadArguments:    "参数无效",
}
