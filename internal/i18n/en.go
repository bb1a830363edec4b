package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Parser errors
	ErrExpectedToken:      "expected %s, got %s",
	ErrUnterminated:       "unterminated %s",
	ErrUnexpectedMember:   "unexpected %s in meaning body",
	ErrUnexpectedTopLevel: "unexpected %s at top level",
	ErrMissingFieldType:   "field '%s' has no type",
	ErrMissingFieldInit:   "field '%s' has an empty default value",
	ErrYAMLDecode:         "invalid declaration document: %v",
	ErrYAMLMissingKey:     "%s: missing required key '%s'",

	// Diagnostics
	ErrRedefining:          "Redefining '%s'",
	ErrDuplicateMeaning:    "meaning '%s' is already defined",
	ErrUnknownParent:       "meaning %s: parent meaning %s not found",
	ErrInheritanceCycle:    "meaning %s: inheritance cycle %s",
	ErrDuplicateMethod:     "meaning %s: method '%s' is already defined",
	ErrOverrideMissing:     "meaning %s: '%s' is declared override but no ancestor defines it",
	ErrMustOverride:        "meaning %s: method '%s' is inherited from %s and must be declared override",
	ErrOverrideSignature:   "meaning %s: override '%s' must have signature %s as declared in %s",
	ErrMethodTypeParams:    "meaning %s method %s: methods cannot have type parameters",
	ErrUnnamedParams:       "meaning %s: parameters of %s must be named",
	ErrInvalidParams:       "meaning %s: cannot parse %s: %v",
	ErrDuplicateCtor:       "meaning %s: constructor is already defined",
	ErrMemberConflict:      "meaning %s: '%s' conflicts with a member of %s",
	ErrSuperWithoutParent:  "meaning %s: super call without a parent meaning",
	ErrMissingSuper:        "meaning %s: constructor must call super(...) because the constructor of %s takes arguments",
	ErrArenaConflict:       "arena name '%s' conflicts with a generated declaration",
	ErrReservedMeaningName: "meaning name '%s' is reserved",
	ErrFormatGenerated:     "generated code does not compile: %v",

	// CLI
	MsgCLIDescription:  "Compile meaning hierarchies into Go code",
	MsgCmdBuild:        "Generate Go code for declaration files",
	MsgCmdCheck:        "Report problems without writing any files",
	MsgCmdVersion:      "Print version information",
	MsgArgInput:        "Input declaration file or directory",
	MsgOptOutput:       "Output directory",
	MsgOptLogLevel:     "Console output level",
	MsgOptNoImports:    "Skip goimports processing of generated code",
	MsgVersion:         "meantree %s",
	MsgUsingConfig:     "Using config: %s",
	MsgNoConfig:        "No %s found, using defaults",
	MsgGenerating:      "Generating: %s -> %s",
	MsgChecking:        "Checking: %s",
	MsgBuildCompleted:  "Generated %d files in %s",
	MsgCheckCompleted:  "Checked %d files, no problems found",
	MsgCompileFailed:   "compilation failed with %d errors",
	ErrCannotAccess:    "cannot access %s",
	ErrCannotLoad:      "cannot load config %s",
	ErrCannotReadFile:  "cannot read file %s",
	ErrParseFailed:     "%s: %d syntax errors",
	ErrTranspileFailed: "%s: %d problems",
	ErrNoInputFiles:    "no .mt or .mt.yaml files found in %s",
	ErrCannotCreateDir: "cannot create output directory %s",
	ErrCannotWriteFile: "cannot write file %s",
	ErrBadArguments:    "invalid arguments",
}
