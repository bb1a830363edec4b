package i18n

// Message keys for parser errors
const (
	ErrExpectedToken      = "parser.expected_token"      // args: expected, got
	ErrUnterminated       = "parser.unterminated"        // args: what
	ErrUnexpectedMember   = "parser.unexpected_member"   // args: token
	ErrUnexpectedTopLevel = "parser.unexpected_toplevel" // args: token
	ErrMissingFieldType   = "parser.missing_field_type"  // args: field
	ErrMissingFieldInit   = "parser.missing_field_init"  // args: field
	ErrYAMLDecode         = "parser.yaml_decode"         // args: error
	ErrYAMLMissingKey     = "parser.yaml_missing_key"    // args: where, key
)

// Message keys for diagnostics reported while compiling meanings
const (
	ErrRedefining          = "transpiler.redefining"            // args: name
	ErrDuplicateMeaning    = "transpiler.duplicate_meaning"     // args: meaning
	ErrUnknownParent       = "transpiler.unknown_parent"        // args: meaning, parent
	ErrInheritanceCycle    = "transpiler.inheritance_cycle"     // args: meaning, cycle
	ErrDuplicateMethod     = "transpiler.duplicate_method"      // args: meaning, method
	ErrOverrideMissing     = "transpiler.override_missing"      // args: meaning, method
	ErrMustOverride        = "transpiler.must_override"         // args: meaning, method, ancestor
	ErrOverrideSignature   = "transpiler.override_signature"    // args: meaning, method, signature, ancestor
	ErrMethodTypeParams    = "transpiler.method_type_params"    // args: meaning, method
	ErrUnnamedParams       = "transpiler.unnamed_params"        // args: meaning, what
	ErrInvalidParams       = "transpiler.invalid_params"        // args: meaning, what, error
	ErrDuplicateCtor       = "transpiler.duplicate_constructor" // args: meaning
	ErrMemberConflict      = "transpiler.member_conflict"       // args: meaning, name, owner
	ErrSuperWithoutParent  = "transpiler.super_without_parent"  // args: meaning
	ErrMissingSuper        = "transpiler.missing_super"         // args: meaning, parent
	ErrArenaConflict       = "transpiler.arena_conflict"        // args: arena
	ErrReservedMeaningName = "transpiler.reserved_meaning_name" // args: meaning
	ErrFormatGenerated     = "transpiler.format_generated"      // args: error
)

// Message keys for the CLI
const (
	MsgCLIDescription  = "cli.description"
	MsgCmdBuild        = "cli.cmd_build"
	MsgCmdCheck        = "cli.cmd_check"
	MsgCmdVersion      = "cli.cmd_version"
	MsgArgInput        = "cli.arg_input"
	MsgOptOutput       = "cli.opt_output"
	MsgOptLogLevel     = "cli.opt_loglevel"
	MsgOptNoImports    = "cli.opt_no_imports"
	MsgVersion         = "cli.version"           // args: version
	MsgUsingConfig     = "cli.using_config"      // args: path
	MsgNoConfig        = "cli.no_config"         // args: file
	MsgGenerating      = "cli.generating"        // args: input, output
	MsgChecking        = "cli.checking"          // args: input
	MsgBuildCompleted  = "cli.build_completed"   // args: count, dir
	MsgCheckCompleted  = "cli.check_completed"   // args: count
	MsgCompileFailed   = "cli.compile_failed"    // args: errors
	ErrCannotAccess    = "cli.cannot_access"     // args: path
	ErrCannotLoad      = "cli.cannot_load"       // args: path
	ErrCannotReadFile  = "cli.cannot_read_file"  // args: path
	ErrParseFailed     = "cli.parse_failed"      // args: path, count
	ErrTranspileFailed = "cli.transpile_failed"  // args: path, count
	ErrNoInputFiles    = "cli.no_input_files"    // args: dir
	ErrCannotCreateDir = "cli.cannot_create_dir" // args: path
	ErrCannotWriteFile = "cli.cannot_write_file" // args: path
	ErrBadArguments    = "cli.bad_arguments"
)
