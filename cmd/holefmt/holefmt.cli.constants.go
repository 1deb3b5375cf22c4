package main

// Command names
const (
	CmdNameFormat   = "format"
	CmdNameEscape   = "escape"
	CmdNameUnescape = "unescape"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagTemplate = "template"
	FlagInput    = "input"
	FlagData     = "data"
	FlagDataFile = "data-file"
	FlagOutput   = "output"
	FlagDollar   = "dollar"
	FlagTolerant = "tolerant"
	FlagQuotes   = "quotes"
	FlagPrefix   = "prefix"
	FlagPostfix  = "postfix"
	FlagVerbose  = "verbose"
	FlagFormat   = "format"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagInputShort    = "i"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
	FlagVerboseShort  = "v"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
	FlagDefaultPrefix = "\\"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Data key separator for nested data maps
const (
	DataKeySeparator = "."
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgInvalidFlags      = "invalid flags"
	ErrMsgMissingTemplate   = "template source required"
	ErrMsgMissingInput      = "input source required"
	ErrMsgEmptyAffixes      = "prefix and postfix cannot both be empty"
	ErrMsgInvalidData       = "invalid YAML/JSON data"
	ErrMsgReadFileFailed    = "failed to read input"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgFormatFailed      = "template formatting failed"
	ErrMsgInvalidFormat     = "invalid output format"
)

// Log message constants
const (
	LogMsgTemplateLoaded = "template loaded"
	LogMsgDataLoaded     = "data loaded"
	LogMsgOutputWritten  = "output written"
)

// Log field names
const (
	LogFieldPath    = "path"
	LogFieldBytes   = "bytes"
	LogFieldSymbols = "symbols"
)

// Help text templates
const (
	HelpMainUsage = `holefmt - named-placeholder templating and table-driven escaping CLI

Usage:
    holefmt <command> [options]

Commands:
    format      Fill the holes of a template with data
    escape      Escape control characters and quotes
    unescape    Reverse escape
    version     Show version information
    help        Show help for a command

Use "holefmt help <command>" for more information about a command.`

	HelpFormatUsage = `Fill the holes of a template with data

Usage:
    holefmt format [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -d, --data <yaml|json>  Inline YAML or JSON mapping
    -f, --data-file <file>  YAML or JSON data file
    -o, --output <file>     Output file, written atomically (default: stdout)
    --dollar                Use ${name} holes instead of {name}
    --tolerant              Leave holes without data in place
    -v, --verbose           Log debug output to stderr

Nested mappings are also addressable with dotted symbols: {user.name}.

Examples:
    holefmt format -t greeting.txt -d '{"name": "Alice"}'
    holefmt format -t greeting.txt -f data.yaml -o greeting.out
    cat script.sh | holefmt format -t - --dollar -d 'home: /root'`

	HelpEscapeUsage = `Escape control characters and quotes

Usage:
    holefmt escape [options]

Options:
    -i, --input <file>      Input file (use "-" for stdin)
    -o, --output <file>     Output file, written atomically (default: stdout)
    --quotes                Escape double quotes only
    --prefix <text>         Escape prefix (default: "\")
    --postfix <text>        Escape postfix (default: none)

Examples:
    holefmt escape -i message.txt
    echo 'say "hi"' | holefmt escape -i - --quotes`

	HelpUnescapeUsage = `Reverse escape

Usage:
    holefmt unescape [options]

Options:
    -i, --input <file>      Input file (use "-" for stdin)
    -o, --output <file>     Output file, written atomically (default: stdout)
    --prefix <text>         Escape prefix (default: "\")
    --postfix <text>        Escape postfix (default: none)`

	HelpVersionUsage = `Show version information

Usage:
    holefmt version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    holefmt help [command]

Commands:
    format      Show help for format command
    escape      Show help for escape command
    unescape    Show help for unescape command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "holefmt version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFileName    = "versions.yaml"
)

// CLI metadata
const (
	CLIName = "holefmt"
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
	FmtErrorPosition   = "%s at line %s, column %s"
	FmtErrorSymbol     = "%s (symbol %q)"
)
