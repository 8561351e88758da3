package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Link configuration from where it lives to where it is expected"
	MsgApplyShort      = "Converge every entry in the entries file"
	MsgListShort       = "Print the entries with paths resolved"
	MsgStatusShort     = "Show the observed state of each entry"
	MsgGenconfigShort  = "Print or write a sample entries file"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Entries file (default config_mapper.toml)"
	MsgFlagStrict  = "Exit 1 when any entry fails or is invalid"
	MsgFlagColor   = "Color output: auto, always or never"
	MsgFlagFormat  = "Output format: text, toml or yaml"
	MsgFlagWrite   = "Write the sample to the entries path instead of printing it"
	MsgFlagForce   = "Overwrite an existing entries file"

	// Output
	MsgNoEntries     = "No entries."
	MsgSampleWritten = "Wrote sample entries to %s\n"

	// Error messages
	MsgErrSettings = "failed to load settings: %w"
	MsgErrStrict   = "%d of %d entries failed or were invalid"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenconfigLongRaw string
	MsgGenconfigLong    = strings.TrimSpace(msgGenconfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
