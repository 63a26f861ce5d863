package meshdeps

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Resolve mesh dependencies of solver test cases"
	MsgResolveShort    = "Resolve a family and show every mesh variant"
	MsgDepsShort       = "Print the geometry dependencies of a family"
	MsgDepsLong        = "Print the geometry inputs the selected meshes depend on, space separated, on one line."
	MsgOutputsShort    = "Print the mesh files a family produces"
	MsgOutputsLong     = "Print the mesh files the selected variants produce, space separated, on one line. Names are relative to the meshes directory unless --absolute is given."
	MsgCatalogShort    = "List the mesh catalogs of the test-case families"
	MsgCatalogLong     = "List the mesh variants every family knows about, in match order. With a family name, list only that family."
	MsgPathsShort      = "Show the resolved solver paths"
	MsgPathsLong       = "Show the directories and mesh generator resolved for the selected user and operating system."
	MsgGenConfigShort  = "Generate a configuration file"
	MsgGenConfigLong   = "Output the default configuration, every value commented out, or write it to the user configuration file with -w. With --effective, output the configuration after all layers (file, environment, flags) instead."
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Group titles
	MsgGroupCore = "COMMANDS:"
	MsgGroupInfo = "INFORMATION:"
	MsgGroupMisc = "MISC:"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagUser       = "User entry of the path table (default: $MESHDEPS_USER or default_user)"
	MsgFlagOS         = "Operating system family: auto, darwin or other"
	MsgFlagConfig     = "Configuration file (default: $XDG_CONFIG_HOME/meshdeps/config.toml)"
	MsgFlagSolverRoot = "Solver root directory, overriding the user's configured one"
	MsgFlagFormat     = "Output format: auto, term, text, json or yaml"
	MsgFlagAbsolute   = "Print absolute paths"
	MsgFlagWrite      = "Write the configuration to the user configuration file"
	MsgFlagOutput     = "File to write with -w (default: the user configuration file)"
	MsgFlagEffective  = "Output the effective configuration instead of the defaults"

	// Error messages
	MsgErrNoCommand = "no command specified"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
