package main

import (
	"os"
	"strings"

	"taskdeck-cli/internal/cli"
)

// looksLikeTaskID reports whether an argv token could be a task id.
// Generated ids are "task-" plus 8 base32 chars, but anything after the
// prefix is accepted since users paste ids from other tools.
func looksLikeTaskID(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "task-") && len(s) > len("task-")
}

// firstPositional returns the index of the first positional token in argv,
// or -1 when there is none. It only understands the root command's
// persistent flags: --dir and --workspace take a value, --pretty does not.
// Unrecognized flags are stepped over without consuming a value, so a task
// id following them is never swallowed.
func firstPositional(argv []string) int {
	for i := 1; i < len(argv); i++ {
		tok := strings.TrimSpace(argv[i])
		switch {
		case tok == "":
		case tok == "--":
			// Everything after the terminator is positional.
			if i+1 < len(argv) {
				return i + 1
			}
			return -1
		case tok == "--dir", tok == "--workspace":
			i++ // flag value
		case strings.HasPrefix(tok, "-"):
			// --pretty, --flag=value, or something cobra will reject later.
		default:
			return i
		}
	}
	return -1
}

// expandTaskIDShortcut lets `taskdeck <task-id>` stand in for
// `taskdeck tasks show <task-id>`. Cobra would read the id as a subcommand
// name, and persistent flags may precede it, so argv is rewritten by
// splicing "tasks show" in front of the first positional when it looks
// like a task id.
func expandTaskIDShortcut(argv []string) []string {
	i := firstPositional(argv)
	if i < 0 || !looksLikeTaskID(argv[i]) {
		return argv
	}
	out := append([]string{}, argv[:i]...)
	out = append(out, "tasks", "show")
	return append(out, argv[i:]...)
}

func main() {
	os.Args = expandTaskIDShortcut(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
