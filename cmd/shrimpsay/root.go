package main

import (
	"fmt"

	"github.com/seabed-labs/shrimpsay/internal/bubble"
	"github.com/seabed-labs/shrimpsay/internal/cliargs"
	"github.com/seabed-labs/shrimpsay/internal/greet"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shrimpsay [--name <value>] [--shrimpsay]",
	Short: "Greet someone, optionally through a shrimp",
	Long: `shrimpsay prints "Hello, <name>!" to standard output.

With --shrimpsay the greeting is delivered inside an ASCII speech bubble
by a small decorative shrimp. Arguments are scanned leniently: unknown
tokens are ignored and a trailing --name with no value is treated as
absent. Every invocation exits 0.`,
	// Arguments keep their lenient, non-fatal scan semantics, so cobra's
	// own flag parser stays out of the way.
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	// Without this, cobra registers a completion command as soon as
	// "completion" shows up in the arguments, and a help command along
	// with it, swallowing tokens the scan must ignore.
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Run:               runRoot,
}

func init() {
	// cobra resolves "help" and "__complete" to subcommands before Run is
	// ever reached. Shadow both with hidden passthroughs so the token is
	// dropped and the remaining arguments scan normally.
	rootCmd.SetHelpCommand(passthroughCmd("help"))
	rootCmd.AddCommand(passthroughCmd(cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd))
}

// passthroughCmd shadows a reserved cobra command name with the normal
// greeting behavior.
func passthroughCmd(name string, aliases ...string) *cobra.Command {
	return &cobra.Command{
		Use:                name,
		Aliases:            aliases,
		Hidden:             true,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		Run:                runRoot,
	}
}

func runRoot(cmd *cobra.Command, args []string) {
	opts := cliargs.Parse(args)

	greeting := greet.Greeting(opts.Name)

	out := cmd.OutOrStdout()
	if opts.Shrimpsay {
		_ = bubble.Fprint(out, greeting)
		return
	}
	_, _ = fmt.Fprintln(out, greeting)
}
