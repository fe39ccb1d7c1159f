package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/hanzirecall/internal/cli"
	"codeberg.org/snonux/hanzirecall/internal/logging"
	"codeberg.org/snonux/hanzirecall/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Ctrl-C aborts a hanging request instead of leaving the process stuck
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Arguments are valid from here on, failures are not usage errors
	cmd.SilenceUsage = true

	cli.ApplyConfig(flags)
	flags.SetArgs(args)

	logger := logging.Must(flags.Verbose)
	defer logger.Sync()

	proc := processor.NewProcessor(flags, logger, os.Stdin, os.Stdout)
	return proc.Run(cmd.Context())
}
