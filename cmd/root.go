package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	clientidcmd "github.com/lainsato/valuecell/cmd/internal/clientid"
	"github.com/lainsato/valuecell/cmd/internal/cmderr"
	"github.com/lainsato/valuecell/printer"
	"github.com/lainsato/valuecell/rest"
	"github.com/lainsato/valuecell/telemetry"
	"github.com/lainsato/valuecell/version"
)

var (
	// Test only flags
	testOnlyUseHTTPSFlag bool

	debugFlag bool
)

var (
	rootCmd = &cobra.Command{
		Use:           "valuecell-agent",
		Short:         "Client-side agent for the ValueCell desktop application.",
		Version:       version.DisplayString(),
		SilenceErrors: true, // We print our own errors from subcommands in Execute function
		// Don't print usage after error, we only print help if we cannot parse
		// flags. See init function below.
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			telemetry.Init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

func Execute() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		if _, isAgentErr := err.(cmderr.AgentErr); !isAgentErr {
			// Print usage for CLI usage errors (e.g. missing arg) but not for
			// agent errors (e.g. failed to persist the identifier).
			cmd.Println(cmd.UsageString())
		}

		exitCode := 1
		var exitErr cmderr.ExitError
		if isExitErr := errors.As(err, &exitErr); isExitErr {
			exitCode = exitErr.ExitCode
		}
		printer.Stderr.Errorf("%s\n", err)
		os.Exit(exitCode)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rest.Domain, "domain", rest.DefaultDomain(), "The ValueCell backend to report to.")
	rootCmd.PersistentFlags().MarkHidden("domain")

	// Super secret unsafe test only flags
	rootCmd.PersistentFlags().BoolVar(&testOnlyUseHTTPSFlag, "test_only_disable_https", false, "TEST ONLY - whether to use HTTPS when communicating with backend")
	rootCmd.PersistentFlags().MarkHidden("test_only_disable_https")
	viper.BindPFlag("test_only_disable_https", rootCmd.PersistentFlags().Lookup("test_only_disable_https"))

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "If set, outputs detailed information for debugging.")
	rootCmd.PersistentFlags().MarkHidden("debug")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(clientidcmd.Cmd)
}
