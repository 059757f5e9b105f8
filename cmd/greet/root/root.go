package root

import (
	"fmt"

	"github.com/sirsjg/gogogo/cmd/greet/version"
	"github.com/sirsjg/gogogo/internal/greeter"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for greet.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Print a greeting and exit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{msg: fmt.Sprintf("unexpected argument %q", args[0])}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return greeter.New(cmd.OutOrStdout()).Run()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	// Subcommands
	cmd.AddCommand(version.VersionCmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
