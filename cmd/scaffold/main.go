// scaffold generates a blank API project skeleton.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnomesuite/petstore-api/internal/scaffold"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scaffold",
		Short:         "Generate blank API projects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newNewCmd())
	return root
}

func newNewCmd() *cobra.Command {
	var opts scaffold.Options

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a blank API project skeleton",
		Long: `Create a blank API project: a runnable service with root and health
endpoints, an example model, and a passing test.`,
		Example: `  # Create ./my-api
  scaffold new

  # Create ./billing with a full module path
  scaffold new billing --module github.com/acme/billing

  # Regenerate over an existing directory
  scaffold new billing --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Name = args[0]
			}
			target, err := scaffold.Generate(opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n\nNext steps:\n  cd %s\n  go mod tidy\n  go run ./cmd/api\n", target, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Module, "module", "m", "", "module path for the generated project (default: project name)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", ".", "parent directory for the generated project")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing project directory")

	return cmd
}
