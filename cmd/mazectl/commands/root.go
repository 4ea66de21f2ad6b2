package commands

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRoot(os.Stdout).Execute()
}

func newRoot(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "mazectl",
		Short:        "Tools for the wallmaze server",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; flags and the environment still apply.
			_ = godotenv.Load()
			return nil
		},
	}
	root.SetOut(out)

	root.AddCommand(tokenCmd(), renderCmd())
	return root
}

// envOr returns the environment value of key, or def when unset.
func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
