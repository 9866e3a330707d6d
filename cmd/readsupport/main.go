// Command readsupport resolves the schema that a reader must materialize for a
// read request, against a printed parquet file schema.
//
//	readsupport resolve --request request.yaml --schema file.schema.zst
//	readsupport schema file.schema --output file.schema.gz
package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetLevel(log.WarnLevel)

	cmd := &cobra.Command{
		Use:           "readsupport",
		Short:         "Resolve the requested schema of table reads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentFlags().Bool("debug", false, "Display debugging logs")

	cmd.AddCommand(
		newResolveCmd(logger),
		newSchemaCmd(logger),
	)
	return cmd
}
