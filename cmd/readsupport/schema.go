package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSchemaCmd(logger *log.Logger) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema FILE",
		Short: "Normalize a printed parquet schema",
		Long: `Parse a printed parquet schema, optionally compressed, and print it back in
canonical form. With --output, the schema is written to the file instead,
compressed according to its extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readSchema(args[0])
			if err != nil {
				return err
			}
			logger.WithFields(log.Fields{
				"path":   args[0],
				"fields": m.NumFields(),
			}).Debug("read schema")

			if output == "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), m)
				return err
			}
			if err := writeSchema(output, m); err != nil {
				return err
			}
			logger.WithField("path", output).Debug("wrote schema")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the schema to this file")
	return cmd
}
