package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Esysteme/readsupport"
	"github.com/Esysteme/readsupport/schema"
)

const (
	formatText  = "text"
	formatJSON  = "json"
	formatTable = "table"
)

type resolveFlags struct {
	request      string
	schema       string
	format       string
	listWrappers []string
}

func newResolveCmd(logger *log.Logger) *cobra.Command {
	flags := new(resolveFlags)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a read request against a file schema",
		Example: `  # Print the requested schema of a read
  readsupport resolve --request request.yaml --schema part-0000.schema

  # Print the requested fields as a table
  readsupport resolve --request request.yaml --schema part-0000.schema.zst --format table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.OutOrStdout(), logger, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.request, "request", "r", "", "YAML file describing the read request")
	cmd.Flags().StringVarP(&flags.schema, "schema", "s", "", "Printed schema of the file, optionally compressed (.br, .gz, .lz4, .sz, .zst)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", formatText, "Output format: text, json or table")
	cmd.Flags().StringSliceVar(&flags.listWrappers, "list-wrappers", nil, "Names of the wrapper groups of lists of structs")
	_ = cmd.MarkFlagRequired("request")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

// resolution is the outcome of a resolve command.
type resolution struct {
	Context         string            `json:"context"`
	RequestedSchema string            `json:"requested_schema"`
	Metadata        map[string]string `json:"metadata"`
	TableType       string            `json:"table_type,omitempty"`

	requested *schema.Message
}

func runResolve(w io.Writer, logger *log.Logger, flags *resolveFlags) error {
	switch flags.format {
	case formatText, formatJSON, formatTable:
	default:
		return fmt.Errorf("unsupported output format %q", flags.format)
	}

	req, err := loadRequest(flags.request)
	if err != nil {
		return err
	}
	fileSchema, err := readSchema(flags.schema)
	if err != nil {
		return err
	}

	options := []readsupport.ReadSupportOption{readsupport.Logger(logger)}
	if len(flags.listWrappers) != 0 {
		options = append(options, readsupport.ListWrapperNames(flags.listWrappers...))
	}
	config, err := readsupport.NewReadSupportConfig(options...)
	if err != nil {
		return err
	}
	rs := readsupport.New(config)

	conf := req.properties()
	ctx, err := rs.Init(conf, nil, fileSchema)
	if err != nil {
		return err
	}
	m, err := rs.PrepareForRead(conf, nil, fileSchema, ctx)
	if err != nil {
		return err
	}

	res := &resolution{
		Context:         ctx.ID.String(),
		RequestedSchema: m.RequestedSchema.String(),
		Metadata:        m.Metadata,
		requested:       m.RequestedSchema,
	}
	if m.TableType != nil {
		res.TableType = m.TableType.String()
	}

	switch flags.format {
	case formatJSON:
		return printJSON(w, res)
	case formatTable:
		return printTable(w, res)
	default:
		return printText(w, res)
	}
}

func printText(w io.Writer, res *resolution) error {
	if _, err := fmt.Fprintln(w, res.RequestedSchema); err != nil {
		return err
	}
	for _, key := range sortedKeys(res.Metadata) {
		if key == readsupport.TableSchemaKey {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s = %s\n", key, res.Metadata[key]); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(w io.Writer, res *resolution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func printTable(w io.Writer, res *resolution) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Name", "Repetition", "Type", "Annotation"})
	table.SetAutoFormatHeaders(false)

	for i, field := range res.requested.Fields() {
		typ := "group"
		if field.Leaf() {
			typ = field.Type().String()
		}
		table.Append([]string{
			fmt.Sprint(i),
			field.Name(),
			field.Repetition().String(),
			typ,
			string(field.Annotation()),
		})
	}

	table.Render()
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
