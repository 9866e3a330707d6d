package readsupport

import (
	"strconv"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Esysteme/readsupport/schema"
	"github.com/Esysteme/readsupport/typeinfo"
)

// ReadContext is the outcome of ReadSupport.Init: the schema that the file
// reader must materialize, and the metadata describing how it was resolved.
type ReadContext struct {
	// ID identifies the resolution in log entries.
	ID uuid.UUID
	// RequestedSchema is the schema to read from the file.
	RequestedSchema *schema.Message
	// Metadata carries at least TableSchemaKey and IndexAccessKey.
	Metadata map[string]string
	// TableType is the struct type of the logical columns, nil when the
	// configuration named no columns.
	TableType *typeinfo.StructTypeInfo
}

// Materialization is what record materializers are constructed from.
type Materialization struct {
	RequestedSchema *schema.Message
	Metadata        map[string]string
	TableType       *typeinfo.StructTypeInfo
}

// ReadSupport resolves read requests against file schemas.
//
// A ReadSupport holds no state between calls and is safe to use concurrently
// from multiple goroutines.
type ReadSupport struct {
	config ReadSupportConfig
}

// New constructs a read support with the given options.
//
// The function panics if the configuration is invalid; use
// NewReadSupportConfig to validate options first.
func New(options ...ReadSupportOption) *ReadSupport {
	config, err := NewReadSupportConfig(options...)
	if err != nil {
		panic(err)
	}
	return &ReadSupport{config: *config}
}

// Init resolves the read request described by conf against the schema of the
// file about to be read.
//
// keyValueMetadata is the metadata of the file, it is not used.
func (rs *ReadSupport) Init(conf Configuration, keyValueMetadata map[string]string, fileSchema *schema.Message) (*ReadContext, error) {
	ctx := &ReadContext{ID: uuid.New()}
	logger := rs.config.Logger.WithField("context", ctx.ID.String())

	usePartitionColumns := getBool(conf, UsePartitionColumnsKey, false)
	indexAccess := getBool(conf, IndexAccessKey, false)
	mode := ByName
	if indexAccess {
		mode = ByIndex
	}

	tableColumnNames, _ := conf.Get(ColumnsKey)
	partitionColumnNames, _ := conf.Get(PartitionColumnsKey)

	columnNamesKey, columnTypesKey := ColumnsKey, ColumnsTypesKey
	if usePartitionColumns {
		columnNamesKey, columnTypesKey = PartitionColumnsKey, PartitionColumnsTypesKey
	}

	columnNames, ok := conf.Get(columnNamesKey)
	if !ok {
		logger.WithField("mode", mode).Debug("no columns configured, reading the file schema")
		ctx.RequestedSchema = fileSchema
		ctx.Metadata = resolutionMetadata(fileSchema, mode)
		return ctx, nil
	}

	columnTypes, _ := conf.Get(columnTypesKey)
	columns, err := ParseLogicalSchema(columnNames, columnTypes)
	if err != nil {
		return nil, err
	}

	ref, metadata := ReferenceSchema(fileSchema, columns, mode, rs.config.ListWrapperNames...)
	ctx.Metadata = metadata
	ctx.TableType = columns.StructType()

	wanted, err := readColumnIDs(conf)
	if err != nil {
		return nil, err
	}
	if usePartitionColumns {
		wanted = ToPartitionIndexColumns(wanted,
			typeinfo.ColumnNames(tableColumnNames),
			typeinfo.ColumnNames(partitionColumnNames),
		)
	}

	if getBool(conf, ReadAllColumnsKey, true) || len(wanted) == 0 {
		ctx.RequestedSchema = ref
	} else {
		ctx.RequestedSchema = RequestedSchema(ref, columns.Names(), fileSchema.NumFields(), SelectColumns(wanted...))
	}

	logger.WithFields(log.Fields{
		"mode":      mode,
		"partition": usePartitionColumns,
		"columns":   len(columns),
		"requested": ctx.RequestedSchema.NumFields(),
	}).Debug("resolved requested schema")

	return ctx, nil
}

// PrepareForRead returns what the record materializer of the read described
// by ctx is built from.
//
// The metadata of ctx is copied, and TimestampSkipConversionKey is added
// unless it is already present. The function returns an *IllegalStateError if
// ctx or its metadata are missing.
func (rs *ReadSupport) PrepareForRead(conf Configuration, keyValueMetadata map[string]string, fileSchema *schema.Message, ctx *ReadContext) (*Materialization, error) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, &IllegalStateError{Reason: "read context not initialized properly, the table schema is unknown"}
	}

	metadata := make(map[string]string, len(ctx.Metadata)+1)
	for k, v := range ctx.Metadata {
		metadata[k] = v
	}

	skip := getBool(conf, TimestampSkipConversionKey, *rs.config.TimestampSkipConversion)
	setIfAbsent(metadata, TimestampSkipConversionKey, strconv.FormatBool(skip))

	rs.config.Logger.WithField("context", ctx.ID.String()).Debug("prepared read")

	return &Materialization{
		RequestedSchema: ctx.RequestedSchema,
		Metadata:        metadata,
		TableType:       ctx.TableType,
	}, nil
}

func setIfAbsent(m map[string]string, key, value string) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}
