package readsupport

import (
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Configuration keys read by ReadSupport.Init and ReadSupport.PrepareForRead.
const (
	ColumnsKey               = "columns"
	ColumnsTypesKey          = "columns.types"
	PartitionColumnsKey      = "partition_columns"
	PartitionColumnsTypesKey = "partition_columns.types"
	UsePartitionColumnsKey   = "parquet.column.use.partition"
	ReadColumnIDsKey         = "hive.io.file.readcolumn.ids"
	ReadAllColumnsKey        = "hive.io.file.read.all.columns"
	// TimestampSkipConversionKey is merged into the metadata handed to
	// materializers when it is not already present.
	TimestampSkipConversionKey = "hive.parquet.timestamp.skip.conversion"
)

// Configuration is the set of string properties describing a read request.
type Configuration interface {
	// Get returns the value of the property, and whether it was set.
	Get(key string) (string, bool)
}

// Properties is a map-based implementation of Configuration.
type Properties map[string]string

// Get satisfies the Configuration interface.
func (p Properties) Get(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// getBool interprets properties like Hadoop configurations do: "true" and
// "false" in any case, surrounded by spaces or not. Missing or unrecognized
// values yield the default.
func getBool(conf Configuration, key string, defaultValue bool) bool {
	v, ok := conf.Get(key)
	if !ok {
		return defaultValue
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true":
		return true
	case "false":
		return false
	default:
		return defaultValue
	}
}

// readColumnIDs returns the wanted column ordinals. Duplicates are removed,
// keeping the position of their first occurrence.
func readColumnIDs(conf Configuration) ([]int, error) {
	v, _ := conf.Get(ReadColumnIDsKey)
	ids := []int{}
	seen := map[int]struct{}{}

	for _, field := range strings.Split(v, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil || id < 0 {
			return nil, errorInvalidOptionValue(ReadColumnIDsKey, v)
		}
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// DefaultListWrapperNames are the names of the synthetic groups that some
// writers insert between a list and its struct elements.
var DefaultListWrapperNames = []string{"array", "list"}

const DefaultTimestampSkipConversion = true

// The ReadSupportConfig type carries configuration options for read supports.
//
// ReadSupportConfig implements the ReadSupportOption interface so it can be
// used directly as argument to the New function when needed, for example:
//
//	rs := readsupport.New(&readsupport.ReadSupportConfig{
//		ListWrapperNames: []string{"bag", "array", "list"},
//	})
type ReadSupportConfig struct {
	Logger                  log.FieldLogger
	ListWrapperNames        []string
	TimestampSkipConversion *bool
}

// DefaultReadSupportConfig returns a new ReadSupportConfig value initialized
// with the default configuration.
func DefaultReadSupportConfig() *ReadSupportConfig {
	skip := DefaultTimestampSkipConversion
	return &ReadSupportConfig{
		Logger:                  log.StandardLogger(),
		ListWrapperNames:        DefaultListWrapperNames,
		TimestampSkipConversion: &skip,
	}
}

// NewReadSupportConfig constructs a new configuration applying the options
// on top of the defaults, and validates it.
func NewReadSupportConfig(options ...ReadSupportOption) (*ReadSupportConfig, error) {
	config := DefaultReadSupportConfig()
	config.Apply(options...)
	return config, config.Validate()
}

// Apply applies the given list of options to c.
func (c *ReadSupportConfig) Apply(options ...ReadSupportOption) {
	for _, opt := range options {
		opt.ConfigureReadSupport(c)
	}
}

// ConfigureReadSupport applies configuration options from c to config.
func (c *ReadSupportConfig) ConfigureReadSupport(config *ReadSupportConfig) {
	*config = ReadSupportConfig{
		Logger:                  coalesceLogger(c.Logger, config.Logger),
		ListWrapperNames:        coalesceStrings(c.ListWrapperNames, config.ListWrapperNames),
		TimestampSkipConversion: coalesceBool(c.TimestampSkipConversion, config.TimestampSkipConversion),
	}
}

// Validate returns a non-nil error if the configuration of c is invalid.
func (c *ReadSupportConfig) Validate() error {
	const baseName = "readsupport.(*ReadSupportConfig)."
	return errorInvalidConfiguration(
		validateNotNil(baseName+"Logger", c.Logger),
		validateNotNil(baseName+"TimestampSkipConversion", c.TimestampSkipConversion),
		validateNonEmptyStrings(baseName+"ListWrapperNames", c.ListWrapperNames),
	)
}

// ReadSupportOption is an interface implemented by types that carry
// configuration options for read supports.
type ReadSupportOption interface {
	ConfigureReadSupport(*ReadSupportConfig)
}

// Logger configures the logger that read supports emit debug entries to.
//
// Defaults to the logrus standard logger.
func Logger(logger log.FieldLogger) ReadSupportOption {
	return readSupportOption(func(config *ReadSupportConfig) { config.Logger = logger })
}

// ListWrapperNames configures the names of wrapper groups recognized between
// lists and their struct elements.
//
// Defaults to DefaultListWrapperNames.
func ListWrapperNames(names ...string) ReadSupportOption {
	names = append([]string{}, names...)
	return readSupportOption(func(config *ReadSupportConfig) { config.ListWrapperNames = names })
}

// TimestampSkipConversion configures the value merged into read metadata
// under TimestampSkipConversionKey when neither the metadata nor the
// configuration of the read provide it.
//
// Defaults to true.
func TimestampSkipConversion(skip bool) ReadSupportOption {
	return readSupportOption(func(config *ReadSupportConfig) { config.TimestampSkipConversion = &skip })
}

type readSupportOption func(*ReadSupportConfig)

func (opt readSupportOption) ConfigureReadSupport(config *ReadSupportConfig) { opt(config) }

func coalesceLogger(l1, l2 log.FieldLogger) log.FieldLogger {
	if l1 != nil {
		return l1
	}
	return l2
}

func coalesceStrings(s1, s2 []string) []string {
	if s1 != nil {
		return s1
	}
	return s2
}

func coalesceBool(b1, b2 *bool) *bool {
	if b1 != nil {
		return b1
	}
	return b2
}

func validateNotNil(optionName string, optionValue interface{}) error {
	switch v := optionValue.(type) {
	case nil:
		return errorInvalidOptionValue(optionName, optionValue)
	case *bool:
		if v == nil {
			return errorInvalidOptionValue(optionName, optionValue)
		}
	}
	return nil
}

func validateNonEmptyStrings(optionName string, optionValue []string) error {
	if len(optionValue) == 0 {
		return errorInvalidOptionValue(optionName, optionValue)
	}
	for _, s := range optionValue {
		if s == "" {
			return errorInvalidOptionValue(optionName, optionValue)
		}
	}
	return nil
}
