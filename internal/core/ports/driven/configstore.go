package driven

// ConfigStore provides persistent key-value configuration.
type ConfigStore interface {
	// Get retrieves a raw value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string value, "" when absent.
	GetString(key string) string

	// Set stores a value and persists the store.
	Set(key string, value any) error

	// Delete removes a key and persists the store.
	Delete(key string) error
}

// Well-known configuration keys.
const (
	ConfigKeyToken        = "notion.token"
	ConfigKeyDataSourceID = "notion.data_source_id"
	ConfigKeyOutputDir    = "export.output_dir"
	ConfigKeyFormat       = "export.format"
)
