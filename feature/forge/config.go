package forge

// Config holds environment configuration for the forge feature.
type Config struct {
	// Profile is the save profile whose storage slots this instance manages.
	Profile string `mapstructure:"profile" default:"default"`
	// CatalogObject is the storage object holding the base item catalog.
	CatalogObject string `mapstructure:"catalog_object" default:"gamedata/items.json"`
	// ConfigObject is the storage object holding the rune configuration.
	ConfigObject string `mapstructure:"config_object" default:"gamedata/forge.json"`
	// CleanupDelaySeconds is how long to wait after startup before the
	// cleanup pass runs, giving the host interface time to settle.
	CleanupDelaySeconds int `mapstructure:"cleanup_delay_seconds" default:"1"`
}
