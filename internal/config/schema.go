package config

// Config is the top-level perfsync configuration.
type Config struct {
	DCS      DCSConfig      `mapstructure:"dcs"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// DCSConfig holds Door43 Content Service connection settings.
type DCSConfig struct {
	Server     string `mapstructure:"server"`
	Owner      string `mapstructure:"owner"`
	LanguageID string `mapstructure:"language_id"`
	TokenEnv   string `mapstructure:"token_env"`
	Token      string `mapstructure:"-"` // resolved at runtime, never written
}

// Authenticated reports whether a token was resolved from the environment.
func (d *DCSConfig) Authenticated() bool {
	return d.Token != ""
}

// Complete reports whether the selection settings a sync pass needs are
// all present.
func (d *DCSConfig) Complete() bool {
	return d.Server != "" && d.Owner != "" && d.LanguageID != ""
}

// DefaultsConfig holds default values for operations.
type DefaultsConfig struct {
	Variant   string `mapstructure:"variant"` // "literal" or "simplified"
	StageDir  string `mapstructure:"stage_dir"`
	Workspace string `mapstructure:"workspace"`
}

// EffectiveVariant returns the configured variant or "literal".
func (d *DefaultsConfig) EffectiveVariant() string {
	if d.Variant != "" {
		return d.Variant
	}
	return "literal"
}
