package config

import "path/filepath"

type AppConfig struct {
	Timezone string `mapstructure:"timezone"`
	Debug    bool   `mapstructure:"debug"`
}

type StoreConfig struct {
	Path       string `mapstructure:"path"`
	StrictLoad bool   `mapstructure:"strict_load"`
}

// AbsPath resolves the store path against the working directory.
func (s *StoreConfig) AbsPath() (string, error) {
	return filepath.Abs(s.Path)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}
