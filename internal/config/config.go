package config

import (
	"github.com/spf13/viper"
)

// EngineConfig holds the runtime settings for a processing run.
type EngineConfig struct {
	InputPath       string
	ReadBufferSize  int
	ReportPrecision int32
}

// LoadEngineConfig returns engine configuration with defaults.
func LoadEngineConfig() *EngineConfig {
	viper.SetDefault("engine.input", "")
	viper.SetDefault("engine.read_buffer", 1000)
	viper.SetDefault("report.precision", 4)

	return &EngineConfig{
		InputPath:       viper.GetString("engine.input"),
		ReadBufferSize:  viper.GetInt("engine.read_buffer"),
		ReportPrecision: int32(viper.GetInt("report.precision")),
	}
}
