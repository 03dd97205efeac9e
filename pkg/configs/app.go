package configs

import (
	"github.com/spf13/viper"
)

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name" jsonschema:"title=Name,description=Application name attached to log lines"`
	Debug   bool   `mapstructure:"debug" jsonschema:"title=Debug,description=Enable debug logging with caller info"`
	Verbose bool   `mapstructure:"verbose" jsonschema:"title=Verbose,description=Enable verbose logging"`
	Quiet   bool   `mapstructure:"quiet" jsonschema:"title=Quiet,description=Suppress all log output"` // 是否安静模式，禁止所有日志输出
}

func setAppConfigDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "dcolor")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.verbose", false)
	v.SetDefault("app.quiet", false)
}
