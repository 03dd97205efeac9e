package configs

import "github.com/spf13/viper"

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level" jsonschema:"title=Level,enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal,enum=panic"` // 日志级别: trace, debug, info, warn, error, fatal, panic
	JSON       bool   `mapstructure:"json" jsonschema:"title=JSON,description=Write log lines as JSON"`                                          // 是否使用 JSON 格式输出
	Mode       string `mapstructure:"mode" jsonschema:"title=Mode,enum=console,enum=file,enum=both"`                                            // 输出模式: console, file, both
	FilePath   string `mapstructure:"file_path" jsonschema:"title=FilePath,description=Log file path for file and both modes"`                  // 文件路径（当 mode 为 file 或 both 时使用）
	MaxSize    int    `mapstructure:"max_size" jsonschema:"title=MaxSize,description=Max log file size in MB,minimum=1"`                         // 日志文件最大大小（MB）
	MaxBackups int    `mapstructure:"max_backups" jsonschema:"title=MaxBackups,minimum=0"`                                                      // 保留的备份文件数量
	MaxAge     int    `mapstructure:"max_age" jsonschema:"title=MaxAge,description=Days to keep rotated files,minimum=0"`                       // 文件保留天数
}

func setLogConfigDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)
	v.SetDefault("log.mode", "console")
	v.SetDefault("log.file_path", ".dcolor/dcolor.log")
	v.SetDefault("log.max_size", 100)  // MB
	v.SetDefault("log.max_backups", 3) // 保留的备份文件数量
	v.SetDefault("log.max_age", 28)    // 文件保留天数
}
