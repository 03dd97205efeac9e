// Package configs 提供应用程序配置管理功能
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 DCOLOR_FORMAT_PROFILE
const EnvPrefix = "DCOLOR"

// Config 应用配置结构
type Config struct {
	Version string       `mapstructure:"version" jsonschema:"title=Version,description=Config file version"`
	Log     LogConfig    `mapstructure:"log" jsonschema:"title=Log,description=Logging settings"`
	App     AppConfig    `mapstructure:"app" jsonschema:"title=App,description=Application settings"`
	Format  FormatConfig `mapstructure:"format" jsonschema:"title=Format,description=Default formatting settings"`
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", "1.0")
	setLogConfigDefaults(v)
	setAppConfigDefaults(v)
	setFormatConfigDefaults(v)
}

// NewViper 创建带默认值和环境变量绑定的 viper 实例
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// searchPaths 配置文件搜索路径
func searchPaths() []string {
	paths := []string{
		".",
		"./configs",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/dcolor",
	}

	// Windows 特殊路径
	if runtime.GOOS == "windows" {
		paths = append(paths,
			"$USERPROFILE",
			"$APPDATA/dcolor",
		)
	} else {
		paths = append(paths, "/etc/dcolor")
	}
	return paths
}

// tryLoadConfigFiles 尝试加载不同格式的配置文件
func tryLoadConfigFiles(v *viper.Viper) bool {
	// 配置文件名和扩展名的组合
	configNames := []string{".dcolor", "dcolor"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths() {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)

				// 展开环境变量
				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}

				if _, err := os.Stat(configFile); err == nil {
					v.SetConfigFile(configFile)
					return true
				}
			}
		}
	}

	return false
}

// LoadConfig 加载配置文件
//
// configPath 为空时按搜索路径查找；找不到配置文件不是错误，使用默认值。
func LoadConfig(configPath string) (*viper.Viper, *Config, error) {
	v := NewViper()

	found := true
	if configPath != "" {
		// 使用指定的配置文件路径
		v.SetConfigFile(configPath)
	} else {
		// 尝试查找多种格式的配置文件
		found = tryLoadConfigFiles(v)
	}

	// 读取配置文件
	if found {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, nil, fmt.Errorf("读取配置文件失败: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if err := config.Format.Validate(); err != nil {
		return nil, nil, fmt.Errorf("配置校验失败: %w", err)
	}

	// 确保日志目录存在
	if config.Log.Mode == "file" || config.Log.Mode == "both" {
		logDir := filepath.Dir(config.Log.FilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
	}

	return v, &config, nil
}

// Defaults 返回只包含默认值的配置
func Defaults() Config {
	var config Config
	// 默认值都是基础类型，Unmarshal 不会失败
	_ = NewViper().Unmarshal(&config)
	return config
}
