// Package context 保存命令执行期间共享的配置与日志记录器
package context

import (
	"context"

	"github.com/spf13/viper"
	"github.com/yeisme/dcolor/pkg/configs"
	"github.com/yeisme/dcolor/pkg/utils/log"
)

// GlobalFlags 全局命令行标志
type GlobalFlags struct {
	ConfigPath    string
	Debug         bool
	Verbose       bool
	Quiet         bool
	VersionEnable bool
}

// DcolorContext 命令上下文
type DcolorContext struct {
	context.Context
	Viper  *viper.Viper
	Config *configs.Config // 应用配置
	Logger log.Logger      // 日志记录器
}

// InitDcolorContext 加载配置并初始化日志记录器；命令行标志优先于配置文件
func InitDcolorContext(ctx context.Context, flags GlobalFlags) (*DcolorContext, error) {
	v, config, err := configs.LoadConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	if flags.Debug {
		config.App.Debug = true
	}
	if flags.Verbose {
		config.App.Verbose = true
	}
	if flags.Quiet {
		config.App.Quiet = true
	}

	logger := log.InitLogger(ctx, &config.Log, &config.App)

	return &DcolorContext{
		Context: ctx,
		Viper:   v,
		Config:  config,
		Logger:  logger,
	}, nil
}
