package configs

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/yeisme/dcolor/pkg/palette"
)

// FormatConfig 格式化默认值
type FormatConfig struct {
	Profile       string `mapstructure:"profile" jsonschema:"title=Profile,description=Palette profile,enum=classic,enum=bright"`
	Foreground    string `mapstructure:"foreground" jsonschema:"title=Foreground,description=Default foreground (hex or color name); empty uses the profile default"`
	Background    string `mapstructure:"background" jsonschema:"title=Background,description=Default background (hex or color name); empty uses the profile default"`
	Preview       bool   `mapstructure:"preview" jsonschema:"title=Preview,description=Render a terminal preview to stderr"`
	WatchDebounce int    `mapstructure:"watch_debounce" jsonschema:"title=WatchDebounce,description=Debounce for --watch in milliseconds,minimum=0"` // 毫秒
}

func setFormatConfigDefaults(v *viper.Viper) {
	v.SetDefault("format.profile", palette.DefaultProfile)
	v.SetDefault("format.foreground", "")
	v.SetDefault("format.background", "")
	v.SetDefault("format.preview", false)
	v.SetDefault("format.watch_debounce", 300)
}

// Validate 检查配置中的调色板名称以及颜色是否能被解析
func (c FormatConfig) Validate() error {
	p, err := palette.Get(c.Profile)
	if err != nil {
		return err
	}
	if c.Foreground != "" {
		if e, _ := p.Foreground.Match(c.Foreground); e.Hex == "" {
			return fmt.Errorf("format.foreground %q is not in the %s palette", c.Foreground, p.Name)
		}
	}
	if c.Background != "" {
		if e, _ := p.Background.Match(c.Background); e.Hex == "" {
			return fmt.Errorf("format.background %q is not in the %s palette", c.Background, p.Name)
		}
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("format.watch_debounce must not be negative, got %d", c.WatchDebounce)
	}
	return nil
}
