package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownProfile is returned by Get for names that are not registered.
var ErrUnknownProfile = errors.New("unknown palette profile")

// Profile 一套完整的调色板配置
//
// 不同配置之间的代码体系互不兼容（例如前景 30-37 与 90-97），
// 因此作为独立的具名配置存在，由调用方在构造时显式选择。
type Profile struct {
	Name        string
	Description string
	Foreground  *Table
	Background  *Table
	// Underline 表示该配置是否支持 SGR 4
	Underline bool
}

// ResolveForeground 解析前景色代码
func (p *Profile) ResolveForeground(hex string) string {
	return p.Foreground.Resolve(hex)
}

// ResolveBackground 解析背景色代码
func (p *Profile) ResolveBackground(hex string) string {
	return p.Background.Resolve(hex)
}

// Table returns the table for role.
func (p *Profile) Table(role Role) *Table {
	if role == Background {
		return p.Background
	}
	return p.Foreground
}

// Neutral returns the default foreground and background identifiers used for
// unstyled text.
func (p *Profile) Neutral() (fg, bg string) {
	return p.Foreground.Default().Hex, p.Background.Default().Hex
}

const (
	// DefaultProfile 默认使用的配置名称
	DefaultProfile = "classic"

	hexWhite   = "#ffffff"
	hexFirefly = "#002b36"
)

// Classic is the palette of the Discord desktop client: standard 30-37
// foregrounds, 40-47 backgrounds, underline available.
var Classic = &Profile{
	Name:        "classic",
	Description: "Discord desktop palette, SGR 30-37 / 40-47, bold and underline",
	Foreground: NewTable(Foreground, hexWhite,
		Entry{Name: "gray", Hex: "#4f545c", Code: "30"},
		Entry{Name: "red", Hex: "#dc322f", Code: "31"},
		Entry{Name: "green", Hex: "#859900", Code: "32"},
		Entry{Name: "yellow", Hex: "#b58900", Code: "33"},
		Entry{Name: "blue", Hex: "#268bd2", Code: "34"},
		Entry{Name: "pink", Hex: "#d33682", Code: "35"},
		Entry{Name: "cyan", Hex: "#2aa198", Code: "36"},
		Entry{Name: "white", Hex: hexWhite, Code: "37"},
	),
	Background: NewTable(Background, hexFirefly,
		Entry{Name: "firefly dark blue", Hex: hexFirefly, Code: "40"},
		Entry{Name: "orange", Hex: "#cb4b16", Code: "41"},
		Entry{Name: "marble blue", Hex: "#586e75", Code: "42"},
		Entry{Name: "greyish turquoise", Hex: "#657b83", Code: "43"},
		Entry{Name: "gray", Hex: "#839496", Code: "44"},
		Entry{Name: "indigo", Hex: "#6c71c4", Code: "45"},
		Entry{Name: "light gray", Hex: "#93a1a1", Code: "46"},
		Entry{Name: "white", Hex: "#fdf6e3", Code: "47"},
	),
	Underline: true,
}

// Bright uses the high-intensity 90-97 foregrounds and has no underline.
// Both grays share background 44.
var Bright = &Profile{
	Name:        "bright",
	Description: "high-intensity SGR 90-97 foregrounds, 40-45 backgrounds, bold only",
	Foreground: NewTable(Foreground, hexWhite,
		Entry{Name: "gray", Hex: "#4f545c", Code: "90"},
		Entry{Name: "red", Hex: "#dc322f", Code: "91"},
		Entry{Name: "green", Hex: "#859900", Code: "92"},
		Entry{Name: "yellow", Hex: "#b58900", Code: "93"},
		Entry{Name: "blue", Hex: "#268bd2", Code: "94"},
		Entry{Name: "pink", Hex: "#d33682", Code: "95"},
		Entry{Name: "cyan", Hex: "#2aa198", Code: "96"},
		Entry{Name: "white", Hex: hexWhite, Code: "97"},
	),
	Background: NewTable(Background, hexFirefly,
		Entry{Name: "firefly dark blue", Hex: hexFirefly, Code: "40"},
		Entry{Name: "orange", Hex: "#cb4b16", Code: "41"},
		Entry{Name: "marble blue", Hex: "#586e75", Code: "42"},
		Entry{Name: "greyish turquoise", Hex: "#657b83", Code: "43"},
		Entry{Name: "gray", Hex: "#839496", Code: "44"},
		Entry{Name: "indigo", Hex: "#6c71c4", Code: "45"},
		Entry{Name: "light gray", Hex: "#93a1a1", Code: "44"},
	),
	Underline: false,
}

var profiles = map[string]*Profile{
	Classic.Name: Classic,
	Bright.Name:  Bright,
}

// Get 根据名称获取配置（忽略大小写），空名称返回默认配置
func Get(name string) (*Profile, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultProfile
	}
	p, ok := profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownProfile, name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names 返回所有已注册配置的名称（已排序）
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
