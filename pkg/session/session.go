// Package session holds the editor state a caller threads through the
// formatting engine: the buffer, the current selection, the active colors and
// the last result.
package session

import (
	"github.com/yeisme/dcolor/pkg/ansi"
	"github.com/yeisme/dcolor/pkg/palette"
)

// State 编辑器状态
//
// 格式化引擎本身是纯函数，所有可变状态都由 State 持有，调用方负责串行化操作。
type State struct {
	Text       string
	Foreground string
	Background string
	Selection  ansi.Span
	Output     ansi.Result

	formatter *ansi.Formatter
}

// Option 配置 State 的初始值
type Option func(*State)

// WithText 设置初始文本
func WithText(text string) Option {
	return func(s *State) { s.Text = text }
}

// WithForeground 设置初始前景色，空值忽略
func WithForeground(hex string) Option {
	return func(s *State) {
		if hex != "" {
			s.Foreground = hex
		}
	}
}

// WithBackground 设置初始背景色，空值忽略
func WithBackground(hex string) Option {
	return func(s *State) {
		if hex != "" {
			s.Background = hex
		}
	}
}

// New creates a state bound to profile, starting from the profile's neutral
// colors.
func New(profile *palette.Profile, opts ...Option) *State {
	s := &State{formatter: ansi.New(profile)}
	s.resetColors()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Formatter 返回绑定的格式化器
func (s *State) Formatter() *ansi.Formatter { return s.formatter }

// SetText 替换缓冲区内容，原选区会在下次格式化时被裁剪
func (s *State) SetText(text string) { s.Text = text }

// Select 设置选区，空选区表示整个缓冲区
func (s *State) Select(span ansi.Span) { s.Selection = span }

// SetForeground 设置前景色
func (s *State) SetForeground(hex string) { s.Foreground = hex }

// SetBackground 设置背景色
func (s *State) SetBackground(hex string) { s.Background = hex }

// Apply formats the selection (or the whole buffer when nothing is selected)
// with the active colors and stores the result.
func (s *State) Apply(bold, underline bool) ansi.Result {
	s.Output = s.formatter.Format(ansi.Request{
		Text: s.Text,
		Span: s.Selection,
		Style: ansi.Style{
			Foreground: s.Foreground,
			Background: s.Background,
			Bold:       bold,
			Underline:  underline,
		},
	})
	return s.Output
}

// Generate 仅应用颜色
func (s *State) Generate() ansi.Result { return s.Apply(false, false) }

// Bold 应用颜色并加粗
func (s *State) Bold() ansi.Result { return s.Apply(true, false) }

// Underline 应用颜色并加下划线
func (s *State) Underline() ansi.Result { return s.Apply(false, true) }

// Reset clears the buffer, selection and output and restores the profile's
// default colors.
func (s *State) Reset() {
	s.Text = ""
	s.Selection = ansi.Span{}
	s.Output = ansi.Result{}
	s.resetColors()
}

// HasOutput reports whether there is a result worth previewing.
func (s *State) HasOutput() bool {
	return s.Output.ANSI != "" && len(s.Output.Segments) > 0
}

func (s *State) resetColors() {
	s.Foreground, s.Background = s.formatter.Profile().Neutral()
}
