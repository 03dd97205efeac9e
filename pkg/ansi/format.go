package ansi

import (
	"strings"

	"github.com/yeisme/dcolor/pkg/palette"
)

// Span is a half-open [Start, End) range of character (rune) offsets.
// An empty span selects the whole buffer.
type Span struct {
	Start int `json:"start" yaml:"start" toml:"start"`
	End   int `json:"end" yaml:"end" toml:"end"`
}

// Empty reports whether the span selects nothing.
func (s Span) Empty() bool { return s.Start == s.End }

// Len 返回跨度长度（反向跨度按绝对值计算）
func (s Span) Len() int {
	if s.End < s.Start {
		return s.Start - s.End
	}
	return s.End - s.Start
}

// clamp 将跨度限制在 [0, n] 内；反向跨度会被交换，空跨度扩展为整个缓冲区
func (s Span) clamp(n int) Span {
	s.Start = min(max(s.Start, 0), n)
	s.End = min(max(s.End, 0), n)
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	if s.Empty() {
		return Span{Start: 0, End: n}
	}
	return s
}

// Style 样式属性，颜色使用调色板中的十六进制标识
type Style struct {
	Foreground string `json:"fg" yaml:"fg" toml:"fg"`
	Background string `json:"bg" yaml:"bg" toml:"bg"`
	Bold       bool   `json:"bold" yaml:"bold" toml:"bold"`
	Underline  bool   `json:"underline" yaml:"underline" toml:"underline"`
}

// Segment is a piece of the buffer with the style it is previewed in.
type Segment struct {
	Text       string `json:"text" yaml:"text" toml:"text"`
	Foreground string `json:"fg" yaml:"fg" toml:"fg"`
	Background string `json:"bg" yaml:"bg" toml:"bg"`
	Bold       bool   `json:"bold" yaml:"bold" toml:"bold"`
	Underline  bool   `json:"underline" yaml:"underline" toml:"underline"`
}

// Style returns the segment's effective style.
func (s Segment) Style() Style {
	return Style{Foreground: s.Foreground, Background: s.Background, Bold: s.Bold, Underline: s.Underline}
}

// Request 一次格式化请求
type Request struct {
	Text  string
	Span  Span
	Style Style
}

// Result 格式化结果: 可直接粘贴到 Discord 的文本和预览片段
type Result struct {
	ANSI     string    `json:"ansi" yaml:"ansi" toml:"ansi"`
	Segments []Segment `json:"segments" yaml:"segments" toml:"segments"`
}

// Text 拼接所有片段，得到原始文本
func (r Result) Text() string {
	var b strings.Builder
	for _, s := range r.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Formatter formats requests against one palette profile. It holds no
// mutable state and is safe for concurrent use.
type Formatter struct {
	profile *palette.Profile
}

// New 创建格式化器；profile 为 nil 时使用 palette.Classic
func New(profile *palette.Profile) *Formatter {
	if profile == nil {
		profile = palette.Classic
	}
	return &Formatter{profile: profile}
}

// Profile 返回格式化器绑定的配置
func (f *Formatter) Profile() *palette.Profile { return f.profile }

// Neutral returns the style used for text outside the span.
func (f *Formatter) Neutral() Style {
	fg, bg := f.profile.Neutral()
	return Style{Foreground: fg, Background: bg}
}

// Effective drops attributes the profile cannot express.
func (f *Formatter) Effective(st Style) Style {
	if !f.profile.Underline {
		st.Underline = false
	}
	return st
}

// Codes returns the SGR tokens for st in wire order:
// bold, underline, foreground, background. Color codes are always present.
func (f *Formatter) Codes(st Style) []string {
	st = f.Effective(st)
	codes := make([]string, 0, 4)
	if st.Bold {
		codes = append(codes, BoldCode)
	}
	if st.Underline {
		codes = append(codes, UnderlineCode)
	}
	return append(codes,
		f.profile.ResolveForeground(st.Foreground),
		f.profile.ResolveBackground(st.Background),
	)
}

// Sequence 返回样式对应的完整转义序列，例如 "\x1b[1;31;40m"
func (f *Formatter) Sequence(st Style) string {
	return CSI + strings.Join(f.Codes(st), ";") + "m"
}

// Format splits req.Text around req.Span into prefix, styled middle and
// suffix, and serializes them into the fenced escape string. Out-of-range
// spans are clamped; the call never fails.
func (f *Formatter) Format(req Request) Result {
	runes := []rune(req.Text)
	span := req.Span.clamp(len(runes))

	prefix := string(runes[:span.Start])
	middle := string(runes[span.Start:span.End])
	suffix := string(runes[span.End:])

	style := f.Effective(req.Style)
	neutral := f.Neutral()

	segments := make([]Segment, 0, 3)
	var body strings.Builder
	body.Grow(len(req.Text) + 16)

	if prefix != "" {
		segments = append(segments, newSegment(prefix, neutral))
		body.WriteString(prefix)
	}
	if middle != "" {
		segments = append(segments, newSegment(middle, style))
		body.WriteString(f.Sequence(style))
		body.WriteString(middle)
		body.WriteString(Reset)
	}
	if suffix != "" {
		segments = append(segments, newSegment(suffix, neutral))
		body.WriteString(suffix)
	}

	return Result{ANSI: Fence(body.String()), Segments: segments}
}

func newSegment(text string, st Style) Segment {
	return Segment{
		Text:       text,
		Foreground: st.Foreground,
		Background: st.Background,
		Bold:       st.Bold,
		Underline:  st.Underline,
	}
}
