// Package style 提供终端样式化输出功能：预览框、表格、标题与 Markdown
package style

import "github.com/charmbracelet/lipgloss"

// 定义一套颜色，方便管理和修改
const (
	// 主题强调色/品牌色，用于吸引注意力的元素，如标题背景
	ColorAccentPrimary = lipgloss.Color("#5865F2")

	// 强调文本色，用于在强调背景(AccentPrimary)上显示的文本，以确保对比度
	ColorAccentText = lipgloss.Color("#FFFFFF")

	// 主要文本颜色
	ColorText = lipgloss.Color("#E4E4E4")

	// 边框颜色，用于表格或容器的轮廓
	ColorBorder = lipgloss.Color("#444444")

	// 预览框背景，与 Discord 深色主题的消息背景一致
	ColorPreviewBackground = lipgloss.Color("#2F3136")

	// 危险/错误强调色
	ColorDanger = lipgloss.Color("#FF5555")

	// 成功 绿色
	ColorSuccess = lipgloss.Color("#22C55E")
)
