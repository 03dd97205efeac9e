// Package ansi turns a text buffer plus one styled span into a Discord
// "ansi" fenced code block and the matching preview segments.
package ansi

import (
	"regexp"
	"strings"
)

const (
	// FenceOpen starts the Discord code block with the ansi language tag.
	FenceOpen = "```ansi\n"
	// FenceClose ends the code block.
	FenceClose = "\n```"

	// CSI is the escape sequence introducer.
	CSI = "\x1b["
	// Reset clears every SGR attribute.
	Reset = CSI + "0m"

	// BoldCode SGR 1
	BoldCode = "1"
	// UnderlineCode SGR 4
	UnderlineCode = "4"
)

// Fence wraps body in the ansi code fence.
func Fence(body string) string {
	return FenceOpen + body + FenceClose
}

var sgrPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Strip 移除字符串中的所有 SGR 序列
func Strip(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// Unfence 去掉代码块围栏，返回正文；不是完整围栏时返回原值和 false
func Unfence(s string) (string, bool) {
	if !strings.HasPrefix(s, FenceOpen) || !strings.HasSuffix(s, FenceClose) || len(s) < len(FenceOpen)+len(FenceClose) {
		return s, false
	}
	return s[len(FenceOpen) : len(s)-len(FenceClose)], true
}
