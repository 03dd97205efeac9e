// Package palette maps the fixed Discord color swatches to ANSI SGR codes.
//
// Foreground and background are kept in separate tables: the same hex value
// may map to different codes depending on the role and on the active profile.
package palette

import "strings"

// Role 颜色所属的角色（前景/背景）
type Role int

const (
	// Foreground is the text color role.
	Foreground Role = iota
	// Background is the cell color role.
	Background
)

func (r Role) String() string {
	switch r {
	case Foreground:
		return "foreground"
	case Background:
		return "background"
	default:
		return "unknown"
	}
}

// Entry 调色板中的一项: 名称、十六进制标识以及对应的 SGR 代码
type Entry struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Hex  string `json:"hex" yaml:"hex" toml:"hex"`
	Code string `json:"code" yaml:"code" toml:"code"`
}

// Table is a read-only hex -> SGR code mapping for one role.
type Table struct {
	role     Role
	entries  []Entry
	index    map[string]int
	fallback int
}

// NewTable builds a table from entries in display order. fallbackHex must be
// one of the entries; it is returned for every identifier the table lacks.
func NewTable(role Role, fallbackHex string, entries ...Entry) *Table {
	t := &Table{
		role:    role,
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		e.Hex = normalize(e.Hex)
		t.entries[i] = e
		t.index[e.Hex] = i
	}
	i, ok := t.index[normalize(fallbackHex)]
	if !ok {
		panic("palette: fallback " + fallbackHex + " is not a " + role.String() + " entry")
	}
	t.fallback = i
	return t
}

// Role 返回表的角色
func (t *Table) Role() Role { return t.role }

// Resolve returns the SGR code for hex, or the fallback code when hex is not
// in the table. It never fails.
func (t *Table) Resolve(hex string) string {
	if e, ok := t.Lookup(hex); ok {
		return e.Code
	}
	return t.entries[t.fallback].Code
}

// Lookup 精确查找（忽略大小写）
func (t *Table) Lookup(hex string) (Entry, bool) {
	i, ok := t.index[normalize(hex)]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Default 返回回退项
func (t *Table) Default() Entry {
	return t.entries[t.fallback]
}

// Entries returns a copy of the entries in display order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func normalize(hex string) string {
	return strings.ToLower(hex)
}
