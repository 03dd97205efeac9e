package palette

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match 根据用户输入查找调色板项
//
// 查找顺序:
//  1. 十六进制标识精确匹配（忽略大小写，允许省略 '#'）
//  2. 名称精确匹配（忽略大小写）
//  3. 名称模糊匹配，返回按距离排序的候选项
//
// 只有唯一结果时返回 exact；否则 exact 为零值，candidates 为候选列表。
func (t *Table) Match(query string) (exact Entry, candidates []Entry) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Entry{}, nil
	}
	if e, ok := t.Lookup(q); ok {
		return e, nil
	}
	if !strings.HasPrefix(q, "#") {
		if e, ok := t.Lookup("#" + q); ok {
			return e, nil
		}
	}
	for _, e := range t.entries {
		if strings.EqualFold(e.Name, q) {
			return e, nil
		}
	}

	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	ranks := fuzzy.RankFindFold(q, names)
	sort.Sort(ranks)
	for _, r := range ranks {
		candidates = append(candidates, t.entries[r.OriginalIndex])
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	return Entry{}, candidates
}
