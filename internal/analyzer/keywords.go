package analyzer

import (
	"math"
	"sort"
	"unicode/utf8"

	"resume-match-go/internal/constants"
)

// ExtractKeywords 提取文本中最重要的n个关键词。
// 过滤单字符词和纯数字词；频率相同的词按首次出现顺序排序，
// 因此同一输入的结果是确定的。n<=0 时取默认值，上限100。
func (a *ResumeAnalyzer) ExtractKeywords(text string, n int) []string {
	if n <= 0 {
		n = constants.DefaultKeywordCount
	}
	if n > constants.MaxKeywordCount {
		n = constants.MaxKeywordCount
	}

	tokens := a.Normalize(text)

	// 保序频率统计，等价于插入序字典上的计数
	counts := make(map[string]int)
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	// 过滤掉单字符词和纯数字词
	filtered := order[:0]
	for _, tok := range order {
		if utf8.RuneCountInString(tok) <= 1 || isAllDigits(tok) {
			continue
		}
		filtered = append(filtered, tok)
	}

	// 稳定排序：频率降序，同频保持首次出现顺序
	sort.SliceStable(filtered, func(i, j int) bool {
		return counts[filtered[i]] > counts[filtered[j]]
	})

	if len(filtered) > n {
		filtered = filtered[:n]
	}
	out := make([]string, len(filtered))
	copy(out, filtered)
	return out
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// matchKeywords 计算关键词重合度得分。
// 返回得分以及匹配/缺失列表，两个列表均按JD侧关键词顺序排列。
// JD侧没有任何关键词时视为无要求，得分100且简历侧全部计为匹配。
func matchKeywords(resumeKeywords, jobKeywords []string) (int, []string, []string) {
	if len(jobKeywords) == 0 {
		matched := make([]string, len(resumeKeywords))
		copy(matched, resumeKeywords)
		return 100, matched, []string{}
	}

	resumeSet := make(map[string]struct{}, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		resumeSet[kw] = struct{}{}
	}

	matched := make([]string, 0, len(jobKeywords))
	missing := make([]string, 0, len(jobKeywords))
	for _, kw := range jobKeywords {
		if _, ok := resumeSet[kw]; ok {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := int(math.Round(float64(len(matched)) / float64(len(jobKeywords)) * 100))
	return score, matched, missing
}

// truncateList 截断展示列表，保证结果非nil以便序列化为JSON数组
func truncateList(list []string, limit int) []string {
	if list == nil {
		return []string{}
	}
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
