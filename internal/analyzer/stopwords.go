package analyzer

import (
	"bufio"
	"os"
	"strings"
)

// fallbackStopwords 内置英文停用词回退表。
// 外部词表加载失败时使用，保证分析流程不因资源缺失而中断。
var fallbackStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"your", "yours", "yourself", "yourselves", "he", "him", "his", "himself",
	"she", "her", "hers", "herself", "it", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "these", "those", "am", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "about", "against", "between",
	"into", "through", "during", "before", "after", "above", "below", "to",
	"from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "then", "once", "here", "there", "when", "where", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other", "some", "such",
	"no", "nor", "not", "only", "own", "same", "so", "than", "too", "very", "s",
	"t", "can", "will", "just", "don", "should", "now",
}

// defaultStopwordSet 构建内置回退停用词集合
func defaultStopwordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(fallbackStopwords))
	for _, w := range fallbackStopwords {
		set[w] = struct{}{}
	}
	return set
}

// loadStopwords 从文件加载停用词表（每行一个词，#开头为注释）。
// 任何失败都返回内置回退表和一个可供记录的错误，绝不中断初始化。
func loadStopwords(path string) (map[string]struct{}, error) {
	if path == "" {
		return defaultStopwordSet(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return defaultStopwordSet(), NewResourceLoadError(err.Error())
	}
	defer f.Close()

	set := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return defaultStopwordSet(), NewResourceLoadError(err.Error())
	}
	if len(set) == 0 {
		return defaultStopwordSet(), NewResourceLoadError("词表为空: " + path)
	}
	return set, nil
}
