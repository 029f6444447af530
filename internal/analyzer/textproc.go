package analyzer

import (
	"strings"
)

// punctuationChars ASCII标点集合，归一化时直接删除（不替换为空格）
const punctuationChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize 将原始文本归一化为词根序列：
// 小写 -> 去标点 -> 分词 -> 去停用词 -> 还原词根。
// 空输入返回空序列，不会报错。重复词保留，后续按频率统计。
func (a *ResumeAnalyzer) Normalize(text string) []string {
	if text == "" {
		return nil
	}

	lowered := strings.ToLower(text)

	// 删除标点。"node.js" -> "nodejs"，"c++" -> "c"
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuationChars, r) {
			return -1
		}
		return r
	}, lowered)

	tokens := strings.Fields(stripped)

	result := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, isStop := a.stopwords[tok]; isStop {
			continue
		}
		result = append(result, lemmatize(tok))
	}
	return result
}

// lemmatize 将词折叠为词典原形："running"->"run"，"skills"->"skill"，
// "technologies"->"technology"。没有词典可查，只能靠后缀规则近似，
// 规则故意保守：两侧文档走同一套规则，折叠偏差不影响互相匹配。
func lemmatize(token string) string {
	n := len(token)
	if n <= 3 {
		return token
	}

	if n > 5 && strings.HasSuffix(token, "ing") {
		if stem := verbStem(token[:n-3]); stem != "" {
			return stem
		}
		return token
	}
	if n > 4 && strings.HasSuffix(token, "ed") {
		if stem := verbStem(token[:n-2]); stem != "" {
			return stem
		}
		return token
	}
	return nounLemma(token)
}

// verbStem 整理去掉ing/ed后缀后的词干；无法得到合理词干时返回空串
func verbStem(stem string) string {
	if len(stem) < 3 {
		return ""
	}
	last := stem[len(stem)-1]

	// 双写的尾辅音折叠回单写: "runn" -> "run"，"ll"/"ss"保留
	if len(stem) >= 4 && last == stem[len(stem)-2] {
		switch last {
		case 'b', 'd', 'g', 'm', 'n', 'p', 'r', 't':
			return stem[:len(stem)-1]
		}
		return stem
	}

	// 还原被后缀吃掉的词尾e: "experienc" -> "experience"，"improv" -> "improve"
	switch last {
	case 'c', 'u', 'v', 'z':
		return stem + "e"
	case 'g':
		// 仅元音+g还原e: "manag" -> "manage"；"belong"不动
		prev := stem[len(stem)-2]
		if prev == 'a' || prev == 'e' || prev == 'i' || prev == 'o' || prev == 'u' {
			return stem + "e"
		}
	}
	return stem
}

// nounLemma 名词复数折叠，近似WordNet的名词变形规则
func nounLemma(token string) string {
	n := len(token)
	switch {
	case strings.HasSuffix(token, "men"):
		return token[:n-3] + "man"
	case strings.HasSuffix(token, "ies") && n > 4:
		return token[:n-3] + "y"
	case strings.HasSuffix(token, "sses") || strings.HasSuffix(token, "shes") ||
		strings.HasSuffix(token, "ches") || strings.HasSuffix(token, "xes") ||
		strings.HasSuffix(token, "zes"):
		return token[:n-2]
	case strings.HasSuffix(token, "ss") || strings.HasSuffix(token, "us") ||
		strings.HasSuffix(token, "is"):
		// "business"、"status"、"analysis" 等不是复数
		return token
	case strings.HasSuffix(token, "s"):
		return token[:n-1]
	}
	return token
}
