package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"resume-match-go/internal/constants"
)

// 章节名称常量
const (
	SectionSkills     = "skills"
	SectionEducation  = "education"
	SectionExperience = "experience"
	SectionFullText   = "full_text"
)

// sectionPatterns 章节标题的关键词族，按固定顺序匹配。
// 顺序敏感：一行同时命中多族时取先出现的族。
var sectionPatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{SectionSkills, regexp.MustCompile(`(?i)(skills|technical skills|core competencies|expertise|proficiencies|qualifications|technologies|tools)`)},
	{SectionEducation, regexp.MustCompile(`(?i)(education|academic|degree|university|college|school|certification)`)},
	{SectionExperience, regexp.MustCompile(`(?i)(experience|work experience|employment|job history|professional experience|career)`)},
}

// ExtractSections 按标题行启发式把文档切分为带标签的章节。
// 一行被视为章节标题需要同时满足：命中某个关键词族，且长度小于50字符
// （避免把恰好提到 "experience" 的正文句子误判为标题）。
// 同名标题后出现者覆盖先前内容。未识别出任何标题时，
// 返回仅含 full_text 的映射，值为整篇原文。
func (a *ResumeAnalyzer) ExtractSections(text string) map[string]string {
	sections := make(map[string]string)

	lines := strings.Split(text, "\n")
	currentSection := ""
	var sectionContent []string

	for _, rawLine := range lines {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		isHeader := false
		for _, sp := range sectionPatterns {
			if sp.re.MatchString(line) && utf8.RuneCountInString(line) < constants.MaxHeaderLineLen {
				// 遇到新标题时先落盘上一个章节
				if currentSection != "" {
					sections[currentSection] = strings.Join(sectionContent, "\n")
				}
				currentSection = sp.name
				sectionContent = nil
				isHeader = true
				break
			}
		}

		if !isHeader && currentSection != "" {
			sectionContent = append(sectionContent, line)
		}
	}

	// 收尾：最后一个打开的章节
	if currentSection != "" && len(sectionContent) > 0 {
		sections[currentSection] = strings.Join(sectionContent, "\n")
	}

	if len(sections) == 0 {
		sections[SectionFullText] = text
	}
	return sections
}

// sectionOrFull 取指定章节文本，缺失时回退到整篇文档
func sectionOrFull(sections map[string]string, name, fullText string) string {
	if content, ok := sections[name]; ok {
		return content
	}
	return fullText
}
