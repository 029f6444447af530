package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"resume-match-go/internal/constants"
	"resume-match-go/internal/types"
)

// 简历体检用的模式，编译一次全局复用
var (
	contactPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),    // 邮箱
		regexp.MustCompile(`(?:\+\d{1,3}[-\s]?)?\(?\d{3}\)?[-\s]?\d{3}[-\s]?\d{4}`),     // 电话
		regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`),                               // LinkedIn
	}

	achievementPattern = regexp.MustCompile(`(?i)increased|improved|reduced|saved|achieved|won|delivered|managed|led`)

	// JD中的具体经验要求表述，按顺序尝试
	expRequirementPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)experience (?:in|with) ([^,.]+)`),
		regexp.MustCompile(`(?i)knowledge of ([^,.]+)`),
		regexp.MustCompile(`(?i)familiarity with ([^,.]+)`),
	}
)

// generateSuggestions 按固定优先级的规则级联生成改进建议。
// 每条规则最多追加一条建议，规则之间相互独立；结果截断到7条，
// 没有任何规则触发时返回唯一的一条"匹配良好"提示。
func (a *ResumeAnalyzer) generateSuggestions(resumeText, jobText string, result *types.AnalysisResult) []string {
	var suggestions []string

	// 1. 缺失技能
	if result.SkillsScore < constants.SuggestionScoreBar && len(result.SkillsDetails.Missing) > 0 {
		shown := truncateList(result.SkillsDetails.Missing, constants.MissingSkillsInHint)
		suggestions = append(suggestions, fmt.Sprintf("Add these key skills to your resume: %s", strings.Join(shown, ", ")))
	}

	// 2. 经验不足：先给通用建议，再针对JD中简历未覆盖的首条具体要求给一条定向建议
	if result.ExperienceScore < constants.SuggestionScoreBar {
		suggestions = append(suggestions, "Highlight more relevant experience that aligns with job requirements.")

		resumeLower := strings.ToLower(resumeText)
	patternLoop:
		for _, pattern := range expRequirementPatterns {
			for _, m := range pattern.FindAllStringSubmatch(jobText, -1) {
				req := strings.TrimSpace(m[1])
				if req == "" {
					continue
				}
				if !strings.Contains(resumeLower, strings.ToLower(req)) {
					suggestions = append(suggestions, fmt.Sprintf("Consider adding experience with %s if you have it.", req))
					break patternLoop
				}
			}
		}
	}

	// 3. 学历
	if result.EducationScore < constants.SuggestionScoreBar {
		suggestions = append(suggestions, "Your education section may need improvement to better match job requirements.")
	}

	// 4. 篇幅（两个分支互斥，最多触发一条）
	wordCount := len(strings.Fields(resumeText))
	if wordCount < constants.MinResumeWords {
		suggestions = append(suggestions, "Your resume seems short. Consider adding more details about your experience and skills.")
	} else if wordCount > constants.MaxResumeWords {
		suggestions = append(suggestions, "Your resume is quite long. Consider focusing on the most relevant information.")
	}

	// 5. 联系方式
	hasContact := false
	for _, pattern := range contactPatterns {
		if pattern.MatchString(resumeText) {
			hasContact = true
			break
		}
	}
	if !hasContact {
		suggestions = append(suggestions, "Add your contact information (email, phone) to your resume.")
	}

	// 6. 成果动词
	if !achievementPattern.MatchString(resumeText) {
		suggestions = append(suggestions, "Add specific achievements with metrics to strengthen your experience section.")
	}

	// 7. ATS格式兼容性
	if countNonASCII(resumeText) > constants.MaxNonASCIIChars {
		suggestions = append(suggestions, "Use standard characters and formatting for better ATS compatibility.")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Your resume appears to be well-aligned with the job description. Consider tailoring specific achievements to match job requirements even more closely.")
	}

	return truncateList(suggestions, constants.MaxSuggestionsCount)
}

// countNonASCII 统计非ASCII字符数（按字符计，不按字节）
func countNonASCII(text string) int {
	count := 0
	for _, r := range text {
		if r > 127 {
			count++
		}
	}
	return count
}
