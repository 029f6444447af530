package analyzer

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"resume-match-go/internal/constants"
)

// degreePatterns 学历检测模式，按优先级从高到低排列。
// 这是优先级扫描：第一个命中的模式即为该文档的学历，
// 而不是"提到过的所有学历"。顺序敏感，重排会静默改变结果。
var degreePatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"phd", regexp.MustCompile(`(?i)(phd|ph\.d|doctor of philosophy|doctorate)`)},
	{"masters", regexp.MustCompile(`(?i)(master|ms|m\.s|m\.a|mba|m\.b\.a)`)},
	{"bachelors", regexp.MustCompile(`(?i)(bachelor|bs|b\.s|ba|b\.a|undergraduate)`)},
	{"associate", regexp.MustCompile(`(?i)(associate|a\.a|a\.s)`)},
	{"highschool", regexp.MustCompile(`(?i)(high school|diploma|ged)`)},
}

// degreeRank 学历序数，用于比较高低。空串表示未检出，序数0
var degreeRank = map[string]int{
	"phd":        5,
	"masters":    4,
	"bachelors":  3,
	"associate":  2,
	"highschool": 1,
	"":           0,
}

// fieldPatterns 专业领域提取的三级回退模式，依次尝试，命中即停
var fieldPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)degree in ([^,.]+)`),
	regexp.MustCompile(`(?i)background in ([^,.]+)`),
	regexp.MustCompile(`(?i)(computer science|engineering|business|marketing|finance|accounting|economics|mathematics|statistics)`),
}

// detectDegree 先查education章节文本，再查全文，返回命中的最高优先级学历
func detectDegree(eduText, fullText string) string {
	for _, dp := range degreePatterns {
		if dp.re.MatchString(eduText) || dp.re.MatchString(fullText) {
			return dp.name
		}
	}
	return ""
}

// scoreEducation 计算学历匹配子评分。
// JD未要求学历时得100分；要求了学历时按简历学历序数与要求序数的比值给分，
// 达到或超过要求即满分，完全未检出学历则0分。
// 另外尝试提取JD要求的专业领域，简历中找不到该领域字样时扣20分（下限0）。
func (a *ResumeAnalyzer) scoreEducation(resumeText, jobText string) (int, []string) {
	resumeSections := a.ExtractSections(resumeText)
	jobSections := a.ExtractSections(jobText)

	resumeEduText := sectionOrFull(resumeSections, SectionEducation, resumeText)
	jobEduText := sectionOrFull(jobSections, SectionEducation, jobText)

	requiredDegree := detectDegree(jobEduText, jobText)
	resumeDegree := detectDegree(resumeEduText, resumeText)

	score := 100.0
	details := []string{}

	if requiredDegree != "" {
		switch {
		case resumeDegree == "":
			score = 0
			details = append(details, fmt.Sprintf("The job requires a %s's degree, but no degree was detected in your resume.", requiredDegree))
		case degreeRank[resumeDegree] >= degreeRank[requiredDegree]:
			details = append(details, fmt.Sprintf("Your %s's degree meets or exceeds the required %s's degree.", resumeDegree, requiredDegree))
		default:
			// 按学历序数比值给分
			score = float64(degreeRank[resumeDegree]) / float64(degreeRank[requiredDegree]) * 100
			details = append(details, fmt.Sprintf("The job requires a %s's degree, but your resume shows a %s's degree.", requiredDegree, resumeDegree))
		}
	} else {
		if resumeDegree != "" {
			details = append(details, fmt.Sprintf("No specific degree requirement found in job description. Your %s's degree is a plus.", resumeDegree))
		} else {
			details = append(details, "No specific degree requirements found in job description or resume.")
		}
	}

	// 提取JD要求的专业领域
	requiredField := ""
	for _, fp := range fieldPatterns {
		if m := fp.FindStringSubmatch(jobText); m != nil {
			requiredField = strings.ToLower(strings.TrimSpace(m[1]))
			break
		}
	}

	if requiredField != "" {
		resumeLower := strings.ToLower(resumeText)
		eduLower := strings.ToLower(resumeEduText)
		if strings.Contains(resumeLower, requiredField) || strings.Contains(eduLower, requiredField) {
			details = append(details, fmt.Sprintf("Your education matches the required field: %s.", requiredField))
		} else {
			details = append(details, fmt.Sprintf("The job requires education in %s, which was not clearly found in your resume.", requiredField))
			score = math.Max(score-constants.FieldMismatchPenalty, 0)
		}
	}

	return int(math.Round(score)), details
}
