package analyzer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"resume-match-go/internal/constants"
)

// yearsPattern 匹配 "5+ years of experience"、"3 yrs exp" 之类的年限表述
var yearsPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years|yrs|yr)(?:\s*of)?\s*(?:experience|exp)`)

// firstYearsMention 返回文本中第一处年限表述的数字，未出现时为0
func firstYearsMention(text string) int {
	m := yearsPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return years
}

// scoreExperience 计算经验匹配子评分。
// 关键词重合度部分限定在各自的experience章节（缺失时全文），
// 年限部分取JD与简历中各自第一处年限表述：JD未提年限时年限分为100，
// 否则按 简历年限/要求年限 线性给分，达标即满分。
// JD要求了年限时最终得分为两部分均值，否则只看关键词得分。
func (a *ResumeAnalyzer) scoreExperience(resumeText, jobText string) (int, []string) {
	resumeSections := a.ExtractSections(resumeText)
	jobSections := a.ExtractSections(jobText)

	resumeExpText := sectionOrFull(resumeSections, SectionExperience, resumeText)
	jobExpText := sectionOrFull(jobSections, SectionExperience, jobText)

	resumeKeywords := a.ExtractKeywords(resumeExpText, constants.SectionKeywordCount)
	jobKeywords := a.ExtractKeywords(jobExpText, constants.SectionKeywordCount)

	keywordScore, matched, _ := matchKeywords(resumeKeywords, jobKeywords)

	requiredYears := firstYearsMention(jobText)
	resumeYears := firstYearsMention(resumeText)

	yearsScore := 100.0
	yearsDetail := ""
	if requiredYears > 0 {
		if resumeYears >= requiredYears {
			yearsDetail = fmt.Sprintf("You meet the required %d+ years of experience.", requiredYears)
		} else {
			yearsScore = float64(resumeYears) / float64(requiredYears) * 100
			yearsDetail = fmt.Sprintf("The job requires %d+ years of experience, but your resume shows %d.", requiredYears, resumeYears)
		}
	}

	finalScore := keywordScore
	if requiredYears > 0 {
		finalScore = int(math.Round((float64(keywordScore) + yearsScore) / 2))
	}

	details := []string{}
	if yearsDetail != "" {
		details = append(details, yearsDetail)
	}
	if len(matched) > 0 {
		shown := truncateList(matched, constants.MatchedExpLimit)
		details = append(details, fmt.Sprintf("Your experience matches key requirements: %s...", strings.Join(shown, ", ")))
	}

	return finalScore, details
}
