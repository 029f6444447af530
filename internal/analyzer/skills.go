package analyzer

import (
	"resume-match-go/internal/constants"
	"resume-match-go/internal/types"
)

// scoreSkills 计算技能匹配子评分。
// 双方都优先使用skills章节文本，缺失时回退到全文；
// 每侧最多取50个关键词，得分为JD侧关键词被覆盖的百分比。
func (a *ResumeAnalyzer) scoreSkills(resumeText, jobText string) (int, types.KeywordDetails) {
	resumeSections := a.ExtractSections(resumeText)
	jobSections := a.ExtractSections(jobText)

	resumeSkillsText := sectionOrFull(resumeSections, SectionSkills, resumeText)
	jobSkillsText := sectionOrFull(jobSections, SectionSkills, jobText)

	resumeSkills := a.ExtractKeywords(resumeSkillsText, constants.SectionKeywordCount)
	jobSkills := a.ExtractKeywords(jobSkillsText, constants.SectionKeywordCount)

	score, matched, missing := matchKeywords(resumeSkills, jobSkills)

	details := types.KeywordDetails{
		Matched: truncateList(matched, constants.SkillDetailLimit),
		Missing: truncateList(missing, constants.SkillDetailLimit),
	}
	return score, details
}
