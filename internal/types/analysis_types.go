package types

import "context"

// KeywordDetails 关键词匹配详情，matched/missing 均为展示用的截断列表
type KeywordDetails struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// AnalysisResult 一次简历与JD匹配分析的完整结果。
// 所有分数为 [0,100] 整数；字段名与前端约定保持一致。
type AnalysisResult struct {
	OverallScore      int            `json:"overall_score"`
	SkillsScore       int            `json:"skills_score"`
	SkillsDetails     KeywordDetails `json:"skills_details"`
	ExperienceScore   int            `json:"experience_score"`
	ExperienceDetails []string       `json:"experience_details"`
	EducationScore    int            `json:"education_score"`
	EducationDetails  []string       `json:"education_details"`
	KeywordsScore     int            `json:"keywords_score"`
	KeywordsDetails   KeywordDetails `json:"keywords_details"`
	Suggestions       []string       `json:"suggestions"`
}

// Analyzer 分析器契约。规则引擎和Gemini路径是同一契约的两个实现，
// 调用方可以在两者之间切换，失败时回退到规则引擎。
type Analyzer interface {
	// Name 返回实现标识，用于日志
	Name() string
	// Analyze 对简历文本和JD文本做匹配分析。
	// 输入为空白时返回校验错误；结果要么完整要么为nil，不返回半填充的结果。
	Analyze(ctx context.Context, resumeText, jobDescription string) (*AnalysisResult, error)
}
