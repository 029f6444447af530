package constants

// 评分策略常量表。所有权重、阈值和列表截断集中在这里，
// 调整打分策略时只改这一个文件，不动评分逻辑。
const (
	// 总分聚合权重，四项之和为 1.0
	SkillsWeight     = 0.35
	ExperienceWeight = 0.35
	EducationWeight  = 0.20
	KeywordsWeight   = 0.10

	// 关键词提取数量
	DefaultKeywordCount = 30  // extractKeywords 默认返回数
	MaxKeywordCount     = 100 // 调用方可请求的上限
	SectionKeywordCount = 50  // 技能/经验子评分的逐侧关键词数
	OverallKeywordCount = 100 // 全文关键词重合度评分的逐侧关键词数

	// 章节识别
	MaxHeaderLineLen = 50 // 超过此长度的行不视为章节标题

	// 详情列表截断
	SkillDetailLimit    = 10 // skills_details 中 matched/missing 各展示条数
	KeywordDetailLimit  = 15 // keywords_details 中 matched/missing 各展示条数
	MatchedExpLimit     = 5  // 经验详情中列举的匹配关键词数
	MissingSkillsInHint = 5  // 建议中列举的缺失技能数

	// 建议生成阈值
	SuggestionScoreBar  = 70   // 低于该分数的子项触发改进建议
	MinResumeWords      = 300  // 简历过短阈值（词数）
	MaxResumeWords      = 1000 // 简历过长阈值（词数）
	MaxNonASCIIChars    = 5    // 非ASCII字符超过该数量时提示ATS兼容性
	MaxSuggestionsCount = 7    // 建议条数硬上限

	// 学历不匹配的领域扣分
	FieldMismatchPenalty = 20
)
