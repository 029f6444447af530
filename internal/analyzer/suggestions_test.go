package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match-go/internal/types"
)

// perfectResult 构造一个各子分均满分的结果，用于只观察体检类规则
func perfectResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		OverallScore:    100,
		SkillsScore:     100,
		SkillsDetails:   types.KeywordDetails{Matched: []string{}, Missing: []string{}},
		ExperienceScore: 100,
		EducationScore:  100,
		KeywordsScore:   100,
	}
}

// TestGenerateSuggestionsWellAligned 验证无任何规则触发时返回唯一的"匹配良好"提示
func TestGenerateSuggestionsWellAligned(t *testing.T) {
	a := NewResumeAnalyzer()

	// 带联系方式与成果动词、篇幅适中、纯ASCII的简历，JD与简历完全一致
	text := "Contact jane@example.com. I led the platform team." + strings.Repeat(" network", 300)

	result, err := a.Analyze(context.Background(), text, text)
	require.NoError(t, err)

	require.Len(t, result.Suggestions, 1, "无规则触发时应只有一条建议")
	assert.Contains(t, result.Suggestions[0], "well-aligned", "应返回匹配良好的提示")
}

// TestGenerateSuggestionsCappedAtSeven 验证建议总数被截断到7条
func TestGenerateSuggestionsCappedAtSeven(t *testing.T) {
	a := NewResumeAnalyzer()

	// 简历刻意触发全部规则：技能/经验/学历全不匹配、篇幅过短、
	// 无联系方式、无成果动词、非ASCII字符超限
	resume := "我是一名开发者 写代码"
	job := strings.Join([]string{
		"Skills",
		"Go, Docker, AWS, SQL, Linux, Git",
		"PhD in Computer Science required",
		"Experience in Kubernetes deployments. Knowledge of Terraform.",
	}, "\n")

	result, err := a.Analyze(context.Background(), resume, job)
	require.NoError(t, err)

	assert.Len(t, result.Suggestions, 7, "建议应被截断到7条")
	// 第8条候选（ATS格式提示）优先级最低，应被截掉
	for _, s := range result.Suggestions {
		assert.NotContains(t, s, "ATS compatibility", "超出上限的低优先级建议应被截掉")
	}
}

// TestGenerateSuggestionsTargetedExperienceHint 验证经验不足时追加一条定向建议
func TestGenerateSuggestionsTargetedExperienceHint(t *testing.T) {
	a := NewResumeAnalyzer()

	resume := "我是一名开发者 写代码"
	job := "Experience in Kubernetes deployments. Knowledge of Terraform. Familiarity with Helm."

	result, err := a.Analyze(context.Background(), resume, job)
	require.NoError(t, err)

	// 第一个未覆盖的具体要求产生定向建议，且整个级联只产生这一条定向建议
	targeted := 0
	for _, s := range result.Suggestions {
		if strings.HasPrefix(s, "Consider adding experience with") {
			targeted++
		}
	}
	assert.Equal(t, 1, targeted, "应有且只有一条定向经验建议")
	assert.Contains(t, result.Suggestions, "Consider adding experience with Kubernetes deployments if you have it.",
		"定向建议应引用JD中第一条未覆盖的要求")
}

// TestGenerateSuggestionsContactDetection 验证检出联系方式后不再提示补充联系方式
func TestGenerateSuggestionsContactDetection(t *testing.T) {
	a := NewResumeAnalyzer()

	withPhone := "Call 555-123-4567 anytime."
	withEmail := "Reach out at dev@example.org please."
	withLinkedIn := "See linkedin.com/in/jane-doe for details."
	without := "No way to reach out here."

	const hint = "Add your contact information (email, phone) to your resume."

	for _, text := range []string{withPhone, withEmail, withLinkedIn} {
		got := a.generateSuggestions(text, text, perfectResult())
		assert.NotContains(t, got, hint, "检出联系方式后不应再提示: %q", text)
	}

	got := a.generateSuggestions(without, without, perfectResult())
	assert.Contains(t, got, hint, "未检出联系方式时应给出提示")
}

// TestGenerateSuggestionsAchievementDetection 验证成果动词的检测
func TestGenerateSuggestionsAchievementDetection(t *testing.T) {
	a := NewResumeAnalyzer()

	const hint = "Add specific achievements with metrics to strengthen your experience section."

	withVerb := "Reduced costs across the fleet."
	got := a.generateSuggestions(withVerb, withVerb, perfectResult())
	assert.NotContains(t, got, hint, "出现成果动词时不应提示补充成果")

	withoutVerb := "I write code every day."
	got = a.generateSuggestions(withoutVerb, withoutVerb, perfectResult())
	assert.Contains(t, got, hint, "无成果动词时应提示补充成果")
}

// TestGenerateSuggestionsLengthHints 验证篇幅过短/过长的互斥提示
func TestGenerateSuggestionsLengthHints(t *testing.T) {
	a := NewResumeAnalyzer()

	short := "Too short."
	long := strings.Repeat("network ", 1200)

	gotShort := a.generateSuggestions(short, short, perfectResult())
	assert.Contains(t, gotShort, "Your resume seems short. Consider adding more details about your experience and skills.",
		"篇幅过短时应提示")

	gotLong := a.generateSuggestions(long, long, perfectResult())
	assert.Contains(t, gotLong, "Your resume is quite long. Consider focusing on the most relevant information.",
		"篇幅过长时应提示")

	for _, s := range gotShort {
		assert.NotContains(t, s, "quite long", "过短与过长提示应互斥")
	}
}

// TestCountNonASCII 验证非ASCII字符按字符计数而不是按字节
func TestCountNonASCII(t *testing.T) {
	assert.Equal(t, 0, countNonASCII("plain ascii text"))
	assert.Equal(t, 2, countNonASCII("résumé"))
	assert.Equal(t, 4, countNonASCII("简历分析"))
}
