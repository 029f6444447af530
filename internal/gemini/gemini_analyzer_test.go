package gemini

import (
	"context"
	"strings"
	"testing"

	"resume-match-go/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRequiresAPIKey 验证未配置API key时构造直接失败
func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), config.GeminiConfig{})
	assert.Error(t, err, "缺少API key时构造应失败")
}

// TestBuildPromptContainsInputs 验证prompt包含双方文本与输出格式要求
func TestBuildPromptContainsInputs(t *testing.T) {
	prompt := buildPrompt("my resume text", "my job description")

	assert.Contains(t, prompt, "my resume text", "prompt应包含简历原文")
	assert.Contains(t, prompt, "my job description", "prompt应包含JD原文")
	assert.Contains(t, prompt, `"overall_score"`, "prompt应要求JSON输出结构")
	assert.Contains(t, prompt, "integers between 0 and 100", "prompt应约束分数范围")
}

// TestBuildPromptTruncatesLongInput 验证超长文本被截断到上限
func TestBuildPromptTruncatesLongInput(t *testing.T) {
	long := strings.Repeat("r", maxPromptChars*2)

	prompt := buildPrompt(long, "short jd")

	assert.NotContains(t, prompt, long, "超长简历不应原样进入prompt")
	assert.Contains(t, prompt, strings.Repeat("r", maxPromptChars-3)+"...", "截断处应带省略号")
}

// TestParseResponseCleanJSON 验证纯JSON回复被直接解析
func TestParseResponseCleanJSON(t *testing.T) {
	g := &Analyzer{logger: zerolog.Nop()}

	raw := `{"overall_score": 85, "skills_score": 90,
	         "skills_details": {"matched": ["go"], "missing": ["rust"]},
	         "experience_score": 80, "experience_details": ["solid backend work"],
	         "education_score": 100, "education_details": [],
	         "keywords_score": 75, "keywords_details": {"matched": ["go"], "missing": []},
	         "suggestions": ["add rust"]}`

	result := g.parseResponse(raw)

	assert.Equal(t, 85, result.OverallScore)
	assert.Equal(t, []string{"go"}, result.SkillsDetails.Matched)
	assert.Equal(t, []string{"rust"}, result.SkillsDetails.Missing)
	assert.Equal(t, []string{"add rust"}, result.Suggestions)
}

// TestParseResponseWithFences 验证带代码块围栏和说明文字的回复也能解析
func TestParseResponseWithFences(t *testing.T) {
	g := &Analyzer{logger: zerolog.Nop()}

	raw := "Here is the analysis you asked for:\n```json\n" +
		`{"overall_score": 60, "skills_score": 55}` +
		"\n```\nLet me know if you need anything else."

	result := g.parseResponse(raw)

	assert.Equal(t, 60, result.OverallScore, "应只取花括号之间的JSON部分")
	assert.Equal(t, 55, result.SkillsScore)
}

// TestParseResponseBackfillsNilSlices 验证缺失的列表字段被补为空数组
func TestParseResponseBackfillsNilSlices(t *testing.T) {
	g := &Analyzer{logger: zerolog.Nop()}

	result := g.parseResponse(`{"overall_score": 50}`)

	require.NotNil(t, result.SkillsDetails.Matched, "matched应补为空数组而不是nil")
	require.NotNil(t, result.KeywordsDetails.Missing, "missing应补为空数组而不是nil")
	require.NotNil(t, result.ExperienceDetails)
	require.NotNil(t, result.EducationDetails)
	require.NotNil(t, result.Suggestions)
}

// TestParseResponseGarbage 验证完全无法解析的回复返回全零兜底结果
func TestParseResponseGarbage(t *testing.T) {
	g := &Analyzer{logger: zerolog.Nop()}

	for _, raw := range []string{"", "no json here", "{broken", "{]}"} {
		result := g.parseResponse(raw)

		require.NotNil(t, result, "兜底结果不应为nil: %q", raw)
		assert.Equal(t, 0, result.OverallScore, "兜底结果分数应为0: %q", raw)
		assert.Contains(t, result.ExperienceDetails, "Error analyzing experience",
			"兜底结果应带解析失败说明: %q", raw)
	}
}

// TestAnalyzerName 验证实现标识
func TestAnalyzerName(t *testing.T) {
	g := &Analyzer{}
	assert.Equal(t, "gemini", g.Name())
}
