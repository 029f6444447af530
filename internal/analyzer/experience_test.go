package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFirstYearsMention 验证年限表述的识别
func TestFirstYearsMention(t *testing.T) {
	cases := map[string]int{
		"5+ years of experience":             5,
		"3 years experience in backend work": 3,
		"at least 10 yrs exp":                10,
		"over 2 yr experience":               2,
		"no time requirement mentioned":      0,
		"":                                   0,
	}

	for text, want := range cases {
		assert.Equal(t, want, firstYearsMention(text), "年限识别错误: %q", text)
	}
}

// TestFirstYearsMentionTakesFirst 验证多处年限表述只取第一处
func TestFirstYearsMentionTakesFirst(t *testing.T) {
	got := firstYearsMention("3+ years of experience required, 7 years experience preferred")
	assert.Equal(t, 3, got, "出现多处年限时应取第一处")
}

// TestScoreExperienceYearsMet 验证年限达标时年限部分满分并给出达标提示
func TestScoreExperienceYearsMet(t *testing.T) {
	a := NewResumeAnalyzer()

	resume := "Backend engineer with 5 years of experience shipping payment services in Go and Kafka."
	job := "Requires 3+ years of experience building payment services with Go and Kafka."

	score, details := a.scoreExperience(resume, job)

	assert.GreaterOrEqual(t, score, 0, "得分不应低于0")
	assert.LessOrEqual(t, score, 100, "得分不应高于100")
	require.NotEmpty(t, details, "年限达标时应有说明文字")
	assert.Contains(t, details[0], "You meet the required 3+ years", "应提示年限达标")
}

// TestScoreExperienceYearsNotMet 验证年限不足时按比例给分并说明差距
func TestScoreExperienceYearsNotMet(t *testing.T) {
	a := NewResumeAnalyzer()

	resume := "Junior developer with 2 years of experience writing web handlers."
	job := "Requires 8+ years of experience leading backend teams."

	score, details := a.scoreExperience(resume, job)

	assert.Less(t, score, 100, "年限不足时不应得满分")
	require.NotEmpty(t, details)
	assert.Contains(t, details[0], "The job requires 8+ years of experience, but your resume shows 2.",
		"应说明要求年限与实际年限的差距")
}

// TestScoreExperienceNoYearsRequirement 验证JD未提年限时只看关键词重合度
func TestScoreExperienceNoYearsRequirement(t *testing.T) {
	a := NewResumeAnalyzer()

	resume := "Data pipelines with Spark and Airflow in production."
	job := "Data pipelines with Spark and Airflow in production."

	score, details := a.scoreExperience(resume, job)

	assert.Equal(t, 100, score, "JD未提年限且关键词全部命中时应得满分")
	for _, d := range details {
		assert.NotContains(t, d, "years of experience", "JD未提年限时不应出现年限说明")
	}
}

// TestScoreExperienceResumeNoYears 验证JD要求年限而简历未提时按0年计算
func TestScoreExperienceResumeNoYears(t *testing.T) {
	a := NewResumeAnalyzer()

	resume := "I build houses and fix roofs on weekends."
	job := "Requires 5+ years of experience in construction management."

	_, details := a.scoreExperience(resume, job)

	require.NotEmpty(t, details)
	assert.Contains(t, details[0], "your resume shows 0", "简历未提年限时应按0年计算")
}
