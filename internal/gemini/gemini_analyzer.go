package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"resume-match-go/internal/config"
	"resume-match-go/internal/logger"
	"resume-match-go/internal/ratelimit"
	"resume-match-go/internal/tracing"
	"resume-match-go/internal/types"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"
)

// 定义tracer
var tracer = otel.Tracer("gemini")

// AnalyzerName Gemini分析器的实现标识
const AnalyzerName = "gemini"

// maxPromptChars 每侧文档在prompt中的最大字符数，避免超出token限制
const maxPromptChars = 10000

// Analyzer 基于Gemini API的简历分析器。
// 与规则分析器实现同一契约，调用方在本路径失败时回退到规则引擎，
// 所以这里任何错误都直接上抛，不做内部降级。
type Analyzer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	limiter *ratelimit.TokenBucket
	logger  zerolog.Logger
}

// New 创建Gemini分析器。API key缺失时直接报错，由调用方决定是否禁用该路径。
func New(ctx context.Context, cfg config.GeminiConfig) (*Analyzer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("未配置Gemini API key")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("创建Gemini客户端失败: %w", err)
	}

	limiter := ratelimit.NewTokenBucket(cfg.QPM, 0).
		WithRetryPolicy(time.Duration(cfg.RetryWaitSeconds)*time.Second, cfg.MaxRetries)

	return &Analyzer{
		client:  client,
		model:   cfg.Model,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		limiter: limiter,
		logger:  logger.Logger,
	}, nil
}

// Name 返回实现标识
func (g *Analyzer) Name() string {
	return AnalyzerName
}

// Analyze 调用Gemini对简历与JD做匹配分析。
// 单次调用受超时约束，整体受QPM限流与重试策略约束。
func (g *Analyzer) Analyze(ctx context.Context, resumeText, jobDescription string) (*types.AnalysisResult, error) {
	ctx, span := tracer.Start(ctx, "GeminiAnalyzer.Analyze")
	defer span.End()
	span.SetAttributes(attribute.String("model", g.model))

	prompt := buildPrompt(resumeText, jobDescription)

	var raw string
	call := func() error {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		defer cancel()

		resp, err := g.client.Models.GenerateContent(callCtx, g.model, genai.Text(prompt), nil)
		if err != nil {
			return err
		}
		raw = resp.Text()
		return nil
	}

	if err := g.limiter.Do(ctx, call); err != nil {
		err = fmt.Errorf("调用Gemini API失败: %w", err)
		tracing.RecordError(span, err, tracing.ErrorTypeExternal)
		return nil, err
	}

	result := g.parseResponse(raw)
	span.SetAttributes(attribute.Int("overall_score", result.OverallScore))
	span.SetStatus(codes.Ok, "分析完成")
	return result, nil
}

// buildPrompt 构建分析prompt，双方文本各自截断到上限
func buildPrompt(resumeText, jobDescription string) string {
	resumeText = tracing.TruncateString(resumeText, maxPromptChars)
	jobDescription = tracing.TruncateString(jobDescription, maxPromptChars)

	return fmt.Sprintf(`You are an AI Resume Analyzer. Analyze the resume against the job description provided below.

Resume:
%s

Job Description:
%s

Provide a detailed analysis with the following:
1. Overall match score (percentage)
2. Skills match (percentage and details)
3. Experience match (percentage and details)
4. Education match (percentage and details)
5. Keywords match (percentage, matched keywords, and missing keywords)
6. Improvement suggestions

Format your response as a JSON object with the following structure:
{
    "overall_score": <percentage>,
    "skills_score": <percentage>,
    "skills_details": {
        "matched": [<list of matched skills>],
        "missing": [<list of missing skills>]
    },
    "experience_score": <percentage>,
    "experience_details": [<list of experience match details>],
    "education_score": <percentage>,
    "education_details": [<list of education match details>],
    "keywords_score": <percentage>,
    "keywords_details": {
        "matched": [<list of matched keywords>],
        "missing": [<list of missing keywords>]
    },
    "suggestions": [<list of improvement suggestions>]
}

Ensure all scores are integers between 0 and 100.`, resumeText, jobDescription)
}

// parseResponse 从模型回复中定位最外层JSON对象并反序列化。
// 模型偶尔会在JSON前后加说明文字或代码块围栏，这里只取花括号之间的部分。
// 解析失败时返回全零的兜底结果而不是报错，保持响应结构完整。
func (g *Analyzer) parseResponse(text string) *types.AnalysisResult {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end < start {
		g.logger.Error().
			Str("response", tracing.TruncateString(text, tracing.DefaultMaxLength)).
			Msg("Gemini回复中未找到JSON")
		return fallbackResult()
	}

	var result types.AnalysisResult
	if err := json.Unmarshal([]byte(text[start:end+1]), &result); err != nil {
		g.logger.Error().
			Err(err).
			Msg("解析Gemini回复JSON失败")
		return fallbackResult()
	}

	// 补齐缺失字段，保证序列化出的永远是完整结构
	if result.SkillsDetails.Matched == nil {
		result.SkillsDetails.Matched = []string{}
	}
	if result.SkillsDetails.Missing == nil {
		result.SkillsDetails.Missing = []string{}
	}
	if result.KeywordsDetails.Matched == nil {
		result.KeywordsDetails.Matched = []string{}
	}
	if result.KeywordsDetails.Missing == nil {
		result.KeywordsDetails.Missing = []string{}
	}
	if result.ExperienceDetails == nil {
		result.ExperienceDetails = []string{}
	}
	if result.EducationDetails == nil {
		result.EducationDetails = []string{}
	}
	if result.Suggestions == nil {
		result.Suggestions = []string{}
	}
	return &result
}

// fallbackResult 解析失败时的兜底结果
func fallbackResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		SkillsDetails:     types.KeywordDetails{Matched: []string{}, Missing: []string{}},
		ExperienceDetails: []string{"Error analyzing experience"},
		EducationDetails:  []string{"Error analyzing education"},
		KeywordsDetails:   types.KeywordDetails{Matched: []string{}, Missing: []string{}},
		Suggestions:       []string{"Error generating suggestions"},
	}
}
