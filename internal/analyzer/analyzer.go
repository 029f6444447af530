package analyzer

import (
	"context"
	"fmt"
	"math"
	"strings"

	"resume-match-go/internal/constants"
	"resume-match-go/internal/logger"
	"resume-match-go/internal/tracing"
	"resume-match-go/internal/types"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// 定义tracer
var tracer = otel.Tracer("analyzer")

// AnalyzerName 规则分析器的实现标识
const AnalyzerName = "rule_based"

// ResumeAnalyzer 规则驱动的简历与JD匹配分析器。
// 构造完成后所有字段只读（停用词表、正则），任意数量的Analyze调用
// 可以并发执行，互不协调。
type ResumeAnalyzer struct {
	stopwords map[string]struct{}
	logger    zerolog.Logger
}

// Option 分析器构造选项
type Option func(*options)

type options struct {
	stopwordsPath string
	logger        *zerolog.Logger
}

// WithStopwordsFile 指定外部停用词表路径，加载失败时回退到内置表
func WithStopwordsFile(path string) Option {
	return func(o *options) {
		o.stopwordsPath = path
	}
}

// WithLogger 指定日志记录器
func WithLogger(l *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// NewResumeAnalyzer 创建规则分析器。
// 停用词资源加载失败只记警告，永远不会让构造失败。
func NewResumeAnalyzer(opts ...Option) *ResumeAnalyzer {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	l := logger.Logger
	if o.logger != nil {
		l = *o.logger
	}

	stopwords, err := loadStopwords(o.stopwordsPath)
	if err != nil {
		// 资源加载失败在内部消化：记录警告并使用回退表
		l.Warn().
			Err(err).
			Str("path", o.stopwordsPath).
			Int("fallback_size", len(stopwords)).
			Msg("外部停用词表加载失败，使用内置回退表")
	}

	return &ResumeAnalyzer{
		stopwords: stopwords,
		logger:    l,
	}
}

// Name 返回实现标识
func (a *ResumeAnalyzer) Name() string {
	return AnalyzerName
}

// Analyze 对简历与JD执行完整的匹配分析。
// 输入任一为空白时返回校验错误；其余任何内部故障都包装为分析错误
// 原样抛给调用方，绝不返回半填充的结果。
func (a *ResumeAnalyzer) Analyze(ctx context.Context, resumeText, jobDescription string) (result *types.AnalysisResult, err error) {
	_, span := tracer.Start(ctx, "ResumeAnalyzer.Analyze")
	defer span.End()

	span.SetAttributes(
		attribute.Int("resume.length", len(resumeText)),
		attribute.Int("job.length", len(jobDescription)),
	)

	if strings.TrimSpace(resumeText) == "" {
		err = NewValidationError("resume_text")
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		return nil, err
	}
	if strings.TrimSpace(jobDescription) == "" {
		err = NewValidationError("job_description")
		tracing.RecordError(span, err, tracing.ErrorTypeValidation)
		return nil, err
	}

	// 任何评分阶段的意外故障都转换为分析错误上抛，不吞掉也不降级
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = NewAnalysisFaultError(fmt.Sprintf("%v", r))
			a.logger.Error().
				Interface("panic", r).
				Msg("简历分析过程中发生内部故障")
			tracing.RecordError(span, err, tracing.ErrorTypeInternal)
		}
	}()

	skillsScore, skillsDetails := a.scoreSkills(resumeText, jobDescription)
	experienceScore, experienceDetails := a.scoreExperience(resumeText, jobDescription)
	educationScore, educationDetails := a.scoreEducation(resumeText, jobDescription)

	// 全文关键词重合度，不限定章节
	resumeKeywords := a.ExtractKeywords(resumeText, constants.OverallKeywordCount)
	jobKeywords := a.ExtractKeywords(jobDescription, constants.OverallKeywordCount)
	keywordsScore, matchedKeywords, missingKeywords := matchKeywords(resumeKeywords, jobKeywords)

	overallScore := int(math.Round(
		float64(skillsScore)*constants.SkillsWeight +
			float64(experienceScore)*constants.ExperienceWeight +
			float64(educationScore)*constants.EducationWeight +
			float64(keywordsScore)*constants.KeywordsWeight))

	result = &types.AnalysisResult{
		OverallScore:      overallScore,
		SkillsScore:       skillsScore,
		SkillsDetails:     skillsDetails,
		ExperienceScore:   experienceScore,
		ExperienceDetails: experienceDetails,
		EducationScore:    educationScore,
		EducationDetails:  educationDetails,
		KeywordsScore:     keywordsScore,
		KeywordsDetails: types.KeywordDetails{
			Matched: truncateList(matchedKeywords, constants.KeywordDetailLimit),
			Missing: truncateList(missingKeywords, constants.KeywordDetailLimit),
		},
	}
	result.Suggestions = a.generateSuggestions(resumeText, jobDescription, result)

	span.SetAttributes(attribute.Int("overall_score", overallScore))
	span.SetStatus(codes.Ok, "分析完成")
	return result, nil
}
