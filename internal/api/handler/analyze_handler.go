package handler

import (
	"context"
	"errors"
	"strings"

	"resume-match-go/internal/analyzer"
	"resume-match-go/internal/config"
	"resume-match-go/internal/logger"
	"resume-match-go/internal/types"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/gofrs/uuid/v5"
)

// AnalyzeHandler 简历分析请求处理器，负责输入校验和分析路径选择
type AnalyzeHandler struct {
	cfg          *config.Config
	ruleAnalyzer types.Analyzer
	llmAnalyzer  types.Analyzer // 可能为nil（未配置API key时该路径禁用）
}

// NewAnalyzeHandler 创建分析请求处理器。
// llmAnalyzer 可传nil，此时 use_gemini 请求直接走规则引擎。
func NewAnalyzeHandler(cfg *config.Config, ruleAnalyzer, llmAnalyzer types.Analyzer) *AnalyzeHandler {
	return &AnalyzeHandler{
		cfg:          cfg,
		ruleAnalyzer: ruleAnalyzer,
		llmAnalyzer:  llmAnalyzer,
	}
}

// AnalyzeRequest 分析请求体
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
	UseGemini      bool   `json:"use_gemini"`
}

// HandleAnalyze 处理 POST /api/analyze。
// 空白输入在这里拦截，核心分析器不会被调用；
// Gemini路径的任何失败都记录日志并回退到规则引擎。
func (h *AnalyzeHandler) HandleAnalyze(c context.Context, ctx *app.RequestContext) {
	var req AnalyzeRequest
	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{
			"error": "Missing required fields: resume_text and job_description",
		})
		return
	}

	if strings.TrimSpace(req.ResumeText) == "" || strings.TrimSpace(req.JobDescription) == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{
			"error": "Resume text and job description cannot be empty",
		})
		return
	}

	// 每次分析分配一个UUIDv7，只用于日志串联
	analysisID := ""
	if uuidV7, err := uuid.NewV7(); err == nil {
		analysisID = uuidV7.String()
	}

	// 日志只记长度不记内容，简历属于个人信息
	logger.Info().
		Str("analysis_id", analysisID).
		Int("resume_length", len(req.ResumeText)).
		Int("job_length", len(req.JobDescription)).
		Bool("use_gemini", req.UseGemini).
		Msg("收到分析请求")

	result, err := h.analyze(c, &req, analysisID)
	if err != nil {
		if errors.Is(err, analyzer.ErrInvalidInput) {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
			return
		}
		logger.Error().
			Err(err).
			Str("analysis_id", analysisID).
			Msg("简历分析失败")
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}

	ctx.JSON(consts.StatusOK, result)
}

// analyze 选择分析路径并执行。Gemini路径失败时回退到规则引擎。
func (h *AnalyzeHandler) analyze(ctx context.Context, req *AnalyzeRequest, analysisID string) (*types.AnalysisResult, error) {
	if req.UseGemini && h.llmAnalyzer != nil {
		result, err := h.llmAnalyzer.Analyze(ctx, req.ResumeText, req.JobDescription)
		if err == nil {
			return result, nil
		}
		logger.Warn().
			Err(err).
			Str("analysis_id", analysisID).
			Str("analyzer", h.llmAnalyzer.Name()).
			Msg("Gemini分析失败，回退到规则引擎")
	}
	return h.ruleAnalyzer.Analyze(ctx, req.ResumeText, req.JobDescription)
}

// HandleHealth 处理 GET /api/health
func (h *AnalyzeHandler) HandleHealth(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, utils.H{
		"status":  "healthy",
		"service": "resume-match-go",
	})
}
