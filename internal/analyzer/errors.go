package analyzer

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrInvalidInput  = errors.New("输入文本为空")
	ErrAnalysisFault = errors.New("简历分析失败")
	ErrStopwordsLoad = errors.New("停用词资源加载失败")
)

// AnalysisError 包含详细错误信息的自定义错误
type AnalysisError struct {
	Op      string
	BaseErr error
	Detail  string
}

func (e *AnalysisError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s): %s", e.BaseErr, e.Op, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s)", e.BaseErr, e.Op)
}

func (e *AnalysisError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *AnalysisError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// 错误构造函数
func NewValidationError(field string) error {
	return &AnalysisError{
		Op:      "validate",
		BaseErr: ErrInvalidInput,
		Detail:  field,
	}
}

func NewAnalysisFaultError(detail string) error {
	return &AnalysisError{
		Op:      "analyze",
		BaseErr: ErrAnalysisFault,
		Detail:  detail,
	}
}

func NewResourceLoadError(detail string) error {
	return &AnalysisError{
		Op:      "load_resources",
		BaseErr: ErrStopwordsLoad,
		Detail:  detail,
	}
}
