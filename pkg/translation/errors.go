package translation

import (
	"errors"
	"fmt"
)

// 预定义错误
var (
	// ErrInvalidFormat 非法的格式值（调用方契约违规，唯一会逃逸出引擎的错误）
	ErrInvalidFormat = errors.New("invalid format value")

	// ErrInvalidConfig 无效配置
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoLLMClient LLM 客户端未配置
	ErrNoLLMClient = errors.New("LLM client not configured")

	// ErrMalformedReply 语言模型响应无法解析
	ErrMalformedReply = errors.New("malformed language model reply")
)

// 错误代码常量
const (
	ErrCodeFormat  = "FORMAT_ERROR"
	ErrCodeConfig  = "CONFIG_ERROR"
	ErrCodeLLM     = "LLM_ERROR"
	ErrCodeParse   = "PARSE_ERROR"
	ErrCodeUnknown = "UNKNOWN_ERROR"
)

// EngineError 引擎错误
type EngineError struct {
	Code    string // 错误代码
	Message string // 错误消息
	Cause   error  // 原因
}

// Error 实现 error 接口
func (e *EngineError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回原因错误
func (e *EngineError) Unwrap() error {
	return e.Cause
}

// WrapError 包装错误
func WrapError(err error, code, message string) *EngineError {
	if err == nil {
		return nil
	}
	return &EngineError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// invalidFormatError 构造格式契约违规错误
func invalidFormatError(value string) error {
	return WrapError(ErrInvalidFormat, ErrCodeFormat, fmt.Sprintf("unknown format %q", value))
}
