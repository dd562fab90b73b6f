package llm

import (
	"context"
	"time"
)

// ChatMessage 对话消息
type ChatMessage struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

// ChatRequest 对话请求
type ChatRequest struct {
	Messages    []ChatMessage `json:"messages"`
	Model       string        `json:"model,omitempty"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatResponse 对话响应
type ChatResponse struct {
	Content   string `json:"content"`
	Model     string `json:"model"`
	TokensIn  int    `json:"tokens_in"`
	TokensOut int    `json:"tokens_out"`
}

// Client 语言模型客户端接口。
// 引擎把它当作可选依赖：客户端缺失或失败时退化到启发式路径。
type Client interface {
	// Chat 发起一次对话补全
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// GetModel 获取模型名称
	GetModel() string

	// HealthCheck 健康检查
	HealthCheck(ctx context.Context) error
}

// BaseConfig 客户端基础配置
type BaseConfig struct {
	// APIKey API 密钥
	APIKey string `json:"api_key,omitempty"`

	// APIEndpoint 自定义服务端点
	APIEndpoint string `json:"api_endpoint,omitempty"`

	// Timeout 请求超时。引擎本身不设超时，期限控制在客户端层实现
	Timeout time.Duration `json:"timeout"`

	// Headers 自定义请求头
	Headers map[string]string `json:"headers,omitempty"`
}

// DefaultBaseConfig 返回默认基础配置
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		Timeout: 2 * time.Minute,
		Headers: make(map[string]string),
	}
}
