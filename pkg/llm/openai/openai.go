package openai

import (
	"context"
	"fmt"

	"github.com/nerdneilsfield/validator-format-agent/pkg/llm"
	goopenai "github.com/sashabaranov/go-openai"
)

// Config OpenAI 客户端配置
type Config struct {
	llm.BaseConfig
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		BaseConfig:  llm.DefaultBaseConfig(),
		Model:       "gpt-4o-mini",
		Temperature: 0.3,
		MaxTokens:   2000,
	}
}

// Client OpenAI 客户端（基于 sashabaranov/go-openai）
type Client struct {
	config Config
	api    *goopenai.Client
}

// 确保 Client 实现 llm.Client 接口
var _ llm.Client = (*Client)(nil)

// New 创建新的 OpenAI 客户端
func New(config Config) *Client {
	apiConfig := goopenai.DefaultConfig(config.APIKey)
	if config.APIEndpoint != "" {
		apiConfig.BaseURL = config.APIEndpoint
	}

	return &Client{
		config: config,
		api:    goopenai.NewClientWithConfig(apiConfig),
	}
}

// Chat 发起一次对话补全
func (c *Client) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	messages := make([]goopenai.ChatCompletionMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	model := req.Model
	if model == "" {
		model = c.config.Model
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.config.Temperature
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.config.MaxTokens
	}

	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned from OpenAI")
	}

	return &llm.ChatResponse{
		Content:   resp.Choices[0].Message.Content,
		Model:     resp.Model,
		TokensIn:  resp.Usage.PromptTokens,
		TokensOut: resp.Usage.CompletionTokens,
	}, nil
}

// GetModel 获取模型名称
func (c *Client) GetModel() string {
	return c.config.Model
}

// HealthCheck 健康检查
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.api.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("openai health check failed: %w", err)
	}
	return nil
}
