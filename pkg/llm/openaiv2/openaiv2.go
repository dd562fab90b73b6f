package openaiv2

import (
	"context"
	"fmt"

	"github.com/nerdneilsfield/validator-format-agent/pkg/llm"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Config 官方 SDK 客户端配置
type Config struct {
	llm.BaseConfig
	Model       string  `json:"model"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	OrgID       string  `json:"org_id,omitempty"` // 可选的组织ID
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

// Client 基于官方 openai-go SDK 的客户端
type Client struct {
	config Config
	api    openai.Client
}

// 确保 Client 实现 llm.Client 接口
var _ llm.Client = (*Client)(nil)

// New 创建新的客户端
func New(config Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.APIEndpoint != "" {
		opts = append(opts, option.WithBaseURL(config.APIEndpoint))
	}
	if config.OrgID != "" {
		opts = append(opts, option.WithOrganization(config.OrgID))
	}
	for k, v := range config.Headers {
		opts = append(opts, option.WithHeader(k, v))
	}
	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(config.Timeout))
	}

	return &Client{
		config: config,
		api:    openai.NewClient(opts...),
	}
}

// Chat 发起一次对话补全
func (c *Client) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case "system":
			messages = append(messages, openai.SystemMessage(msg.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	model := req.Model
	if model == "" {
		model = c.config.Model
	}

	params := openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    openai.ChatModel(model),
	}

	if req.Temperature > 0 {
		params.Temperature = openai.Float(float64(req.Temperature))
	} else if c.config.Temperature > 0 {
		params.Temperature = openai.Float(float64(c.config.Temperature))
	}

	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	} else if c.config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.config.MaxTokens))
	}

	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned from OpenAI")
	}

	return &llm.ChatResponse{
		Content:   completion.Choices[0].Message.Content,
		Model:     completion.Model,
		TokensIn:  int(completion.Usage.PromptTokens),
		TokensOut: int(completion.Usage.CompletionTokens),
	}, nil
}

// GetModel 获取模型名称
func (c *Client) GetModel() string {
	return c.config.Model
}

// HealthCheck 健康检查
func (c *Client) HealthCheck(ctx context.Context) error {
	iter := c.api.Models.ListAutoPaging(ctx)
	if iter.Next() {
		return nil
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("openai health check failed: %w", err)
	}
	return nil
}
