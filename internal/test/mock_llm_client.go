package test

import (
	"context"
	"sync"

	"github.com/nerdneilsfield/validator-format-agent/pkg/llm"
)

// MockLLMClient 模拟的语言模型客户端，供 CLI 和集成测试使用
type MockLLMClient struct {
	mu sync.Mutex

	// Reply 固定响应内容
	Reply string

	// ReplyFunc 按请求生成响应，优先于 Reply
	ReplyFunc func(req *llm.ChatRequest) string

	// Err 返回的错误，设置后每次调用都失败
	Err error

	// Calls 记录的全部请求
	Calls []*llm.ChatRequest
}

// 确保 MockLLMClient 实现 llm.Client 接口
var _ llm.Client = (*MockLLMClient)(nil)

// NewMockLLMClient 创建固定响应的模拟客户端
func NewMockLLMClient(reply string) *MockLLMClient {
	return &MockLLMClient{Reply: reply}
}

// Chat 返回预设的响应
func (m *MockLLMClient) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	content := m.Reply
	if m.ReplyFunc != nil {
		content = m.ReplyFunc(req)
	}

	return &llm.ChatResponse{
		Content:   content,
		Model:     "mock-model",
		TokensIn:  100,
		TokensOut: 150,
	}, nil
}

// GetModel 获取模型名称
func (m *MockLLMClient) GetModel() string {
	return "mock-model"
}

// HealthCheck 健康检查
func (m *MockLLMClient) HealthCheck(ctx context.Context) error {
	return m.Err
}

// CallCount 返回已收到的请求数
func (m *MockLLMClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
