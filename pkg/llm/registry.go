package llm

import (
	"fmt"
	"sync"
)

// Registry 客户端注册表
type Registry struct {
	mu      sync.RWMutex
	clients map[string]Client
}

// NewRegistry 创建新的注册表
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]Client),
	}
}

// Register 注册客户端
func (r *Registry) Register(name string, client Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[name]; exists {
		return fmt.Errorf("client %s already registered", name)
	}

	r.clients[name] = client
	return nil
}

// Get 获取客户端
func (r *Registry) Get(name string) (Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, exists := r.clients[name]
	if !exists {
		return nil, fmt.Errorf("client %s not found", name)
	}

	return client, nil
}

// List 列出所有客户端
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}

	return names
}

// Remove 移除客户端
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.clients, name)
}

// DefaultRegistry 默认注册表
var DefaultRegistry = NewRegistry()

// Register 注册到默认注册表
func Register(name string, client Client) error {
	return DefaultRegistry.Register(name, client)
}

// Get 从默认注册表获取
func Get(name string) (Client, error) {
	return DefaultRegistry.Get(name)
}
