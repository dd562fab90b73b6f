package translation

import (
	"crypto/md5"
	"fmt"
	"strings"
	"sync"

	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
)

// FormatMetadata 缓存条目携带的按格式元数据。
// 每种格式一个可选字段，而不是开放的 map，使消费方可以做静态检查。
type FormatMetadata struct {
	// ScenarioStepCount 行为场景的步骤数
	ScenarioStepCount *int `json:"scenario_step_count,omitempty"`

	// ProseSentenceCount 自然语言的句子数
	ProseSentenceCount *int `json:"prose_sentence_count,omitempty"`

	// CodeAssertionCount 可执行代码的断言数
	CodeAssertionCount *int `json:"code_assertion_count,omitempty"`

	// StructuredEntryCount 结构化记录的条目总数
	StructuredEntryCount *int `json:"structured_entry_count,omitempty"`
}

// CachedResult 缓存的翻译结果
type CachedResult struct {
	Result   *Result        `json:"result"`
	Metadata FormatMetadata `json:"metadata"`
}

// MemoryCache 内存缓存实现
type MemoryCache struct {
	data  map[string]*CachedResult
	mutex sync.RWMutex
	stats CacheStats
}

// 确保 MemoryCache 实现 Cache 接口
var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache 创建内存缓存
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]*CachedResult),
	}
}

// Get 获取缓存条目
func (c *MemoryCache) Get(key string) (*CachedResult, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.data[key]
	if !exists {
		c.stats.Misses++
		return nil, false
	}

	c.stats.Hits++
	return entry, true
}

// Set 写入缓存条目
func (c *MemoryCache) Set(key string, value *CachedResult) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = value
	c.stats.Size = int64(len(c.data))
	return nil
}

// Clear 清除所有缓存
func (c *MemoryCache) Clear() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]*CachedResult)
	c.stats = CacheStats{}
	return nil
}

// Stats 获取缓存统计信息
func (c *MemoryCache) Stats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.stats
}

// cacheKey 根据翻译输入生成缓存 key
func cacheKey(content string, source, target format.Format, model string) string {
	keyData := fmt.Sprintf("src:%s|tgt:%s|model:%s|content:%s", source, target, model, content)
	hash := md5.Sum([]byte(keyData))
	return fmt.Sprintf("%x", hash)
}

// buildFormatMetadata 根据目标格式填充元数据记录
func buildFormatMetadata(content string, target format.Format) FormatMetadata {
	var meta FormatMetadata

	switch target {
	case format.BehavioralScenario:
		n := len(format.ParseScenario(content))
		meta.ScenarioStepCount = &n
	case format.NaturalLanguage:
		n := len(splitSentences(content))
		meta.ProseSentenceCount = &n
	case format.ExecutableCode:
		n := 0
		for _, line := range strings.Split(content, "\n") {
			if isAssertionLine(strings.TrimSpace(line)) {
				n++
			}
		}
		meta.CodeAssertionCount = &n
	case format.StructuredData:
		if rec, err := format.ParseRecord(content); err == nil {
			n := len(rec.Given) + len(rec.When) + len(rec.Then)
			meta.StructuredEntryCount = &n
		}
	}

	return meta
}
