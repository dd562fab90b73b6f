package format

import (
	"fmt"
	"strings"
)

// Format 校验器表示格式
type Format string

// 支持的四种格式（封闭集合，不允许扩展）
const (
	// BehavioralScenario 行为场景格式（Given/When/Then 步骤行）
	BehavioralScenario Format = "behavioral-scenario"

	// NaturalLanguage 自然语言格式（自由散文）
	NaturalLanguage Format = "natural-language"

	// ExecutableCode 可执行代码格式（包含断言调用的测试函数）
	ExecutableCode Format = "executable-code"

	// StructuredData 结构化数据格式（given/when/then 三个有序列表）
	StructuredData Format = "structured-data"
)

// All 返回所有支持的格式
func All() []Format {
	return []Format{BehavioralScenario, NaturalLanguage, ExecutableCode, StructuredData}
}

// Valid 检查格式是否合法
func (f Format) Valid() bool {
	switch f {
	case BehavioralScenario, NaturalLanguage, ExecutableCode, StructuredData:
		return true
	default:
		return false
	}
}

// String 实现 fmt.Stringer
func (f Format) String() string {
	return string(f)
}

// Parse 解析格式名称（大小写不敏感）
func Parse(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("unknown format: %q", s)
	}
	return f, nil
}

// Description 返回格式的约定说明，用于提示词构建和输出检查
func (f Format) Description() string {
	switch f {
	case BehavioralScenario:
		return "a sequence of step lines, each prefixed by Given, When, Then or And, one step per line"
	case NaturalLanguage:
		return "free prose describing the behavior in plain sentences"
	case ExecutableCode:
		return "a test function containing one or more assertion calls"
	case StructuredData:
		return `a JSON record with three ordered list fields: "given", "when" and "then"`
	default:
		return ""
	}
}
