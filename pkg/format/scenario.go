package format

import (
	"strings"
)

// StepKind 场景步骤类型
type StepKind string

// 场景步骤关键字
const (
	StepGiven StepKind = "Given"
	StepWhen  StepKind = "When"
	StepThen  StepKind = "Then"
	StepAnd   StepKind = "And"
)

// Step 单个场景步骤
type Step struct {
	Kind StepKind // 步骤关键字
	Text string   // 关键字之后的内容
}

// stepKeywords 按解析优先级排列的步骤关键字
var stepKeywords = []StepKind{StepGiven, StepWhen, StepThen, StepAnd}

// ParseScenario 将行为场景文本解析为步骤序列。
// 无法识别关键字的非空行会被归入上一个步骤类型；
// 出现在任何关键字之前的行按 Given 处理。
func ParseScenario(content string) []Step {
	var steps []Step
	last := StepGiven

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		matched := false
		for _, kw := range stepKeywords {
			prefix := string(kw) + " "
			if len(line) >= len(prefix) && strings.EqualFold(line[:len(prefix)], prefix) {
				kind := kw
				if kind == StepAnd {
					kind = last
				} else {
					last = kind
				}
				steps = append(steps, Step{Kind: kind, Text: strings.TrimSpace(line[len(prefix):])})
				matched = true
				break
			}
		}

		if !matched {
			steps = append(steps, Step{Kind: last, Text: line})
		}
	}

	return steps
}

// RenderScenario 将步骤序列渲染为场景文本。
// 同一类型的连续步骤从第二个开始使用 And 关键字。
func RenderScenario(steps []Step) string {
	var sb strings.Builder
	var prev StepKind

	for i, step := range steps {
		if i > 0 {
			sb.WriteString("\n")
		}
		kw := string(step.Kind)
		if step.Kind == prev {
			kw = string(StepAnd)
		} else {
			prev = step.Kind
		}
		sb.WriteString(kw)
		sb.WriteString(" ")
		sb.WriteString(step.Text)
	}

	return sb.String()
}

// HasStepKeyword 检查文本是否包含任一场景步骤关键字
func HasStepKeyword(content string) bool {
	lower := strings.ToLower(content)
	for _, kw := range stepKeywords {
		if strings.Contains(lower, strings.ToLower(string(kw))+" ") {
			return true
		}
	}
	return false
}

// StartsWithGiven 检查场景文本是否以 Given 步骤开头
func StartsWithGiven(content string) bool {
	trimmed := strings.TrimSpace(content)
	return len(trimmed) >= 6 && strings.EqualFold(trimmed[:6], "given ")
}
