package format

import (
	"encoding/json"
	"fmt"
)

// Record 结构化数据格式的载体：三个有序列表
type Record struct {
	Given []string `json:"given"`
	When  []string `json:"when"`
	Then  []string `json:"then"`
}

// ParseRecord 解析结构化数据 JSON
func ParseRecord(content string) (*Record, error) {
	var rec Record
	if err := json.Unmarshal([]byte(content), &rec); err != nil {
		return nil, fmt.Errorf("invalid structured data: %w", err)
	}
	return &rec, nil
}

// Marshal 序列化为 JSON 文本
func (r *Record) Marshal() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Empty 检查记录是否为空
func (r *Record) Empty() bool {
	return len(r.Given) == 0 && len(r.When) == 0 && len(r.Then) == 0
}

// Steps 将记录展开为场景步骤序列，保持 given→when→then 的顺序
func (r *Record) Steps() []Step {
	var steps []Step
	for _, text := range r.Given {
		steps = append(steps, Step{Kind: StepGiven, Text: text})
	}
	for _, text := range r.When {
		steps = append(steps, Step{Kind: StepWhen, Text: text})
	}
	for _, text := range r.Then {
		steps = append(steps, Step{Kind: StepThen, Text: text})
	}
	return steps
}

// RecordFromSteps 将步骤序列折叠为结构化记录
func RecordFromSteps(steps []Step) *Record {
	rec := &Record{}
	for _, step := range steps {
		switch step.Kind {
		case StepWhen:
			rec.When = append(rec.When, step.Text)
		case StepThen:
			rec.Then = append(rec.Then, step.Text)
		default:
			rec.Given = append(rec.Given, step.Text)
		}
	}
	return rec
}
