package translation

import (
	"fmt"
	"strings"

	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
	"github.com/nerdneilsfield/validator-format-agent/pkg/llm"
)

// 响应分节标记。语言模型按这些标记组织回复，解析端据此切分。
const (
	sectionTranslation = "---TRANSLATION---"
	sectionConfidence  = "---CONFIDENCE---"
	sectionWarnings    = "---WARNINGS---"

	sectionEquivalence = "---EQUIVALENCE---"
	sectionDifferences = "---DIFFERENCES---"
	sectionSuggestions = "---SUGGESTIONS---"
)

// PromptBuilder 提示词构建器
type PromptBuilder struct {
	// ExtraInstructions 额外的指令
	ExtraInstructions []string
}

// NewPromptBuilder 创建提示词构建器
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{
		ExtraInstructions: make([]string, 0),
	}
}

// AddInstruction 添加额外指令
func (pb *PromptBuilder) AddInstruction(instruction string) *PromptBuilder {
	pb.ExtraInstructions = append(pb.ExtraInstructions, instruction)
	return pb
}

// formatConventions 汇总全部格式的约定说明
func formatConventions() string {
	var sb strings.Builder
	sb.WriteString("Validator format conventions:\n")
	for _, f := range format.All() {
		fmt.Fprintf(&sb, "- %s: %s\n", f, f.Description())
	}
	return sb.String()
}

// BuildTranslationMessages 构建翻译对话消息
func (pb *PromptBuilder) BuildTranslationMessages(content string, source, target format.Format) []llm.ChatMessage {
	system := "You are a test specification translator. You convert a single testable behavior between notations without changing its meaning.\n\n" +
		formatConventions()

	prompt := fmt.Sprintf(`Translate the following validator from the %s format to the %s format.

Rules:
1. Preserve the exact meaning. Do not add, drop or reinterpret any condition, action or outcome.
2. Use correct syntax for the %s format.
3. Keep domain terms (names, roles, routes, values) verbatim.`,
		source, target, target)

	for i, instruction := range pb.ExtraInstructions {
		prompt += fmt.Sprintf("\n%d. %s", i+4, instruction)
	}

	prompt += fmt.Sprintf(`

Reply with exactly three sections, in this order:

%s
<the translated content>
%s
<a single number between 0 and 1 rating how faithful the translation is>
%s
<one warning per line, or nothing if there are no warnings>

Content to translate:

%s`,
		sectionTranslation, sectionConfidence, sectionWarnings, content)

	return []llm.ChatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: prompt},
	}
}

// BuildValidationMessages 构建语义校验对话消息
func (pb *PromptBuilder) BuildValidationMessages(original, translated string, source, target format.Format) []llm.ChatMessage {
	system := "You are a test specification reviewer. You judge whether two differently formatted validators describe the same behavior.\n\n" +
		formatConventions()

	prompt := fmt.Sprintf(`Compare the following two validators. The first is in the %s format, the second in the %s format.

Original:
%s

Translation:
%s

Rate how semantically equivalent they are and list any differences and suggestions.

Reply with exactly three sections, in this order:

%s
<a single number between 0 and 1>
%s
<one difference per line, or nothing>
%s
<one suggestion per line, or nothing>`,
		source, target, original, translated,
		sectionEquivalence, sectionDifferences, sectionSuggestions)

	return []llm.ChatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: prompt},
	}
}
