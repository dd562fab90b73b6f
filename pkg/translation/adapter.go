package translation

import (
	"context"
	"strconv"
	"strings"

	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
	"github.com/nerdneilsfield/validator-format-agent/pkg/llm"
	"go.uber.org/zap"
)

// 解析不到置信度时使用的默认值
const defaultLLMConfidence = 0.7

// warnNonStandardReply 响应缺少分节标记时的警告
const warnNonStandardReply = "non-standard response format from language model; treated entire reply as translation"

// Adapter 语言模型适配器：构建提示词、调用外部服务、解析分节响应。
// 适配器的错误从不逃逸到引擎之外，编排器捕获后回退到启发式路径。
type Adapter struct {
	client  llm.Client
	config  *Config
	prompts *PromptBuilder
	logger  *zap.Logger
}

// NewAdapter 创建适配器
func NewAdapter(client llm.Client, config *Config, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{
		client:  client,
		config:  config,
		prompts: NewPromptBuilder(),
		logger:  logger,
	}
}

// Translate 经语言模型执行一次翻译
func (a *Adapter) Translate(ctx context.Context, content string, source, target format.Format) (*Result, error) {
	if a.client == nil {
		return nil, ErrNoLLMClient
	}

	messages := a.prompts.BuildTranslationMessages(content, source, target)
	resp, err := a.client.Chat(ctx, &llm.ChatRequest{
		Messages:    messages,
		Model:       a.config.Model,
		Temperature: a.config.Temperature,
		MaxTokens:   a.config.MaxTokens,
	})
	if err != nil {
		return nil, WrapError(err, ErrCodeLLM, "language model invocation failed")
	}

	result := parseTranslationReply(resp.Content, source, target)

	// 目标格式合理性检查：只追加警告，不让调用失败
	result.Warnings = append(result.Warnings, checkTargetFormat(result.Content, target)...)

	a.logger.Debug("language model translation completed",
		zap.String("source", source.String()),
		zap.String("target", target.String()),
		zap.Float64("confidence", result.Confidence),
		zap.Int("warnings", len(result.Warnings)))

	return result, nil
}

// Validate 经语言模型评估两段文本的语义等价度
func (a *Adapter) Validate(ctx context.Context, original, translated string, source, target format.Format) (*SemanticValidation, error) {
	if a.client == nil {
		return nil, ErrNoLLMClient
	}

	messages := a.prompts.BuildValidationMessages(original, translated, source, target)
	resp, err := a.client.Chat(ctx, &llm.ChatRequest{
		Messages:    messages,
		Model:       a.config.Model,
		Temperature: a.config.Temperature,
		MaxTokens:   a.config.MaxTokens,
	})
	if err != nil {
		return nil, WrapError(err, ErrCodeLLM, "language model invocation failed")
	}

	validation, ok := parseValidationReply(resp.Content)
	if !ok {
		// 无法解析时交由调用方回退到启发式校验
		return nil, WrapError(ErrMalformedReply, ErrCodeParse, "equivalence rating missing from reply")
	}
	return validation, nil
}

// parseTranslationReply 解析翻译响应的三个分节。
// 缺少标记时把整个响应当作译文并追加警告。
func parseTranslationReply(reply string, source, target format.Format) *Result {
	result := &Result{
		SourceFormat:      source,
		TargetFormat:      target,
		Confidence:        defaultLLMConfidence,
		Warnings:          []string{},
		UsedLanguageModel: true,
	}

	body, rest, found := cutSection(reply, sectionTranslation, sectionConfidence)
	if !found {
		result.Content = strings.TrimSpace(reply)
		result.Warnings = append(result.Warnings, warnNonStandardReply)
		return result
	}
	result.Content = body

	confText, warnText, _ := cutSection(rest, sectionConfidence, sectionWarnings)
	if conf, err := strconv.ParseFloat(strings.TrimSpace(confText), 64); err == nil {
		result.Confidence = clamp01(conf)
	} else {
		result.Warnings = append(result.Warnings, "confidence rating missing from language model reply")
	}

	result.Warnings = append(result.Warnings, parseListSection(warnText)...)
	return result
}

// parseValidationReply 解析校验响应；找不到等价度数值时返回 ok=false
func parseValidationReply(reply string) (*SemanticValidation, bool) {
	eqText, rest, found := cutSection(reply, sectionEquivalence, sectionDifferences)
	if !found {
		return nil, false
	}

	eq, err := strconv.ParseFloat(strings.TrimSpace(eqText), 64)
	if err != nil {
		return nil, false
	}

	diffText, suggText, _ := cutSection(rest, sectionDifferences, sectionSuggestions)

	return &SemanticValidation{
		Equivalence: clamp01(eq),
		Warnings:    parseListSection(diffText),
		Suggestions: parseListSection(suggText),
	}, true
}

// cutSection 取出 start 标记到 next 标记之间的内容；
// 返回剩余文本（从 next 标记开始）供继续解析。
func cutSection(text, start, next string) (section string, rest string, found bool) {
	idx := strings.Index(text, start)
	if idx < 0 {
		return "", text, false
	}

	after := text[idx+len(start):]
	if nextIdx := strings.Index(after, next); nextIdx >= 0 {
		return strings.TrimSpace(after[:nextIdx]), after[nextIdx:], true
	}
	return strings.TrimSpace(after), "", true
}

// parseListSection 把分节内容解析为条目列表，支持 "- " 前缀
func parseListSection(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "- "))
		if line != "" && line != "none" && line != "None" {
			items = append(items, line)
		}
	}
	return items
}

// checkTargetFormat 轻量的目标格式合理性检查
func checkTargetFormat(content string, target format.Format) []string {
	var warnings []string

	switch target {
	case format.BehavioralScenario:
		if !format.HasStepKeyword(content) {
			warnings = append(warnings, "translated content contains no scenario step keywords")
		}
	case format.ExecutableCode:
		if !containsAssertion(content) {
			warnings = append(warnings, "translated code contains no assertion call")
		}
	case format.StructuredData:
		if _, err := format.ParseRecord(content); err != nil {
			warnings = append(warnings, "translated content is not valid structured data")
		}
	}

	return warnings
}

// containsAssertion 检查代码文本是否包含断言调用
func containsAssertion(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		if isAssertionLine(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}
