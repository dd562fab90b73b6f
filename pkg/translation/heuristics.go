package translation

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
)

// 启发式转换的固定置信度，反映各规则预期的保真度损失
const (
	confScenarioToNatural    = 0.8
	confNaturalToScenario    = 0.6
	confScenarioToStructured = 0.8
	confStructuredToScenario = 0.8
	confNaturalToStructured  = 0.6
	confStructuredToNatural  = 0.7
	confStructuredToCode     = 0.7
	confCodeToStructured     = 0.5
	confPassthrough          = 0.3
)

// heuristicCaveat 启发式转换的固定警告
const heuristicCaveat = "heuristic translation used; quality may be reduced"

// pair 有序的格式对，作为转换器选择的显式 key
type pair struct {
	Source format.Format
	Target format.Format
}

// converterFunc 单条转换规则：返回转换结果、固定置信度和规则自身的警告
type converterFunc func(content string) (string, float64, []string)

// converters 格式对到转换规则的显式映射。
// 未列出的格式对走 structured-data 中转的默认路径。
var converters = map[pair]converterFunc{
	{format.BehavioralScenario, format.NaturalLanguage}: scenarioToNatural,
	{format.NaturalLanguage, format.BehavioralScenario}: naturalToScenario,
	{format.BehavioralScenario, format.StructuredData}:  scenarioToStructured,
	{format.StructuredData, format.BehavioralScenario}:  structuredToScenario,
	{format.NaturalLanguage, format.StructuredData}:     naturalToStructured,
	{format.StructuredData, format.NaturalLanguage}:     structuredToNatural,
	{format.StructuredData, format.ExecutableCode}:      structuredToCode,
	{format.ExecutableCode, format.StructuredData}:      codeToStructured,
}

// ConvertHeuristic 执行启发式转换。该路径保证不失败：
// 任何无法处理的输入都退化为低置信度的原文透传加警告。
func ConvertHeuristic(content string, source, target format.Format) *Result {
	converted, confidence, warnings := convertPair(content, source, target)

	return &Result{
		Content:           converted,
		SourceFormat:      source,
		TargetFormat:      target,
		Confidence:        clamp01(confidence),
		Warnings:          append(warnings, heuristicCaveat),
		UsedLanguageModel: false,
	}
}

// convertPair 按显式映射分发，未命中时经 structured-data 中转
func convertPair(content string, source, target format.Format) (string, float64, []string) {
	if conv, ok := converters[pair{source, target}]; ok {
		return conv(content)
	}

	// 默认路径：source → structured-data → target
	toBridge, okIn := converters[pair{source, format.StructuredData}]
	fromBridge, okOut := converters[pair{format.StructuredData, target}]
	if okIn && okOut {
		intermediate, confIn, warnIn := toBridge(content)
		converted, confOut, warnOut := fromBridge(intermediate)
		conf := confIn
		if confOut < conf {
			conf = confOut
		}
		return converted, conf, append(warnIn, warnOut...)
	}

	// 无规则也无中转：原文透传
	warning := fmt.Sprintf("conversion from %s to %s is not supported; returning content unchanged", source, target)
	return content, confPassthrough, []string{warning}
}

// scenarioToNatural 将步骤行拼接为一句散文
func scenarioToNatural(content string) (string, float64, []string) {
	steps := format.ParseScenario(content)
	if len(steps) == 0 {
		return content, confPassthrough, []string{"no scenario steps recognized"}
	}

	rec := format.RecordFromSteps(steps)

	var parts []string
	if len(rec.Given) > 0 {
		parts = append(parts, "Assuming "+joinClauses(rec.Given))
	}
	if len(rec.When) > 0 {
		parts = append(parts, "when "+joinClauses(rec.When))
	}
	if len(rec.Then) > 0 {
		parts = append(parts, "then "+joinClauses(rec.Then))
	}

	sentence := strings.Join(parts, ", ") + "."
	return capitalize(sentence), confScenarioToNatural, nil
}

// naturalToScenario 扫描句子中的条件/动作/结果提示词，分配步骤关键字
func naturalToScenario(content string) (string, float64, []string) {
	sentences := splitSentences(content)
	if len(sentences) == 0 {
		return content, confPassthrough, []string{"no sentences recognized"}
	}

	var steps []format.Step
	for i, sentence := range sentences {
		steps = append(steps, format.Step{
			Kind: classifySentence(sentence, i, len(sentences)),
			Text: trimClause(sentence),
		})
	}

	return format.RenderScenario(steps), confNaturalToScenario, nil
}

// scenarioToStructured 步骤行折叠为结构化记录
func scenarioToStructured(content string) (string, float64, []string) {
	steps := format.ParseScenario(content)
	if len(steps) == 0 {
		return content, confPassthrough, []string{"no scenario steps recognized"}
	}

	encoded, err := format.RecordFromSteps(steps).Marshal()
	if err != nil {
		return content, confPassthrough, []string{"could not encode structured data: " + err.Error()}
	}
	return encoded, confScenarioToStructured, nil
}

// structuredToScenario 结构化记录展开为步骤行
func structuredToScenario(content string) (string, float64, []string) {
	rec, err := format.ParseRecord(content)
	if err != nil {
		return content, confPassthrough, []string{"could not parse structured data: " + err.Error()}
	}
	if rec.Empty() {
		return content, confPassthrough, []string{"structured data record is empty"}
	}
	return format.RenderScenario(rec.Steps()), confStructuredToScenario, nil
}

// naturalToStructured 经句子分类得到结构化记录
func naturalToStructured(content string) (string, float64, []string) {
	sentences := splitSentences(content)
	if len(sentences) == 0 {
		return content, confPassthrough, []string{"no sentences recognized"}
	}

	var steps []format.Step
	for i, sentence := range sentences {
		steps = append(steps, format.Step{
			Kind: classifySentence(sentence, i, len(sentences)),
			Text: trimClause(sentence),
		})
	}

	encoded, err := format.RecordFromSteps(steps).Marshal()
	if err != nil {
		return content, confPassthrough, []string{"could not encode structured data: " + err.Error()}
	}
	return encoded, confNaturalToStructured, nil
}

// structuredToNatural 结构化记录拼接为散文
func structuredToNatural(content string) (string, float64, []string) {
	rec, err := format.ParseRecord(content)
	if err != nil {
		return content, confPassthrough, []string{"could not parse structured data: " + err.Error()}
	}
	if rec.Empty() {
		return content, confPassthrough, []string{"structured data record is empty"}
	}

	var parts []string
	if len(rec.Given) > 0 {
		parts = append(parts, "Assuming "+joinClauses(rec.Given))
	}
	if len(rec.When) > 0 {
		parts = append(parts, "when "+joinClauses(rec.When))
	}
	if len(rec.Then) > 0 {
		parts = append(parts, "then "+joinClauses(rec.Then))
	}

	return capitalize(strings.Join(parts, ", ") + "."), confStructuredToNatural, nil
}

// structuredToCode 生成带断言的测试函数骨架
func structuredToCode(content string) (string, float64, []string) {
	rec, err := format.ParseRecord(content)
	if err != nil {
		return content, confPassthrough, []string{"could not parse structured data: " + err.Error()}
	}
	if rec.Empty() {
		return content, confPassthrough, []string{"structured data record is empty"}
	}

	var sb strings.Builder
	sb.WriteString("func TestValidatorBehavior(t *testing.T) {\n")
	for _, g := range rec.Given {
		fmt.Fprintf(&sb, "\t// Given: %s\n", g)
	}
	for _, w := range rec.When {
		fmt.Fprintf(&sb, "\t// When: %s\n", w)
	}
	if len(rec.Then) == 0 {
		sb.WriteString("\tassert.True(t, true)\n")
	}
	for _, th := range rec.Then {
		fmt.Fprintf(&sb, "\tassert.True(t, true, %q)\n", "Then: "+th)
	}
	sb.WriteString("}")

	return sb.String(), confStructuredToCode, nil
}

// codeToStructured 从测试代码的注释和断言消息中恢复结构化记录
func codeToStructured(content string) (string, float64, []string) {
	rec := &format.Record{}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case hasCommentTag(line, "Given"):
			rec.Given = append(rec.Given, stripCommentTag(line, "Given"))
		case hasCommentTag(line, "When"):
			rec.When = append(rec.When, stripCommentTag(line, "When"))
		case hasCommentTag(line, "Then"):
			rec.Then = append(rec.Then, stripCommentTag(line, "Then"))
		case isAssertionLine(line):
			if msg := quotedMessage(line); msg != "" {
				rec.Then = append(rec.Then, strings.TrimSpace(strings.TrimPrefix(msg, "Then:")))
			}
		}
	}

	if rec.Empty() {
		return content, confPassthrough, []string{"no steps recovered from code"}
	}

	encoded, err := rec.Marshal()
	if err != nil {
		return content, confPassthrough, []string{"could not encode structured data: " + err.Error()}
	}
	return encoded, confCodeToStructured, nil
}

// 句子切分：按结句标点加空白切分。
// 需要 lookbehind，标准库 regexp 不支持，使用 regexp2。
var sentenceSplitRe = regexp2.MustCompile(`(?<=[.!?;])\s+`, regexp2.None)

// splitSentences 将散文切分为句子并去掉空白项
func splitSentences(text string) []string {
	runes := []rune(strings.TrimSpace(text))
	var sentences []string
	last := 0

	m, err := sentenceSplitRe.FindRunesMatch(runes)
	for err == nil && m != nil {
		if s := strings.TrimSpace(string(runes[last:m.Index])); s != "" {
			sentences = append(sentences, s)
		}
		last = m.Index + m.Length
		m, err = sentenceSplitRe.FindNextMatch(m)
	}

	if s := strings.TrimSpace(string(runes[last:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// 句子分类提示词
var (
	conditionCues = []string{"if ", "assume", "assuming", "suppose", "exists", "there is", "has a", "with a"}
	actionCues    = []string{"when ", "once ", "after ", "upon ", "perform", "executes", "calls", "invokes", "submits", "log in", "logs in", "access"}
	outcomeCues   = []string{"then ", "should", "must ", "expect", "result", "returns", "sees ", "displayed", "granted", "denied"}
)

// classifySentence 根据提示词判定步骤类型，无提示词时按句子位置兜底
func classifySentence(sentence string, index, total int) format.StepKind {
	lower := strings.ToLower(sentence)

	for _, cue := range outcomeCues {
		if strings.Contains(lower, cue) {
			return format.StepThen
		}
	}
	for _, cue := range actionCues {
		if strings.Contains(lower, cue) {
			return format.StepWhen
		}
	}
	for _, cue := range conditionCues {
		if strings.Contains(lower, cue) {
			return format.StepGiven
		}
	}

	// 位置兜底：首句当前提，末句当结果，中间当动作
	switch {
	case index == 0:
		return format.StepGiven
	case index == total-1:
		return format.StepThen
	default:
		return format.StepWhen
	}
}

// trimClause 去掉句子的结句标点和引导词
func trimClause(sentence string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(sentence), ".!?;")
	for _, lead := range []string{"given ", "when ", "then ", "and ", "assuming ", "if "} {
		if len(trimmed) > len(lead) && strings.EqualFold(trimmed[:len(lead)], lead) {
			return strings.TrimSpace(trimmed[len(lead):])
		}
	}
	return trimmed
}

// joinClauses 用 and 连接多个子句
func joinClauses(clauses []string) string {
	return strings.Join(clauses, " and ")
}

// capitalize 首字母大写
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}

// hasCommentTag 检查是否是 "// Given:" 一类的注释行
func hasCommentTag(line, tag string) bool {
	for _, prefix := range []string{"// " + tag + ":", "//" + tag + ":", "# " + tag + ":", "// " + tag + " "} {
		if len(line) >= len(prefix) && strings.EqualFold(line[:len(prefix)], prefix) {
			return true
		}
	}
	return false
}

// stripCommentTag 取出注释行中标记之后的内容
func stripCommentTag(line, tag string) string {
	trimmed := strings.TrimLeft(line, "/# ")
	trimmed = strings.TrimSpace(trimmed[len(tag):])
	return strings.TrimSpace(strings.TrimPrefix(trimmed, ":"))
}

// isAssertionLine 检查是否是断言调用行
func isAssertionLine(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range []string{"assert", "require.", "expect(", "should."} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// quotedMessage 取出行内最后一个双引号字符串
func quotedMessage(line string) string {
	end := strings.LastIndex(line, `"`)
	if end <= 0 {
		return ""
	}
	start := strings.LastIndex(line[:end], `"`)
	if start < 0 {
		return ""
	}
	return line[start+1 : end]
}
