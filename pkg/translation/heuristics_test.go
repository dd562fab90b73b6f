package translation

import (
	"strings"
	"testing"

	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioFixture = "Given a user with role admin\nWhen they access /api/users\nThen access is granted"

func TestConvertScenarioToNatural(t *testing.T) {
	result := ConvertHeuristic(scenarioFixture, format.BehavioralScenario, format.NaturalLanguage)

	require.NotEmpty(t, result.Content)
	assert.Contains(t, result.Content, "a user with role admin")
	assert.Contains(t, result.Content, "access is granted")
	assert.False(t, result.UsedLanguageModel)
	assert.Equal(t, confScenarioToNatural, result.Confidence)
	assert.Contains(t, result.Warnings, heuristicCaveat)
}

func TestConvertNaturalToScenario(t *testing.T) {
	prose := "A user with role admin exists. When they access the user list, access should be granted."
	result := ConvertHeuristic(prose, format.NaturalLanguage, format.BehavioralScenario)

	lines := strings.Split(result.Content, "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "Given "))
	assert.Contains(t, result.Content, "Then ")
	assert.Equal(t, confNaturalToScenario, result.Confidence)
}

func TestConvertStructuredToScenario(t *testing.T) {
	encoded := `{"given":["a user exists"],"when":["they log in"],"then":["they see dashboard"]}`
	result := ConvertHeuristic(encoded, format.StructuredData, format.BehavioralScenario)

	givenIdx := strings.Index(result.Content, "Given a user exists")
	whenIdx := strings.Index(result.Content, "When they log in")
	thenIdx := strings.Index(result.Content, "Then they see dashboard")

	require.GreaterOrEqual(t, givenIdx, 0)
	require.Greater(t, whenIdx, givenIdx)
	require.Greater(t, thenIdx, whenIdx)
}

func TestConvertScenarioToStructured(t *testing.T) {
	result := ConvertHeuristic(scenarioFixture, format.BehavioralScenario, format.StructuredData)

	rec, err := format.ParseRecord(result.Content)
	require.NoError(t, err)
	assert.Equal(t, []string{"a user with role admin"}, rec.Given)
	assert.Equal(t, []string{"they access /api/users"}, rec.When)
	assert.Equal(t, []string{"access is granted"}, rec.Then)
}

func TestConvertBridgeScenarioToCode(t *testing.T) {
	// 没有直接规则的格式对经 structured-data 中转
	result := ConvertHeuristic(scenarioFixture, format.BehavioralScenario, format.ExecutableCode)

	assert.Contains(t, result.Content, "func TestValidatorBehavior")
	assert.Contains(t, result.Content, "assert.True")
	assert.Contains(t, result.Content, "a user with role admin")
	// 中转置信度不高于任一段
	assert.LessOrEqual(t, result.Confidence, confScenarioToStructured)
	assert.Contains(t, result.Warnings, heuristicCaveat)
}

func TestConvertCodeToScenario(t *testing.T) {
	code := "func TestValidatorBehavior(t *testing.T) {\n" +
		"\t// Given: a user with role admin\n" +
		"\t// When: they access /api/users\n" +
		"\tassert.True(t, true, \"Then: access is granted\")\n" +
		"}"
	result := ConvertHeuristic(code, format.ExecutableCode, format.BehavioralScenario)

	assert.Contains(t, result.Content, "Given a user with role admin")
	assert.Contains(t, result.Content, "When they access /api/users")
	assert.Contains(t, result.Content, "Then access is granted")
}

func TestConvertInvalidStructuredDataFallsThrough(t *testing.T) {
	// 解析失败退化为原文透传加警告，绝不报错
	result := ConvertHeuristic("definitely not json", format.StructuredData, format.BehavioralScenario)

	assert.Equal(t, "definitely not json", result.Content)
	assert.Equal(t, confPassthrough, result.Confidence)
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "could not parse structured data")
	assert.Contains(t, result.Warnings, heuristicCaveat)
}

func TestConvertConfidenceAlwaysClamped(t *testing.T) {
	for _, src := range format.All() {
		for _, dst := range format.All() {
			if src == dst {
				continue
			}
			result := ConvertHeuristic(scenarioFixture, src, dst)
			assert.GreaterOrEqual(t, result.Confidence, 0.0)
			assert.LessOrEqual(t, result.Confidence, 1.0)
			assert.Contains(t, result.Warnings, heuristicCaveat)
		}
	}
}

func TestClassifySentence(t *testing.T) {
	assert.Equal(t, format.StepThen, classifySentence("access should be granted", 1, 3))
	assert.Equal(t, format.StepWhen, classifySentence("when they submit the form", 1, 3))
	assert.Equal(t, format.StepGiven, classifySentence("a session exists", 1, 3))

	// 无提示词时按位置兜底
	assert.Equal(t, format.StepGiven, classifySentence("plain words", 0, 3))
	assert.Equal(t, format.StepThen, classifySentence("plain words", 2, 3))
	assert.Equal(t, format.StepWhen, classifySentence("plain words", 1, 3))
}
