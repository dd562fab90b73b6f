package translation_test

import (
	"context"
	"errors"
	"testing"

	itest "github.com/nerdneilsfield/validator-format-agent/internal/test"
	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
	"github.com/nerdneilsfield/validator-format-agent/pkg/translation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(mock *itest.MockLLMClient) *translation.Adapter {
	return translation.NewAdapter(mock, translation.DefaultConfig(), nil)
}

func TestAdapterParsesDelimitedReply(t *testing.T) {
	mock := itest.NewMockLLMClient("---TRANSLATION---\nThe admin can list users.\n---CONFIDENCE---\n0.85\n---WARNINGS---\n- minor rewording\n")
	adapter := newAdapter(mock)

	result, err := adapter.Translate(context.Background(), "Given an admin", format.BehavioralScenario, format.NaturalLanguage)
	require.NoError(t, err)

	assert.Equal(t, "The admin can list users.", result.Content)
	assert.InDelta(t, 0.85, result.Confidence, 1e-9)
	assert.Equal(t, []string{"minor rewording"}, result.Warnings)
	assert.True(t, result.UsedLanguageModel)
}

func TestAdapterClampsConfidence(t *testing.T) {
	cases := map[string]float64{
		"5.3": 1.0,
		"-2":  0.0,
	}

	for raw, expected := range cases {
		mock := itest.NewMockLLMClient("---TRANSLATION---\nprose\n---CONFIDENCE---\n" + raw + "\n---WARNINGS---\n")
		adapter := newAdapter(mock)

		result, err := adapter.Translate(context.Background(), "Given x", format.BehavioralScenario, format.NaturalLanguage)
		require.NoError(t, err)
		assert.InDelta(t, expected, result.Confidence, 1e-9, "raw confidence %s", raw)
	}
}

func TestAdapterNonStandardReply(t *testing.T) {
	// 缺少分节标记时整个响应按译文处理
	mock := itest.NewMockLLMClient("just some prose without any markers")
	adapter := newAdapter(mock)

	result, err := adapter.Translate(context.Background(), "Given x", format.BehavioralScenario, format.NaturalLanguage)
	require.NoError(t, err)

	assert.Equal(t, "just some prose without any markers", result.Content)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "non-standard response format")
}

func TestAdapterMissingConfidence(t *testing.T) {
	mock := itest.NewMockLLMClient("---TRANSLATION---\nprose\n---CONFIDENCE---\nvery sure\n---WARNINGS---\n")
	adapter := newAdapter(mock)

	result, err := adapter.Translate(context.Background(), "Given x", format.BehavioralScenario, format.NaturalLanguage)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)
	assert.Contains(t, result.Warnings[0], "confidence rating missing")
}

func TestAdapterTargetFormatChecks(t *testing.T) {
	// 行为场景输出缺少步骤关键字时追加警告但不失败
	mock := itest.NewMockLLMClient("---TRANSLATION---\nplain prose without markers\n---CONFIDENCE---\n0.9\n---WARNINGS---\n")
	adapter := newAdapter(mock)

	result, err := adapter.Translate(context.Background(), "prose", format.NaturalLanguage, format.BehavioralScenario)
	require.NoError(t, err)
	assert.Contains(t, result.Warnings, "translated content contains no scenario step keywords")

	// 结构化数据输出必须可解析
	mock = itest.NewMockLLMClient("---TRANSLATION---\nnot json\n---CONFIDENCE---\n0.9\n---WARNINGS---\n")
	adapter = newAdapter(mock)

	result, err = adapter.Translate(context.Background(), "prose", format.NaturalLanguage, format.StructuredData)
	require.NoError(t, err)
	assert.Contains(t, result.Warnings, "translated content is not valid structured data")

	// 可执行代码输出应包含断言
	mock = itest.NewMockLLMClient("---TRANSLATION---\nfunc TestX(t *testing.T) {}\n---CONFIDENCE---\n0.9\n---WARNINGS---\n")
	adapter = newAdapter(mock)

	result, err = adapter.Translate(context.Background(), "prose", format.NaturalLanguage, format.ExecutableCode)
	require.NoError(t, err)
	assert.Contains(t, result.Warnings, "translated code contains no assertion call")
}

func TestAdapterPropagatesClientError(t *testing.T) {
	mock := itest.NewMockLLMClient("")
	mock.Err = errors.New("connection refused")
	adapter := newAdapter(mock)

	_, err := adapter.Translate(context.Background(), "Given x", format.BehavioralScenario, format.NaturalLanguage)
	assert.Error(t, err)
}

func TestAdapterValidationReply(t *testing.T) {
	mock := itest.NewMockLLMClient("---EQUIVALENCE---\n0.92\n---DIFFERENCES---\n---SUGGESTIONS---\n- tighten the wording\n")
	adapter := newAdapter(mock)

	validation, err := adapter.Validate(context.Background(), "original", "translated", format.BehavioralScenario, format.NaturalLanguage)
	require.NoError(t, err)

	assert.InDelta(t, 0.92, validation.Equivalence, 1e-9)
	assert.Empty(t, validation.Warnings)
	assert.Equal(t, []string{"tighten the wording"}, validation.Suggestions)
}

func TestAdapterValidationUnparsableReply(t *testing.T) {
	mock := itest.NewMockLLMClient("no sections here")
	adapter := newAdapter(mock)

	_, err := adapter.Validate(context.Background(), "original", "translated", format.BehavioralScenario, format.NaturalLanguage)
	assert.Error(t, err)
}
