package translation_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	itest "github.com/nerdneilsfield/validator-format-agent/internal/test"
	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
	"github.com/nerdneilsfield/validator-format-agent/pkg/translation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHeuristicMissingTerms(t *testing.T) {
	svc := newService(t)

	original := "The administrator dashboard displays pending invoices and overdue payments."
	translated := "The administrator dashboard displays nothing special."

	validation, err := svc.ValidateTranslation(context.Background(), original, translated,
		format.NaturalLanguage, format.NaturalLanguage)
	require.NoError(t, err)

	assert.Less(t, validation.Equivalence, 0.7)
	assert.False(t, validation.IsValid)

	// 警告必须点名丢失的关键词
	joined := strings.Join(validation.Warnings, "\n")
	assert.Contains(t, joined, "invoices")
	assert.Contains(t, joined, "overdue")
	assert.Contains(t, joined, "payments")
}

func TestValidateConjunction(t *testing.T) {
	svc := newService(t)

	// 等价度满分但长度比警告触发，合取判据仍然判不等价
	original := "administrator dashboard"
	translated := original + strings.Repeat(" and many additional clarifying words about the behavior", 3)

	validation, err := svc.ValidateTranslation(context.Background(), original, translated,
		format.NaturalLanguage, format.NaturalLanguage)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, validation.Equivalence, 0.7)
	assert.NotEmpty(t, validation.Warnings)
	assert.False(t, validation.IsValid)
}

func TestValidateHeuristicIdenticalText(t *testing.T) {
	svc := newService(t)

	validation, err := svc.ValidateTranslation(context.Background(), scenarioText, scenarioText,
		format.BehavioralScenario, format.BehavioralScenario)
	require.NoError(t, err)

	assert.Equal(t, 1.0, validation.Equivalence)
	assert.Empty(t, validation.Warnings)
	assert.True(t, validation.IsValid)
}

func TestValidateNeutralBaseline(t *testing.T) {
	// 原文没有关键词时等价度取中性基线 0.5
	svc := newService(t)

	validation, err := svc.ValidateTranslation(context.Background(), "a b c", "it is so",
		format.NaturalLanguage, format.NaturalLanguage)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, validation.Equivalence, 1e-9)
	assert.False(t, validation.IsValid)
}

func TestValidateScenarioSuggestion(t *testing.T) {
	svc := newService(t)

	validation, err := svc.ValidateTranslation(context.Background(),
		scenarioText, "When they access the users endpoint access is granted with role admin",
		format.BehavioralScenario, format.BehavioralScenario)
	require.NoError(t, err)

	joined := strings.Join(validation.Suggestions, "\n")
	assert.Contains(t, joined, "Given")
}

func TestValidateFuzzySuggestion(t *testing.T) {
	svc := newService(t)

	validation, err := svc.ValidateTranslation(context.Background(),
		"the administrator dashboard works", "the administrator dashboards are fine",
		format.NaturalLanguage, format.NaturalLanguage)
	require.NoError(t, err)

	joined := strings.Join(validation.Suggestions, "\n")
	assert.Contains(t, joined, "dashboards")
}

func TestValidateLLMPath(t *testing.T) {
	mock := itest.NewMockLLMClient("---EQUIVALENCE---\n0.92\n---DIFFERENCES---\n---SUGGESTIONS---\n")
	svc := newService(t, translation.WithLLMClient(mock))

	validation, err := svc.ValidateTranslation(context.Background(), "original text here", "translated text here",
		format.BehavioralScenario, format.NaturalLanguage)
	require.NoError(t, err)

	assert.InDelta(t, 0.92, validation.Equivalence, 1e-9)
	assert.True(t, validation.IsValid)
	assert.Equal(t, 1, mock.CallCount())
}

func TestValidateLLMEquivalenceClamped(t *testing.T) {
	mock := itest.NewMockLLMClient("---EQUIVALENCE---\n7.5\n---DIFFERENCES---\n---SUGGESTIONS---\n")
	svc := newService(t, translation.WithLLMClient(mock))

	validation, err := svc.ValidateTranslation(context.Background(), "original", "translated",
		format.BehavioralScenario, format.NaturalLanguage)
	require.NoError(t, err)

	assert.Equal(t, 1.0, validation.Equivalence)
}

func TestValidateFallsBackOnAdapterError(t *testing.T) {
	mock := itest.NewMockLLMClient("")
	mock.Err = errors.New("timeout")
	svc := newService(t, translation.WithLLMClient(mock))

	validation, err := svc.ValidateTranslation(context.Background(), scenarioText, scenarioText,
		format.BehavioralScenario, format.BehavioralScenario)
	require.NoError(t, err)

	// 回退到启发式评估：相同文本完全等价
	assert.Equal(t, 1.0, validation.Equivalence)
	assert.True(t, validation.IsValid)
}

func TestValidateFallsBackOnUnparsableReply(t *testing.T) {
	mock := itest.NewMockLLMClient("no sections in this reply")
	svc := newService(t, translation.WithLLMClient(mock))

	validation, err := svc.ValidateTranslation(context.Background(), scenarioText, scenarioText,
		format.BehavioralScenario, format.BehavioralScenario)
	require.NoError(t, err)

	assert.Equal(t, 1.0, validation.Equivalence)
	assert.True(t, validation.IsValid)
}

func TestValidateInvalidFormat(t *testing.T) {
	svc := newService(t)

	_, err := svc.ValidateTranslation(context.Background(), "a", "b",
		format.Format("nope"), format.NaturalLanguage)
	require.Error(t, err)
	assert.True(t, errors.Is(err, translation.ErrInvalidFormat))
}
