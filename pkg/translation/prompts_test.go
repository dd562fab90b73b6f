package translation_test

import (
	"testing"

	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
	"github.com/nerdneilsfield/validator-format-agent/pkg/translation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptBuilderExtraInstructions(t *testing.T) {
	// 额外指令接在固定规则之后继续编号
	pb := translation.NewPromptBuilder().
		AddInstruction("Keep step order unchanged").
		AddInstruction("Never invent domain terms")

	messages := pb.BuildTranslationMessages(scenarioText,
		format.BehavioralScenario, format.NaturalLanguage)
	require.Len(t, messages, 2)

	prompt := messages[1].Content
	assert.Contains(t, prompt, "3. Keep domain terms")
	assert.Contains(t, prompt, "4. Keep step order unchanged")
	assert.Contains(t, prompt, "5. Never invent domain terms")
	assert.Contains(t, prompt, "---TRANSLATION---")
	assert.Contains(t, prompt, scenarioText)
}

func TestPromptBuilderWithoutExtraInstructions(t *testing.T) {
	messages := translation.NewPromptBuilder().BuildTranslationMessages("some prose",
		format.NaturalLanguage, format.StructuredData)
	require.Len(t, messages, 2)

	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, "user", messages[1].Role)
	assert.NotContains(t, messages[1].Content, "4.")
}
