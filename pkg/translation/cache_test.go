package translation

import (
	"testing"

	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheBasicOperations(t *testing.T) {
	cache := NewMemoryCache()

	_, found := cache.Get("missing")
	assert.False(t, found)

	entry := &CachedResult{Result: &Result{Content: "Given a user"}}
	require.NoError(t, cache.Set("k1", entry))

	got, found := cache.Get("k1")
	require.True(t, found)
	assert.Equal(t, "Given a user", got.Result.Content)

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Size)

	require.NoError(t, cache.Clear())
	_, found = cache.Get("k1")
	assert.False(t, found)
}

func TestCacheKeyDistinguishesInputs(t *testing.T) {
	base := cacheKey("content", format.NaturalLanguage, format.BehavioralScenario, "gpt-4o-mini")

	assert.NotEqual(t, base, cacheKey("other", format.NaturalLanguage, format.BehavioralScenario, "gpt-4o-mini"))
	assert.NotEqual(t, base, cacheKey("content", format.BehavioralScenario, format.NaturalLanguage, "gpt-4o-mini"))
	assert.NotEqual(t, base, cacheKey("content", format.NaturalLanguage, format.BehavioralScenario, "gpt-4o"))
	assert.Equal(t, base, cacheKey("content", format.NaturalLanguage, format.BehavioralScenario, "gpt-4o-mini"))
}

func TestBuildFormatMetadata(t *testing.T) {
	meta := buildFormatMetadata("Given a user\nWhen they log in\nThen access is granted", format.BehavioralScenario)
	require.NotNil(t, meta.ScenarioStepCount)
	assert.Equal(t, 3, *meta.ScenarioStepCount)
	assert.Nil(t, meta.ProseSentenceCount)

	meta = buildFormatMetadata("First sentence. Second sentence.", format.NaturalLanguage)
	require.NotNil(t, meta.ProseSentenceCount)
	assert.Equal(t, 2, *meta.ProseSentenceCount)

	meta = buildFormatMetadata("func TestX(t *testing.T) {\n\tassert.True(t, true)\n}", format.ExecutableCode)
	require.NotNil(t, meta.CodeAssertionCount)
	assert.Equal(t, 1, *meta.CodeAssertionCount)

	meta = buildFormatMetadata(`{"given":["a"],"when":["b"],"then":["c","d"]}`, format.StructuredData)
	require.NotNil(t, meta.StructuredEntryCount)
	assert.Equal(t, 4, *meta.StructuredEntryCount)

	// 解析失败时对应字段保持空
	meta = buildFormatMetadata("not json", format.StructuredData)
	assert.Nil(t, meta.StructuredEntryCount)
}
