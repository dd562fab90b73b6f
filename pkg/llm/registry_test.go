package llm_test

import (
	"testing"

	itest "github.com/nerdneilsfield/validator-format-agent/internal/test"
	"github.com/nerdneilsfield/validator-format-agent/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := llm.NewRegistry()
	client := itest.NewMockLLMClient("ok")

	require.NoError(t, registry.Register("mock", client))

	got, err := registry.Get("mock")
	require.NoError(t, err)
	assert.Equal(t, client, got)
}

func TestRegistryRejectsDuplicateName(t *testing.T) {
	registry := llm.NewRegistry()
	require.NoError(t, registry.Register("mock", itest.NewMockLLMClient("a")))

	err := registry.Register("mock", itest.NewMockLLMClient("b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistryGetMissing(t *testing.T) {
	_, err := llm.NewRegistry().Get("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRegistryListAndRemove(t *testing.T) {
	registry := llm.NewRegistry()
	require.NoError(t, registry.Register("a", itest.NewMockLLMClient("x")))
	require.NoError(t, registry.Register("b", itest.NewMockLLMClient("y")))

	assert.ElementsMatch(t, []string{"a", "b"}, registry.List())

	registry.Remove("a")
	assert.ElementsMatch(t, []string{"b"}, registry.List())

	_, err := registry.Get("a")
	assert.Error(t, err)
}

func TestDefaultRegistry(t *testing.T) {
	client := itest.NewMockLLMClient("ok")
	require.NoError(t, llm.Register("default-mock", client))
	defer llm.DefaultRegistry.Remove("default-mock")

	got, err := llm.Get("default-mock")
	require.NoError(t, err)
	assert.Equal(t, client, got)
}
