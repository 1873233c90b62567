package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	in := "```json\n{\"skills\": [\"Python\"]}\n```"
	assert.Equal(t, `{"skills": ["Python"]}`, CleanJSONBlock(in))
}

func TestCleanJSONBlock_GenericFenceWithLanguage(t *testing.T) {
	in := "```javascript\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(in))
}

func TestCleanJSONBlock_PlainJSON(t *testing.T) {
	in := `{"a": 1}`
	assert.Equal(t, in, CleanJSONBlock(in))
}

func TestConfigGetModel_FallbackChain(t *testing.T) {
	cfg := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{TierStandard: "m-standard"}}
	assert.Equal(t, "m-standard", cfg.GetModel(TierAdvanced))

	empty := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierLite))
}

func TestConfigWithModel_DoesNotMutateOriginal(t *testing.T) {
	cfg := DefaultConfig()
	override := cfg.WithModel(TierLite, "custom-model")

	assert.Equal(t, "custom-model", override.GetModel(TierLite))
	assert.NotEqual(t, "custom-model", cfg.GetModel(TierLite))
}

func TestBuildCleanupPrompt(t *testing.T) {
	prompt := BuildCleanupPrompt(ResumeCleanupSchema(), `{"skills":["python"]}`, "Jane Smith\nSKILLS\npython")

	assert.True(t, strings.Contains(prompt, "Return ONLY valid JSON"))
	assert.True(t, strings.Contains(prompt, `"skills"`))
	assert.True(t, strings.Contains(prompt, "Jane Smith"))
	assert.True(t, strings.Contains(prompt, `{"skills":["python"]}`))
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(t.Context(), DefaultConfig(), "")
	assert.Error(t, err)
}
