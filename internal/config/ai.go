package config

import "os"

// AI provider names
const (
	ProviderGemini = "gemini"
	ProviderAzure  = "azure"
)

// AIConfig holds all generation-related configuration
type AIConfig struct {
	Provider string `json:"provider"`
	APIKey   string `json:"-"` // Never serialize
	BaseURL  string `json:"baseUrl"`
	Model    string `json:"model"`

	// Azure OpenAI settings, used when Provider is "azure"
	AzureEndpoint   string `json:"azureEndpoint"`
	AzureDeployment string `json:"azureDeployment"`

	TimeoutMS int `json:"timeoutMs"`
}

// DefaultAIConfig reads the generation configuration from the environment
func DefaultAIConfig() *AIConfig {
	cfg := &AIConfig{
		Provider:        getEnvOrDefault("AI_PROVIDER", ProviderGemini),
		APIKey:          os.Getenv("GEMINI_API_KEY"),
		BaseURL:         getEnvOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
		Model:           getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		AzureEndpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureDeployment: getEnvOrDefault("AZURE_OPENAI_DEPLOYMENT", "gpt-4o-mini"),
		TimeoutMS:       10000, // 10 second default timeout
	}
	if cfg.Provider == ProviderAzure {
		cfg.APIKey = os.Getenv("AZURE_OPENAI_API_KEY")
	}
	return cfg
}

// IsEnabled returns true if a remote generation capability is configured
func (c *AIConfig) IsEnabled() bool {
	if c.Provider == ProviderAzure {
		return c.APIKey != "" && c.AzureEndpoint != ""
	}
	return c.APIKey != ""
}

// ModelEndpoint returns the full Gemini endpoint for the configured model
func (c *AIConfig) ModelEndpoint() string {
	return c.BaseURL + "/" + c.Model + ":generateContent"
}

// HumeConfig holds emotion-provider configuration
type HumeConfig struct {
	APIKey string `json:"-"`
}

// DefaultHumeConfig reads the emotion-provider configuration from the environment
func DefaultHumeConfig() *HumeConfig {
	return &HumeConfig{APIKey: os.Getenv("HUME_API_KEY")}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
