package models

// Preferences is the persisted user configuration. It is always stored and
// loaded as a whole.
type Preferences struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	APIKey string `json:"apiKey"`
}

// PromptPreset is a built-in prompt the settings screen offers as a starting point.
type PromptPreset struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}
