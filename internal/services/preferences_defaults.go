package services

import "opentranscribe/internal/models"

// DefaultModel is preselected when no preferences have been saved.
const DefaultModel = "gemini-2.5-flash-preview-09-2025"

var promptPresets = []models.PromptPreset{
	{
		ID:          "transcribe-autodetect",
		Label:       "Transcribe (Autodetect languages)",
		Description: "Produce a verbatim transcription of the audio with automatic language detection and a single clean paragraph result.",
		Prompt:      "You are an expert transcription engine. Produce a verbatim transcription of the supplied audio. Detect the language automatically and output the result as a single clean paragraph without speaker labels.",
	},
	{
		ID:          "transcribe-plan",
		Label:       "Transcribe and Plan (Add summary/action)",
		Description: "Transcribe the recording, then create a concise summary or action plan with 'Transcription' and 'Plan' sections.",
		Prompt:      "Transcribe the supplied audio verbatim. After the transcription, add a section titled 'Plan' with bullet points summarizing next actions or key takeaways.",
	},
	{
		ID:          "instruction-assistant",
		Label:       "Instruction Assistant (Follow spoken commands)",
		Description: "Follow the spoken request exactly, such as drafting responses or explaining topics; provide transcription only if requested.",
		Prompt:      "Listen carefully to the audio. Follow the spoken instructions precisely. If the speaker explicitly asks for a transcription, provide it; otherwise focus on delivering the requested output.",
	},
}

// PromptPresets returns a copy of the built-in presets.
func PromptPresets() []models.PromptPreset {
	out := make([]models.PromptPreset, len(promptPresets))
	copy(out, promptPresets)
	return out
}

// DefaultPreferences is what a first run starts from. The API key is left
// for the user to enter.
func DefaultPreferences() models.Preferences {
	return models.Preferences{
		Model:  DefaultModel,
		Prompt: promptPresets[0].Prompt,
	}
}
