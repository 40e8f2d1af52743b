package dto

// PodcastDTO is returned by the podcast generation endpoint. Status is
// "pending" right after a synthesis task is started (the URL becomes valid
// once the provider finishes) and "ready" when a previously generated URL
// is served again.
type PodcastDTO struct {
	PodcastURL string `json:"podcastUrl"`
	Status     string `json:"status"`
}

type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
}

type TranslateDTO struct {
	TranslatedText string `json:"translatedText"`
}

type EnhanceRequest struct {
	TextToEnhance string `json:"textToEnhance"`
	EnhanceType   string `json:"enhanceType"`
}

type EnhanceDTO struct {
	EnhancedText string `json:"enhancedText"`
}

// MessageDTO is a plain confirmation body, e.g. after a delete.
type MessageDTO struct {
	Message string `json:"message"`
}
