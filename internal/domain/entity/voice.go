package entity

// VoicePhrase is a localized alert ready for text-to-speech.
type VoicePhrase struct {
	Key      string `json:"key"`
	Language string `json:"language"` // Matched language, e.g. "te".
	Locale   string `json:"locale"`   // TTS locale, e.g. "te-IN".
	Text     string `json:"text"`
}

// Voice phrase keys.
const (
	PhraseDangerZone   = "danger_zone"
	PhraseSOSNearby    = "sos_nearby"
	PhraseSOSReceived  = "sos_received"
	PhraseAuthoritySOS = "authority_sos"
)
