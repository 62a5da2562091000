package service

import "tidewise/internal/domain/entity"

// PhraseCatalog resolves localized alert phrases.
type PhraseCatalog interface {
	// Lookup returns the phrase for key in the best supported match for lang.
	// lang may be a BCP 47 tag or an Accept-Language header value. ok is false
	// when key is unknown.
	Lookup(key, lang string) (phrase *entity.VoicePhrase, ok bool)

	// Locale returns the TTS locale for lang, e.g. "te-IN".
	Locale(lang string) string
}
