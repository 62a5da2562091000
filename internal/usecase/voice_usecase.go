package usecase

import (
	"context"

	"tidewise/internal/domain/entity"
)

// VoiceUsecase resolves and announces multilingual alert phrases.
type VoiceUsecase interface {
	// Phrase returns the phrase for key in the best match for lang, which may be
	// a language tag or an Accept-Language header.
	Phrase(ctx context.Context, key, lang string) (*entity.VoicePhrase, error)

	// Announce resolves the phrase and hands it to the announcer.
	Announce(ctx context.Context, key, lang string) (*entity.VoicePhrase, error)

	// AnnounceText hands free text to the announcer using the locale for lang.
	AnnounceText(ctx context.Context, lang, text string) error
}
