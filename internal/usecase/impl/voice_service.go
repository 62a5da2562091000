package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tidewise/internal/delivery/context"
	"tidewise/internal/domain/entity"
	domainerrors "tidewise/internal/domain/errors"
	"tidewise/internal/domain/service"
	"tidewise/internal/errors"
	"tidewise/internal/usecase"

	"go.uber.org/fx"
)

type voiceService struct {
	catalog   service.PhraseCatalog
	announcer service.Announcer
	logger    *slog.Logger
}

// VoiceServiceParams holds dependencies for VoiceService, injected by Fx.
type VoiceServiceParams struct {
	fx.In

	Catalog   service.PhraseCatalog
	Announcer service.Announcer
	Logger    *slog.Logger
}

// NewVoiceService creates the multilingual voice alert use case.
func NewVoiceService(params VoiceServiceParams) usecase.VoiceUsecase {
	return &voiceService{
		catalog:   params.Catalog,
		announcer: params.Announcer,
		logger:    params.Logger,
	}
}

func (srv *voiceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *voiceService) Phrase(_ context.Context, key, lang string) (*entity.VoicePhrase, error) {
	phrase, ok := srv.catalog.Lookup(key, lang)
	if !ok {
		return nil, domainerrors.ErrVoicePhraseNotFound.WithDetails("key: " + key)
	}

	return phrase, nil
}

func (srv *voiceService) Announce(ctx context.Context, key, lang string) (*entity.VoicePhrase, error) {
	phrase, err := srv.Phrase(ctx, key, lang)
	if err != nil {
		return nil, err
	}

	if err := srv.announcer.Announce(ctx, phrase.Locale, phrase.Text); err != nil {
		return nil, errors.Wrap(err, "failed to announce phrase")
	}
	srv.log(ctx).Debug("Voice alert announced", slog.String("key", key), slog.String("locale", phrase.Locale))

	return phrase, nil
}

func (srv *voiceService) AnnounceText(ctx context.Context, lang, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domainerrors.ErrValidationFailed.WithDetails("text is required")
	}

	if err := srv.announcer.Announce(ctx, srv.catalog.Locale(lang), text); err != nil {
		return errors.Wrap(err, "failed to announce text")
	}

	return nil
}
