// Package connectivity decides whether the shore uplink is available.
package connectivity

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"

	"tidewise/config"
	"tidewise/internal/domain/constants"
	"tidewise/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StaticProbe reports a fixed state. SetOnline flips it at runtime.
type StaticProbe struct {
	online atomic.Bool
}

// NewStaticProbe creates a probe that reports online until told otherwise.
func NewStaticProbe(online bool) *StaticProbe {
	p := &StaticProbe{}
	p.online.Store(online)

	return p
}

func (p *StaticProbe) Online(_ context.Context) bool {
	return p.online.Load()
}

// SetOnline changes the reported state.
func (p *StaticProbe) SetOnline(online bool) {
	p.online.Store(online)
}

// HTTPProbe is online when probeURL answers with any non-5xx status.
type HTTPProbe struct {
	probeURL   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPProbe creates a probe against cfg.ProbeURL.
func NewHTTPProbe(cfg *config.ConnectivityConfig, logger *slog.Logger) *HTTPProbe {
	return &HTTPProbe{
		probeURL: cfg.ProbeURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (p *HTTPProbe) Online(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.probeURL, nil)
	if err != nil {
		p.logger.Warn("Invalid connectivity probe request", slog.Any("error", err))

		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Debug("Uplink unreachable", slog.String("url", p.probeURL), slog.Any("error", err))

		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < http.StatusInternalServerError
}

// New selects the probe from connectivity.mode.
func New(cfg *config.Config, logger *slog.Logger) (service.ConnectivityProbe, error) {
	cc := cfg.Connectivity

	switch cc.Mode {
	case constants.ConnectivityModeStatic, "":
		return NewStaticProbe(cc.Online), nil
	case constants.ConnectivityModeHTTP:
		if cc.ProbeURL == "" {
			return nil, errors.New("connectivity.probeUrl is required in http mode")
		}

		return NewHTTPProbe(cc, logger), nil
	default:
		return nil, errors.Errorf("unknown connectivity mode: %s", cc.Mode)
	}
}

// Module provides the uplink probe.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
