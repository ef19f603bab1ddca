package rate

import (
	"time"

	"byrates/internal/adapters"
)

// Registry owns the process-wide rate sources. Their caches start empty and
// are filled lazily by the first read; nothing needs closing.
type Registry struct {
	Official *OfficialRateSource
	Crypto   *CryptoRateSource
}

type RegistryConfig struct {
	TTL        time.Duration
	QuoteAsset string
}

func NewRegistry(official adapters.OfficialRateClient, crypto adapters.CryptoPriceClient, cfg RegistryConfig) *Registry {
	officialSrc := NewOfficialRateSource(official, cfg.TTL)
	return &Registry{
		Official: officialSrc,
		Crypto:   NewCryptoRateSource(crypto, officialSrc, cfg.QuoteAsset, cfg.TTL),
	}
}
