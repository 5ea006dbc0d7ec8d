package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nhl-results-service/internal/providers"
)

type namedProvider interface {
	Name() string
}

// normalizeProviderName prefers the provider's own name so an unknown configured
// value that fell back to the default is still labeled correctly in metrics/logs.
func normalizeProviderName(raw string, provider providers.ScoresProvider) string {
	if named, ok := provider.(namedProvider); ok {
		return named.Name()
	}
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
