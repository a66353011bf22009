package probe

import (
	"context"

	"github.com/hamed0406/domainwatch/internal/domain"
)

// Checker performs a single probe of one endpoint.
type Checker interface {
	Check(ctx context.Context, ep domain.Endpoint) domain.Outcome
}
