package time

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chillerplant/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// SiteClock is a domain.CurrentTimeProvider returning the wall clock in the plant timezone.
type SiteClock struct {
	loc *time.Location
}

// NewSiteClock creates a SiteClock for the given location.
func NewSiteClock(loc *time.Location) SiteClock {
	return SiteClock{loc: loc}
}

// Now returns the current time in the site location.
func (c SiteClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// InitSiteClock registers the SiteClock and the site *time.Location in the dependency container.
type InitSiteClock struct {
	Timezone string `config:"SITE_TIMEZONE" default:"Asia/Bangkok"`
}

// Initialize loads the site timezone and registers the clock.
func (i InitSiteClock) Initialize(ctx context.Context) (context.Context, error) {
	loc, err := time.LoadLocation(i.Timezone)
	if err != nil {
		return ctx, fmt.Errorf("failed to load site timezone %q: %w", i.Timezone, err)
	}
	depend.Register(loc)
	depend.Register[domain.CurrentTimeProvider](NewSiteClock(loc))
	return ctx, nil
}
