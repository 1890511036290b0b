package session_fx

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"tripforge/internal/repositories"
)

// Sessions idle out after this long unless SESSION_TTL_MINUTES overrides it.
const defaultSessionTTL = 45 * time.Minute

var Module = fx.Options(
	fx.Provide(provideSessionRepo),
	fx.Invoke(startSessionJanitor),
)

func provideSessionRepo() repositories.TripSessionRepository {
	ttl := defaultSessionTTL
	if raw := os.Getenv("SESSION_TTL_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			ttl = time.Duration(minutes) * time.Minute
		} else {
			log.Printf("Ignoring invalid SESSION_TTL_MINUTES %q", raw)
		}
	}

	return repositories.NewTripSessionRepository(ttl)
}

func startSessionJanitor(lc fx.Lifecycle, sessions repositories.TripSessionRepository) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(time.Minute)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if removed := sessions.Sweep(); removed > 0 {
							log.Printf("Expired %d idle trip session(s)", removed)
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})
}
