package circuitbreaker

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
	"github.com/villagef/splot-ani-server/pkg/errs"
)

// CreateCircuitBreaker guards document store calls. Lookups that find nothing
// and calls abandoned by their caller are not store failures.
func CreateCircuitBreaker(name string) *gobreaker.CircuitBreaker[any] {
	return gobreaker.NewCircuitBreaker[any](newSettings(name))
}

// newSettings clears the closed-state counts every interval so the failure
// ratio follows recent traffic.
func newSettings(name string) gobreaker.Settings {
	var st gobreaker.Settings
	st.Name = name
	st.Interval = 60 * time.Second
	st.Timeout = 10 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	st.IsSuccessful = func(err error) bool {
		return err == nil || errs.IsNotFound(err) || errors.Is(err, context.Canceled)
	}
	st.OnStateChange = func(name string, from gobreaker.State, to gobreaker.State) {
		log.Warn().Str("component", "CircuitBreaker").Str("breaker", name).
			Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
	}

	return st
}
