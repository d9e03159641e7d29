package effects

import (
	"github.com/mosberg/alchemy/internal/domain"
	"github.com/mosberg/alchemy/internal/identifier"
	"github.com/mosberg/alchemy/internal/metrics"
)

// Resolved is a status effect ready for the host to apply
type Resolved struct {
	Effect        identifier.ID
	Duration      int // ticks
	Amplifier     int
	Ambient       bool
	ShowParticles bool
	ShowIcon      bool
}

// Sink receives every effect that fires
type Sink interface {
	Accept(Resolved)
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(Resolved)

// Accept calls f(r)
func (f SinkFunc) Accept(r Resolved) {
	f(r)
}

// Apply runs one trial per effect entry in declaration order and forwards
// each success to sink. It returns the number of effects that fired.
func Apply(def domain.Beverage, rng RandomSource, sink Sink) int {
	fired := 0
	for _, entry := range def.Effects {
		if !fires(entry.Chance, rng.Float64()) {
			continue
		}
		sink.Accept(resolvedOf(entry))
		metrics.EffectsApplied.WithLabelValues(entry.Effect.String()).Inc()
		fired++
	}
	return fired
}

// fires reports whether a draw in [0,1) succeeds against chance.
// Zero never fires, even for a draw of exactly zero.
func fires(chance, draw float64) bool {
	if chance <= 0 {
		return false
	}
	return draw <= chance
}

func resolvedOf(entry domain.EffectEntry) Resolved {
	return Resolved{
		Effect:        entry.Effect,
		Duration:      entry.Duration,
		Amplifier:     entry.Amplifier,
		Ambient:       entry.Ambient,
		ShowParticles: entry.ShowParticles,
		ShowIcon:      entry.ShowIcon,
	}
}
