package effects

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/mosberg/alchemy/internal/identifier"
)

// VanillaEffects are the status effects every host provides
var VanillaEffects = []string{
	"speed", "slowness", "haste", "mining_fatigue", "strength",
	"instant_health", "instant_damage", "jump_boost", "nausea", "regeneration",
	"resistance", "fire_resistance", "water_breathing", "invisibility", "blindness",
	"night_vision", "hunger", "weakness", "poison", "wither",
	"health_boost", "absorption", "saturation", "glowing", "levitation",
	"luck", "unluck", "slow_falling", "conduit_power", "dolphins_grace",
	"bad_omen", "hero_of_the_village", "darkness", "trial_omen", "raid_omen",
	"wind_charged", "weaving", "oozing", "infested",
}

// Registry is a set of known status effect ids. It is immutable once built.
type Registry struct {
	ids map[identifier.ID]struct{}
}

// NewRegistry creates a registry holding ids
func NewRegistry(ids ...identifier.ID) *Registry {
	r := &Registry{ids: make(map[identifier.ID]struct{}, len(ids))}
	for _, id := range ids {
		r.ids[id] = struct{}{}
	}
	return r
}

// Vanilla returns a registry of the host's built-in effects
func Vanilla() *Registry {
	ids := make([]identifier.ID, 0, len(VanillaEffects))
	for _, path := range VanillaEffects {
		ids = append(ids, identifier.New(identifier.DefaultNamespace, path))
	}
	return NewRegistry(ids...)
}

// LoadRegistryFile reads a JSON array of effect ids. Bare paths get the
// default namespace.
func LoadRegistryFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtReadRegistry, path, err)
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf(ErrFmtDecodeRegistry, path, err)
	}

	ids := make([]identifier.ID, 0, len(raw))
	for i, s := range raw {
		id, err := identifier.Parse(s)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtRegistryEntry, path, i, err)
		}
		ids = append(ids, id)
	}
	return NewRegistry(ids...), nil
}

// With returns a new registry holding r's ids plus the others'
func (r *Registry) With(others ...*Registry) *Registry {
	merged := NewRegistry(r.IDs()...)
	for _, o := range others {
		for id := range o.ids {
			merged.ids[id] = struct{}{}
		}
	}
	return merged
}

// Has reports whether id is registered
func (r *Registry) Has(id identifier.ID) bool {
	_, ok := r.ids[id]
	return ok
}

// IDs returns every registered id, sorted
func (r *Registry) IDs() []identifier.ID {
	out := make([]identifier.ID, 0, len(r.ids))
	for id := range r.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Len returns the number of registered ids
func (r *Registry) Len() int {
	return len(r.ids)
}
