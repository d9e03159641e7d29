package catalog

import (
	"github.com/mosberg/alchemy/internal/domain"
	"github.com/mosberg/alchemy/internal/identifier"
)

// Catalog is the immutable result of a load. It is safe to share between
// goroutines; nothing writes to it after Build.
type Catalog struct {
	beverages  partition[domain.Beverage]
	containers partition[domain.Container]
	equipment  partition[domain.Equipment]
}

// Counts reports the number of distinct ids per kind
type Counts struct {
	Beverages  int
	Containers int
	Equipment  int
}

// Total returns the number of definitions in the catalog
func (c Counts) Total() int {
	return c.Beverages + c.Containers + c.Equipment
}

// Of returns the count for one kind
func (c Counts) Of(kind domain.Kind) int {
	switch kind {
	case domain.KindBeverage:
		return c.Beverages
	case domain.KindContainer:
		return c.Containers
	case domain.KindEquipment:
		return c.Equipment
	default:
		return 0
	}
}

// Empty returns a catalog with no definitions
func Empty() *Catalog {
	return NewBuilder().Build()
}

// Beverage looks up a beverage by id
func (c *Catalog) Beverage(id identifier.ID) (domain.Beverage, bool) {
	def, ok := c.beverages.get(id)
	if !ok {
		return domain.Beverage{}, false
	}
	return cloneBeverage(def), true
}

// Container looks up a container by id
func (c *Catalog) Container(id identifier.ID) (domain.Container, bool) {
	return c.containers.get(id)
}

// Equipment looks up an equipment definition by id
func (c *Catalog) Equipment(id identifier.ID) (domain.Equipment, bool) {
	return c.equipment.get(id)
}

// Beverages returns every beverage in load order
func (c *Catalog) Beverages() []domain.Beverage {
	out := c.beverages.list()
	for i := range out {
		out[i] = cloneBeverage(out[i])
	}
	return out
}

// EnabledBeverages returns the beverages whose config leaves them enabled
func (c *Catalog) EnabledBeverages() []domain.Beverage {
	all := c.Beverages()
	out := all[:0]
	for _, def := range all {
		if def.Config.Enabled {
			out = append(out, def)
		}
	}
	return out
}

// Containers returns every container in load order
func (c *Catalog) Containers() []domain.Container {
	return c.containers.list()
}

// AllEquipment returns every equipment definition in load order
func (c *Catalog) AllEquipment() []domain.Equipment {
	return c.equipment.list()
}

// Counts returns the number of distinct ids per kind
func (c *Catalog) Counts() Counts {
	return Counts{
		Beverages:  len(c.beverages.order),
		Containers: len(c.containers.order),
		Equipment:  len(c.equipment.order),
	}
}

// partition is one kind's id map plus first-occurrence order
type partition[T any] struct {
	byID  map[identifier.ID]T
	order []identifier.ID
}

func newPartition[T any]() partition[T] {
	return partition[T]{byID: make(map[identifier.ID]T)}
}

func (p *partition[T]) put(id identifier.ID, def T) {
	if _, exists := p.byID[id]; !exists {
		p.order = append(p.order, id)
	}
	p.byID[id] = def
}

func (p *partition[T]) get(id identifier.ID) (T, bool) {
	def, ok := p.byID[id]
	return def, ok
}

func (p *partition[T]) list() []T {
	out := make([]T, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.byID[id])
	}
	return out
}

// cloneBeverage detaches the slices and pointers a caller could mutate
func cloneBeverage(def domain.Beverage) domain.Beverage {
	if def.Effects != nil {
		def.Effects = append([]domain.EffectEntry(nil), def.Effects...)
	}
	if def.Config.OverrideStackSize != nil {
		v := *def.Config.OverrideStackSize
		def.Config.OverrideStackSize = &v
	}
	if def.Config.OverrideLootWeight != nil {
		v := *def.Config.OverrideLootWeight
		def.Config.OverrideLootWeight = &v
	}
	return def
}
