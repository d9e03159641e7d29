package catalog

import "github.com/mosberg/alchemy/internal/domain"

// Builder accumulates definitions during a load. A later definition with the
// same id replaces the earlier one but keeps its original position.
// A Builder must not be used after Build.
type Builder struct {
	catalog *Catalog
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{catalog: &Catalog{
		beverages:  newPartition[domain.Beverage](),
		containers: newPartition[domain.Container](),
		equipment:  newPartition[domain.Equipment](),
	}}
}

// AddBeverage stores a beverage, replacing any earlier one with the same id
func (b *Builder) AddBeverage(def domain.Beverage) {
	b.mustBeOpen()
	b.catalog.beverages.put(def.ID, cloneBeverage(def))
}

// AddContainer stores a container, replacing any earlier one with the same id
func (b *Builder) AddContainer(def domain.Container) {
	b.mustBeOpen()
	b.catalog.containers.put(def.ID, def)
}

// AddEquipment stores an equipment definition, replacing any earlier one with the same id
func (b *Builder) AddEquipment(def domain.Equipment) {
	b.mustBeOpen()
	b.catalog.equipment.put(def.ID, def)
}

// Build finalizes the catalog
func (b *Builder) Build() *Catalog {
	b.mustBeOpen()
	c := b.catalog
	b.catalog = nil
	return c
}

func (b *Builder) mustBeOpen() {
	if b.catalog == nil {
		panic(ErrMsgBuilderClosed)
	}
}
