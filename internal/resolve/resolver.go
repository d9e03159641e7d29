package resolve

import (
	"github.com/mosberg/alchemy/internal/catalog"
	"github.com/mosberg/alchemy/internal/domain"
	"github.com/mosberg/alchemy/internal/identifier"
)

// Resolver answers cross-kind questions about a built catalog.
// A missing container is a normal outcome, never an error.
type Resolver struct {
	catalog *catalog.Catalog
}

// NewResolver creates a resolver over c
func NewResolver(c *catalog.Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Container returns the container a beverage is served in
func (r *Resolver) Container(def domain.Beverage) (domain.Container, bool) {
	return r.catalog.Container(def.Container)
}

// ReturnItem returns the item handed back after drinking the beverage, when
// its container resolves and returns something
func (r *Resolver) ReturnItem(beverageID identifier.ID) (identifier.ID, bool) {
	def, ok := r.catalog.Beverage(beverageID)
	if !ok {
		return identifier.ID{}, false
	}
	container, ok := r.Container(def)
	if !ok || !container.Interaction.ReturnsContainer {
		return identifier.ID{}, false
	}
	return container.Interaction.ReturnItemID, true
}

// UseAction returns the use animation for a beverage, drink when its
// container is unknown
func (r *Resolver) UseAction(beverageID identifier.ID) domain.UseAction {
	def, ok := r.catalog.Beverage(beverageID)
	if !ok {
		return domain.UseActionDrink
	}
	container, ok := r.Container(def)
	if !ok {
		return domain.UseActionDrink
	}
	return container.Interaction.UseAction
}

// Unresolved lists, in load order, the beverages whose container is not in the catalog
func (r *Resolver) Unresolved() []domain.Beverage {
	var out []domain.Beverage
	for _, def := range r.catalog.Beverages() {
		if _, ok := r.Container(def); !ok {
			out = append(out, def)
		}
	}
	return out
}
