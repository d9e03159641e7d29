package schema

import "github.com/mosberg/alchemy/internal/domain"

// Beverage defaults
const (
	DefaultCategory          = "beer"
	DefaultStyle             = ""
	DefaultRarity            = domain.RarityCommon
	DefaultBeverageStackSize = 16
	DefaultHunger            = 1
	DefaultSaturation        = 0.0
	DefaultAlcoholByVolume   = 0.0
	DefaultStrength          = 0.0
	DefaultIntoxicationValue = 0.0
	DefaultIntoxicationDecay = 0.0
	DefaultBeverageEnabled   = true
	DefaultDisableFailures   = false
	DefaultDisableSpoilage   = false
)

// Effect entry defaults
const (
	DefaultEffectDuration  = 200 // ticks
	DefaultEffectAmplifier = 0
	DefaultEffectChance    = 1.0
	DefaultShowParticles   = true
	DefaultShowIcon        = true
	DefaultAmbient         = false
)

// Container defaults
const (
	DefaultContainerKind       = "can"
	DefaultContainerStackSize  = 16
	DefaultBreakable           = true
	DefaultMaxDamage           = 0
	DefaultFireproof           = false
	DefaultExplosionResistance = "low"
	DefaultUseAction           = string(domain.UseActionDrink)
	DefaultReturnsContainer    = true
	DefaultConsumeOnUse        = false
	DefaultConsumeOnDrink      = true
	DefaultStartsSealed        = true
	DefaultReopenable          = true
	DefaultSealQuality         = "good"
	DefaultSyncToClient        = true
	DefaultDropsKeepContents   = true
)

// Equipment defaults
const (
	DefaultEquipmentStackSize = 1
	DefaultNameKey            = ""
	DefaultMaterial           = ""
	DefaultFunction           = ""
	DefaultPlacementKind      = ""
)

// valueOr returns *p, or def when the field was absent
func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// copyPtr detaches optional values from the raw document
func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
