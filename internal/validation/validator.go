package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/go-playground/validator/v10"

	"github.com/mosberg/alchemy/internal/domain"
	"github.com/mosberg/alchemy/internal/identifier"
	"github.com/mosberg/alchemy/internal/schema"
)

// EffectRegistry reports which status effects the host knows about
type EffectRegistry interface {
	Has(id identifier.ID) bool
	IDs() []identifier.ID
}

// Validator checks parsed documents for presence, ranges and effect references.
// Checks run in a fixed order and the first failure is reported.
type Validator struct {
	validate *validator.Validate
	effects  EffectRegistry
}

// NewValidator creates a validator. A nil registry disables effect
// reference checks.
func NewValidator(effects EffectRegistry) *Validator {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v, effects: effects}
}

// ValidateBeverage checks a parsed beverage
func (v *Validator) ValidateBeverage(p *schema.ParsedBeverage) error {
	fail := v.failer(domain.KindBeverage, p.Path)

	if p.Raw.ID == nil {
		return fail(schema.FieldID, domain.ErrMissingField, ErrMsgFieldRequired)
	}
	if p.Raw.Container == nil {
		return fail(schema.FieldContainer, domain.ErrMissingField, ErrMsgFieldRequired)
	}
	for i := range p.Raw.Effects {
		if p.Raw.Effects[i].Effect == nil {
			return fail(schema.EffectField(i, schema.FieldEffect), domain.ErrMissingField, ErrMsgFieldRequired)
		}
	}
	if len(p.Definition.Effects) == 0 {
		return fail(schema.FieldEffects, domain.ErrEmptyEffectList, ErrMsgNoEffects)
	}

	if err := v.checkRanges(fail, p.Definition); err != nil {
		return err
	}

	if v.effects == nil {
		return nil
	}
	for i, entry := range p.Definition.Effects {
		if v.effects.Has(entry.Effect) {
			continue
		}
		detail := fmt.Sprintf(ErrFmtUnknownEffect, entry.Effect)
		if suggestion, ok := closest(entry.Effect, v.effects.IDs()); ok {
			detail = fmt.Sprintf(ErrFmtDidYouMean, detail, suggestion)
		}
		return fail(schema.EffectField(i, schema.FieldEffect), domain.ErrUnknownReference, detail)
	}
	return nil
}

// ValidateContainer checks a parsed container
func (v *Validator) ValidateContainer(p *schema.ParsedContainer) error {
	fail := v.failer(domain.KindContainer, p.Path)

	if p.Raw.ID == nil {
		return fail(schema.FieldID, domain.ErrMissingField, ErrMsgFieldRequired)
	}
	return v.checkRanges(fail, p.Definition)
}

// ValidateEquipment checks a parsed equipment definition
func (v *Validator) ValidateEquipment(p *schema.ParsedEquipment) error {
	fail := v.failer(domain.KindEquipment, p.Path)

	if p.Raw.ID == nil {
		return fail(schema.FieldID, domain.ErrMissingField, ErrMsgFieldRequired)
	}
	return v.checkRanges(fail, p.Definition)
}

type failFunc func(field string, sentinel error, detail string) error

func (v *Validator) failer(kind domain.Kind, path string) failFunc {
	return func(field string, sentinel error, detail string) error {
		return &domain.DocumentError{
			Path:  path,
			Kind:  kind,
			Field: field,
			Err:   fmt.Errorf("%w: %s", sentinel, detail),
		}
	}
}

// checkRanges runs the struct tag rules and reports the first violation
func (v *Validator) checkRanges(fail failFunc, def interface{}) error {
	err := v.validate.Struct(def)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fail("", domain.ErrInvalidRange, err.Error())
	}

	fe := validationErrors[0]
	detail := fmt.Sprintf(ErrFmtRangeViolation, fe.Value(), fe.Tag())
	if fe.Param() != "" {
		detail = fmt.Sprintf(ErrFmtRangeViolationArg, fe.Value(), fe.Tag(), fe.Param())
	}
	return fail(stripRoot(fe.Namespace()), domain.ErrInvalidRange, detail)
}

// stripRoot drops the struct name from a namespace, Beverage.stats.x -> stats.x
func stripRoot(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// closest returns the registered id nearest to id when it is within the
// allowed edit distance
func closest(id identifier.ID, candidates []identifier.ID) (identifier.ID, bool) {
	target := id.String()
	sorted := append([]identifier.ID(nil), candidates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].String() < sorted[j].String() })

	var best identifier.ID
	bestDist := -1
	for _, cand := range sorted {
		dist := levenshtein.ComputeDistance(target, cand.String())
		if dist > suggestionLimit(len(cand.Path)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best, bestDist >= 0
}

func suggestionLimit(length int) int {
	switch {
	case length <= SuggestShortPath:
		return SuggestShortLimit
	case length <= SuggestMediumPath:
		return SuggestMediumLimit
	default:
		return SuggestLongLimit
	}
}
