package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/JWeinelt/codelib/pkg/gui"
	"github.com/JWeinelt/codelib/pkg/item"
	"github.com/go-playground/validator/v10"
)

var ErrInvalidMenu = errors.New("invalid menu")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("material", validateMaterial)
	_ = v.RegisterValidation("slotrange", validateSlotRange)
	_ = v.RegisterValidation("invtype", validateInvType)
	_ = v.RegisterValidation("itemflag", validateItemFlag)
	_ = v.RegisterValidation("effect", validateEffect)
	_ = v.RegisterValidation("instrument", validateInstrument)
	_ = v.RegisterValidation("trimmaterial", validateTrimMaterial)
	_ = v.RegisterValidation("trimpattern", validateTrimPattern)
	return v
}

func validateMaterial(fl validator.FieldLevel) bool {
	return item.ParseMaterial(fl.Field().String()).Known()
}

func validateSlotRange(fl validator.FieldLevel) bool {
	_, _, err := parseRange(fl.Field().String())
	return err == nil
}

func validateInvType(fl validator.FieldLevel) bool {
	t, err := gui.ParseType(fl.Field().String())
	return err == nil && t.Viewable()
}

func validateItemFlag(fl validator.FieldLevel) bool {
	_, err := item.ParseFlag(fl.Field().String())
	return err == nil
}

func validateEffect(fl validator.FieldLevel) bool {
	return item.EffectType(fl.Field().String()).Known()
}

func validateInstrument(fl validator.FieldLevel) bool {
	return item.Instrument(fl.Field().String()).Known()
}

func validateTrimMaterial(fl validator.FieldLevel) bool {
	return item.TrimMaterial(fl.Field().String()).Known()
}

func validateTrimPattern(fl validator.FieldLevel) bool {
	return item.TrimPattern(fl.Field().String()).Known()
}

// parseRange reads "first-last" (inclusive) or a single slot.
func parseRange(s string) (first, last int, err error) {
	lo, hi, found := strings.Cut(strings.TrimSpace(s), "-")
	if first, err = strconv.Atoi(strings.TrimSpace(lo)); err != nil {
		return 0, 0, fmt.Errorf("invalid slot range %q", s)
	}
	last = first
	if found {
		if last, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
			return 0, 0, fmt.Errorf("invalid slot range %q", s)
		}
	}
	if first < 0 || last < first || last >= gui.MaxSlots {
		return 0, 0, fmt.Errorf("invalid slot range %q", s)
	}
	return first, last, nil
}

// Validate checks field constraints, that the menu names either a row count
// or an inventory type, and that no two items share a slot.
func (m *Menu) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMenu, formatValidationError(err))
	}
	switch {
	case m.Rows == 0 && m.Type == "":
		return fmt.Errorf("%w: rows or type is required", ErrInvalidMenu)
	case m.Rows != 0 && m.Type != "":
		if t, err := gui.ParseType(m.Type); err != nil || t != gui.TypeChest {
			return fmt.Errorf("%w: rows only apply to chests, got type %s", ErrInvalidMenu, m.Type)
		}
	}
	if m.Border != "" && m.Rows == 0 {
		return fmt.Errorf("%w: border needs rows", ErrInvalidMenu)
	}

	seen := make(map[int]int, len(m.Items))
	for i, it := range m.Items {
		if prev, ok := seen[*it.Slot]; ok {
			return fmt.Errorf("%w: Items[%d] and Items[%d] both use slot %d", ErrInvalidMenu, prev, i, *it.Slot)
		}
		seen[*it.Slot] = i
	}
	return nil
}

func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.TrimPrefix(e.Namespace(), "Menu.")
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "material":
			msgs = append(msgs, fmt.Sprintf("%s: unknown material %q", field, e.Value()))
		case "invtype":
			msgs = append(msgs, fmt.Sprintf("%s: %q is not a viewable inventory type", field, e.Value()))
		case "effect", "instrument", "trimmaterial", "trimpattern":
			msgs = append(msgs, fmt.Sprintf("%s: unknown %s %q", field, e.Tag(), e.Value()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s must be %s %s", field, bound(e.Tag()), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, e.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

func bound(tag string) string {
	if tag == "min" {
		return "at least"
	}
	return "at most"
}
