package item

import (
	"errors"
	"fmt"
)

var (
	ErrIncompatibleMeta = errors.New("incompatible item metadata")
	ErrInvalidAmount    = errors.New("invalid item amount")
)

// Kind names a metadata capability.
type Kind string

const (
	KindSkull      Kind = "skull"
	KindArmor      Kind = "armor"
	KindLeather    Kind = "leather armor"
	KindPotion     Kind = "potion"
	KindInstrument Kind = "music instrument"
	KindBook       Kind = "book"
	KindAxolotl    Kind = "axolotl bucket"
)

// MetaError reports a metadata-specific call on a material that does not
// carry that metadata kind.
type MetaError struct {
	Op       string
	Material Material
	Kind     Kind
}

func (e *MetaError) Error() string {
	return fmt.Sprintf("item: %s: %s has no %s metadata", e.Op, e.Material, e.Kind)
}

func (e *MetaError) Unwrap() error { return ErrIncompatibleMeta }
