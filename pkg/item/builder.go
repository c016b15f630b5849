package item

import (
	"errors"
	"fmt"
	"slices"

	"github.com/JWeinelt/codelib/pkg/metrics"
)

// Item is a stack of a material with its metadata.
type Item struct {
	Material Material
	Amount   int
	Meta     *Meta
}

// IsEmpty reports whether the item represents an empty slot.
func (it *Item) IsEmpty() bool {
	return it == nil || it.Amount <= 0 || it.Material.IsAir()
}

// Name returns the custom display name, falling back to the material name.
func (it *Item) Name() string {
	if it.Meta != nil {
		if name, ok := it.Meta.DisplayName(); ok {
			return name
		}
	}
	return it.Material.DisplayName()
}

// Builder configures a single item through chained calls. The first failing
// call is remembered; later calls are ignored and Build returns the error.
type Builder struct {
	item    *Item
	err     error
	counted bool
}

// New starts an item of the given material with amount 1 and the default
// metadata for that material.
func New(material Material) *Builder {
	material = ParseMaterial(string(material))
	return &Builder{item: &Item{
		Material: material,
		Amount:   1,
		Meta:     defaultMeta(material),
	}}
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error { return b.err }

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
		metrics.BuilderErrors.WithLabelValues(metrics.BuilderItem, reason(err)).Inc()
	}
	return b
}

func (b *Builder) mismatch(op string, kind Kind) *Builder {
	return b.fail(&MetaError{Op: op, Material: b.item.Material, Kind: kind})
}

// Amount sets the stack size.
func (b *Builder) Amount(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 1 {
		return b.fail(fmt.Errorf("%w: %d", ErrInvalidAmount, n))
	}
	b.item.Amount = n
	return b
}

// DisplayName sets the visible name, overwriting any previous one.
func (b *Builder) DisplayName(name string) *Builder {
	if b.err != nil {
		return b
	}
	b.item.Meta.SetDisplayName(name)
	return b
}

// Lore replaces the lore with the given lines.
func (b *Builder) Lore(lines ...string) *Builder {
	if b.err != nil {
		return b
	}
	b.item.Meta.Lore = slices.Clone(lines)
	return b
}

func (b *Builder) Flag(f Flag) *Builder {
	return b.Flags(f)
}

// Flags adds tooltip flags; flags already present are kept once.
func (b *Builder) Flags(flags ...Flag) *Builder {
	if b.err != nil {
		return b
	}
	for _, f := range flags {
		b.item.Meta.Flags |= FlagSet(f)
	}
	return b
}

// Enchant adds e at the given level. Levels above e.MaxLevel() are stored
// as-is.
func (b *Builder) Enchant(e Enchantment, level int) *Builder {
	if b.err != nil {
		return b
	}
	if b.item.Meta.Enchantments == nil {
		b.item.Meta.Enchantments = make(map[Enchantment]int)
	}
	b.item.Meta.Enchantments[e] = level
	return b
}

// Owner applies a player's skin. Only heads accept a profile; for any other
// material the call is ignored.
func (b *Builder) Owner(profile Profile) *Builder {
	if b.err != nil || b.item.Meta.Skull == nil {
		return b
	}
	b.item.Meta.Skull.Owner = &profile
	return b
}

// ArmorTrim applies a trim to armor.
func (b *Builder) ArmorTrim(trim ArmorTrim) *Builder {
	if b.err != nil {
		return b
	}
	if b.item.Meta.Armor == nil {
		return b.mismatch("ArmorTrim", KindArmor)
	}
	b.item.Meta.Armor.Trim = &trim
	return b
}

// Trim is ArmorTrim with the trim built from its parts.
func (b *Builder) Trim(material TrimMaterial, pattern TrimPattern) *Builder {
	return b.ArmorTrim(ArmorTrim{Material: material, Pattern: pattern})
}

func (b *Builder) LeatherColor(c Color) *Builder {
	if b.err != nil {
		return b
	}
	if b.item.Meta.Leather == nil {
		return b.mismatch("LeatherColor", KindLeather)
	}
	b.item.Meta.Leather.Color = &c
	return b
}

func (b *Builder) PotionColor(c Color) *Builder {
	if b.err != nil {
		return b
	}
	if b.item.Meta.Potion == nil {
		return b.mismatch("PotionColor", KindPotion)
	}
	b.item.Meta.Potion.Color = &c
	return b
}

// PotionEffect adds a custom effect. An existing effect of the same type is
// replaced.
func (b *Builder) PotionEffect(e PotionEffect) *Builder {
	return b.PotionEffects(e)
}

func (b *Builder) PotionEffects(effects ...PotionEffect) *Builder {
	if b.err != nil {
		return b
	}
	if b.item.Meta.Potion == nil {
		return b.mismatch("PotionEffects", KindPotion)
	}
	for _, e := range effects {
		b.item.Meta.Potion.addEffect(e)
	}
	return b
}

// MusicInstrument sets the sound of a goat horn.
func (b *Builder) MusicInstrument(i Instrument) *Builder {
	if b.err != nil {
		return b
	}
	if b.item.Meta.Instrument == nil {
		return b.mismatch("MusicInstrument", KindInstrument)
	}
	b.item.Meta.Instrument.Instrument = i
	return b
}

func (b *Builder) BookTitle(title string) *Builder {
	if b.err != nil {
		return b
	}
	if b.item.Meta.Book == nil {
		return b.mismatch("BookTitle", KindBook)
	}
	b.item.Meta.Book.Title = title
	return b
}

func (b *Builder) BookAuthor(author string) *Builder {
	if b.err != nil {
		return b
	}
	if b.item.Meta.Book == nil {
		return b.mismatch("BookAuthor", KindBook)
	}
	b.item.Meta.Book.Author = author
	return b
}

// BookPage appends a page. The client shows at most 50 pages; longer books
// are not rejected here.
func (b *Builder) BookPage(page string) *Builder {
	if b.err != nil {
		return b
	}
	if b.item.Meta.Book == nil {
		return b.mismatch("BookPage", KindBook)
	}
	b.item.Meta.Book.Pages = append(b.item.Meta.Book.Pages, page)
	return b
}

func (b *Builder) BookGeneration(g Generation) *Builder {
	if b.err != nil {
		return b
	}
	if b.item.Meta.Book == nil {
		return b.mismatch("BookGeneration", KindBook)
	}
	b.item.Meta.Book.Generation = g
	return b
}

// Axolotl sets the variant of the axolotl in a bucket.
func (b *Builder) Axolotl(v AxolotlVariant) *Builder {
	if b.err != nil {
		return b
	}
	if b.item.Meta.Axolotl == nil {
		return b.mismatch("Axolotl", KindAxolotl)
	}
	b.item.Meta.Axolotl.Variant = v
	return b
}

// Build returns the configured item. Every call returns the same *Item.
func (b *Builder) Build() (*Item, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.counted {
		b.counted = true
		metrics.ItemsBuilt.WithLabelValues(b.item.Material.Category()).Inc()
	}
	return b.item, nil
}

func reason(err error) string {
	var me *MetaError
	switch {
	case errors.As(err, &me):
		return "incompatible_meta"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	default:
		return "other"
	}
}
