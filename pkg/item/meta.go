package item

import (
	"maps"
	"slices"
)

// Meta is the per-instance attribute set of an item. The common fields apply
// to every material; the kind parts are non-nil only when the material
// belongs to the matching category.
type Meta struct {
	displayName  string
	hasName      bool
	Lore         []string
	Enchantments map[Enchantment]int
	Flags        FlagSet

	Skull      *SkullMeta
	Armor      *ArmorMeta
	Leather    *LeatherArmorMeta
	Potion     *PotionMeta
	Instrument *InstrumentMeta
	Book       *BookMeta
	Axolotl    *AxolotlBucketMeta
}

type SkullMeta struct {
	Owner *Profile
}

type ArmorMeta struct {
	Trim *ArmorTrim
}

type LeatherArmorMeta struct {
	Color *Color
}

type PotionMeta struct {
	Color   *Color
	Effects []PotionEffect
}

type InstrumentMeta struct {
	Instrument Instrument
}

type BookMeta struct {
	Title      string
	Author     string
	Pages      []string
	Generation Generation
}

type AxolotlBucketMeta struct {
	Variant AxolotlVariant
}

// defaultMeta returns the empty metadata the host would attach to a new
// stack of the material.
func defaultMeta(m Material) *Meta {
	meta := &Meta{}
	if m.IsHead() {
		meta.Skull = &SkullMeta{}
	}
	if m.IsArmor() {
		meta.Armor = &ArmorMeta{}
	}
	if m.IsLeather() {
		meta.Leather = &LeatherArmorMeta{}
	}
	if m.IsPotion() {
		meta.Potion = &PotionMeta{}
	}
	if m.IsGoatHorn() {
		meta.Instrument = &InstrumentMeta{}
	}
	if m.IsBook() {
		meta.Book = &BookMeta{}
	}
	if m.IsAxolotlBucket() {
		meta.Axolotl = &AxolotlBucketMeta{}
	}
	return meta
}

// DisplayName returns the custom name and whether one is set.
func (m *Meta) DisplayName() (string, bool) { return m.displayName, m.hasName }

func (m *Meta) SetDisplayName(name string) {
	m.displayName = name
	m.hasName = true
}

// EnchantLevel returns the level of e, or 0 when absent.
func (m *Meta) EnchantLevel(e Enchantment) int { return m.Enchantments[e] }

// SortedEnchantments returns the enchantment keys in lexical order.
func (m *Meta) SortedEnchantments() []Enchantment {
	return slices.Sorted(maps.Keys(m.Enchantments))
}

// Clone returns a deep copy.
func (m *Meta) Clone() *Meta {
	if m == nil {
		return nil
	}
	c := *m
	c.Lore = slices.Clone(m.Lore)
	c.Enchantments = maps.Clone(m.Enchantments)
	if m.Skull != nil {
		s := *m.Skull
		if s.Owner != nil {
			p := *s.Owner
			s.Owner = &p
		}
		c.Skull = &s
	}
	if m.Armor != nil {
		a := *m.Armor
		if a.Trim != nil {
			t := *a.Trim
			a.Trim = &t
		}
		c.Armor = &a
	}
	if m.Leather != nil {
		l := *m.Leather
		l.Color = cloneColor(l.Color)
		c.Leather = &l
	}
	if m.Potion != nil {
		p := *m.Potion
		p.Color = cloneColor(p.Color)
		p.Effects = slices.Clone(p.Effects)
		c.Potion = &p
	}
	if m.Instrument != nil {
		i := *m.Instrument
		c.Instrument = &i
	}
	if m.Book != nil {
		b := *m.Book
		b.Pages = slices.Clone(b.Pages)
		c.Book = &b
	}
	if m.Axolotl != nil {
		a := *m.Axolotl
		c.Axolotl = &a
	}
	return &c
}

func cloneColor(c *Color) *Color {
	if c == nil {
		return nil
	}
	cc := *c
	return &cc
}

// addEffect inserts e, replacing an existing effect of the same type in place.
func (p *PotionMeta) addEffect(e PotionEffect) {
	for i := range p.Effects {
		if p.Effects[i].Type == e.Type {
			p.Effects[i] = e
			return
		}
	}
	p.Effects = append(p.Effects, e)
}
