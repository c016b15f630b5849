package layout

import (
	"fmt"

	"github.com/JWeinelt/codelib/pkg/gui"
	"github.com/JWeinelt/codelib/pkg/item"
	"github.com/google/uuid"
)

// Builder creates a GUI builder populated from the menu. Order of
// application: border, fillers, items, then fill for the remaining slots.
func (m *Menu) Builder() (*gui.Builder, error) {
	b, err := m.newGUI()
	if err != nil {
		return nil, err
	}

	if m.Border != "" {
		b.Slots(item.ParseMaterial(m.Border), gui.BorderSlots(m.Rows)...)
	}

	for _, f := range m.Fillers {
		slots := append([]int(nil), f.Slots...)
		for _, r := range f.Ranges {
			first, last, err := parseRange(r)
			if err != nil {
				return nil, err
			}
			slots = append(slots, gui.SlotRange(first, last)...)
		}
		b.Slots(item.ParseMaterial(f.Material), slots...)
	}

	for i := range m.Items {
		if m.Items[i].Slot == nil {
			return nil, fmt.Errorf("%w: Items[%d] has no slot", ErrInvalidMenu, i)
		}
		slot := *m.Items[i].Slot
		ib, err := m.Items[i].builder()
		if err != nil {
			return nil, fmt.Errorf("item in slot %d: %w", slot, err)
		}
		b.SlotBuilder(slot, ib)
	}

	if m.Fill != "" {
		b.Fill(item.ParseMaterial(m.Fill))
	}

	if err := b.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

func (m *Menu) newGUI() (*gui.Builder, error) {
	if m.Rows > 0 {
		return gui.NewChest(m.Title, m.Rows)
	}
	t, err := gui.ParseType(m.Type)
	if err != nil {
		return nil, err
	}
	return gui.New(t, m.Title)
}

// builder converts the definition into an item builder. Values that fail to
// parse are returned as errors; metadata mismatches surface through the
// builder.
func (it *Item) builder() (*item.Builder, error) {
	b := item.New(item.ParseMaterial(it.Material))

	if it.Amount > 0 {
		b.Amount(it.Amount)
	}
	if it.Name != nil {
		b.DisplayName(*it.Name)
	}
	if len(it.Lore) > 0 {
		b.Lore(it.Lore...)
	}
	for key, lvl := range it.Enchantments {
		b.Enchant(item.Enchantment(item.ParseMaterial(key)), lvl)
	}
	for _, name := range it.Flags {
		f, err := item.ParseFlag(name)
		if err != nil {
			return nil, err
		}
		b.Flag(f)
	}

	if it.Color != "" {
		c, err := item.ParseColor(it.Color)
		if err != nil {
			return nil, err
		}
		if item.ParseMaterial(it.Material).IsPotion() {
			b.PotionColor(c)
		} else {
			b.LeatherColor(c)
		}
	}

	if it.Trim != nil {
		b.Trim(
			item.TrimMaterial(item.ParseMaterial(it.Trim.Material)),
			item.TrimPattern(item.ParseMaterial(it.Trim.Pattern)),
		)
	}

	for _, e := range it.Effects {
		b.PotionEffect(item.PotionEffect{
			Type:      item.EffectType(item.ParseMaterial(e.Type)),
			Duration:  e.Duration,
			Amplifier: e.Amplifier,
			Ambient:   e.Ambient,
			Particles: boolOr(e.Particles, true),
			Icon:      boolOr(e.Icon, true),
		})
	}

	if it.Instrument != "" {
		b.MusicInstrument(item.Instrument(item.ParseMaterial(it.Instrument)))
	}

	if it.Axolotl != "" {
		b.Axolotl(item.AxolotlVariant(it.Axolotl))
	}

	if bk := it.Book; bk != nil {
		b.BookTitle(bk.Title).BookAuthor(bk.Author)
		for _, p := range bk.Pages {
			b.BookPage(p)
		}
		if bk.Generation != "" {
			g, err := item.ParseGeneration(bk.Generation)
			if err != nil {
				return nil, err
			}
			b.BookGeneration(g)
		}
	}

	if o := it.Owner; o != nil {
		p := item.Profile{Name: o.Name, Textures: o.Textures}
		if o.ID != "" {
			id, err := uuid.Parse(o.ID)
			if err != nil {
				return nil, fmt.Errorf("owner id: %w", err)
			}
			p.ID = id
		}
		b.Owner(p)
	}

	return b, b.Err()
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
