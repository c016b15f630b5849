package preview

import (
	"fmt"
	"strings"

	"github.com/JWeinelt/codelib/pkg/item"
)

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// roman formats an enchantment or effect level the way the client does.
// Levels outside 1..3999 are printed as digits.
func roman(n int) string {
	if n < 1 || n > 3999 {
		return fmt.Sprint(n)
	}
	var sb strings.Builder
	for _, r := range romanNumerals {
		for n >= r.value {
			sb.WriteString(r.symbol)
			n -= r.value
		}
	}
	return sb.String()
}

// ticks renders a potion duration as m:ss.
func ticks(t int32) string {
	if t < 0 {
		return "∞"
	}
	s := t / 20
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// Tooltip returns the lines shown when hovering the item. The first line is
// the name; hide flags suppress the sections they cover.
func Tooltip(it *item.Item) []string {
	if it.IsEmpty() {
		return nil
	}
	lines := []string{it.Name()}
	m := it.Meta
	if m == nil {
		return lines
	}

	if !m.Flags.Has(item.HideEnchants) {
		for _, e := range m.SortedEnchantments() {
			lvl := m.Enchantments[e]
			name := item.Material(e).DisplayName()
			if e.MaxLevel() == 1 && lvl == 1 {
				lines = append(lines, name)
				continue
			}
			lines = append(lines, name+" "+roman(lvl))
		}
	}

	if m.Potion != nil && !m.Flags.Has(item.HideAdditionalTooltip) {
		for _, e := range m.Potion.Effects {
			name := item.Material(e.Type).DisplayName()
			if e.Amplifier > 0 {
				name += " " + roman(int(e.Amplifier)+1)
			}
			lines = append(lines, fmt.Sprintf("%s (%s)", name, ticks(e.Duration)))
		}
	}

	if m.Instrument != nil && m.Instrument.Instrument != "" && !m.Flags.Has(item.HideAdditionalTooltip) {
		name := strings.TrimSuffix(item.Material(m.Instrument.Instrument).Key(), "_goat_horn")
		lines = append(lines, item.Material(name).DisplayName())
	}

	if b := m.Book; b != nil && b.Title != "" && !m.Flags.Has(item.HideAdditionalTooltip) {
		lines = append(lines, fmt.Sprintf("%q by %s", b.Title, b.Author))
		lines = append(lines, item.Material(b.Generation.String()).DisplayName())
	}

	if a := m.Axolotl; a != nil && a.Variant != "" {
		lines = append(lines, "Variant: "+item.Material(a.Variant).DisplayName())
	}

	if s := m.Skull; s != nil && s.Owner != nil && s.Owner.Name != "" {
		lines = append(lines, "Owner: "+s.Owner.Name)
	}

	if a := m.Armor; a != nil && a.Trim != nil && !m.Flags.Has(item.HideArmorTrim) {
		lines = append(lines,
			"Upgrade:",
			" "+item.Material(a.Trim.Pattern).DisplayName()+" Armor Trim",
			" "+item.Material(a.Trim.Material).DisplayName()+" Material",
		)
	}

	if l := m.Leather; l != nil && l.Color != nil && !m.Flags.Has(item.HideDye) {
		lines = append(lines, "Dyed "+l.Color.Hex())
	}
	if p := m.Potion; p != nil && p.Color != nil && !m.Flags.Has(item.HideAdditionalTooltip) {
		lines = append(lines, "Color "+p.Color.Hex())
	}

	lines = append(lines, m.Lore...)
	return lines
}
