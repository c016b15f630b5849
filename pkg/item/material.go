package item

import (
	"slices"
	"strings"

	"github.com/go-mclib/data/pkg/data/items"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const defaultNamespace = "minecraft"

// Material is a namespaced item registry key (e.g. "minecraft:diamond_sword").
type Material string

// Common materials used by menus.
const (
	Air                   Material = "minecraft:air"
	PlayerHead            Material = "minecraft:player_head"
	PlayerWallHead        Material = "minecraft:player_wall_head"
	GrayStainedGlassPane  Material = "minecraft:gray_stained_glass_pane"
	BlackStainedGlassPane Material = "minecraft:black_stained_glass_pane"
	WrittenBook           Material = "minecraft:written_book"
	WritableBook          Material = "minecraft:writable_book"
	Potion                Material = "minecraft:potion"
	SplashPotion          Material = "minecraft:splash_potion"
	LingeringPotion       Material = "minecraft:lingering_potion"
	TippedArrow           Material = "minecraft:tipped_arrow"
	GoatHorn              Material = "minecraft:goat_horn"
	AxolotlBucket         Material = "minecraft:axolotl_bucket"
	LeatherHelmet         Material = "minecraft:leather_helmet"
	LeatherChestplate     Material = "minecraft:leather_chestplate"
	LeatherLeggings       Material = "minecraft:leather_leggings"
	LeatherBoots          Material = "minecraft:leather_boots"
	LeatherHorseArmor     Material = "minecraft:leather_horse_armor"
	DiamondSword          Material = "minecraft:diamond_sword"
	DiamondChestplate     Material = "minecraft:diamond_chestplate"
	NetheriteHelmet       Material = "minecraft:netherite_helmet"
	TurtleHelmet          Material = "minecraft:turtle_helmet"
	Stone                 Material = "minecraft:stone"
)

const (
	trimmableArmorTag = "minecraft:trimmable_armor"
	dyeableTag        = "minecraft:dyeable"
)

var armorSuffixes = []string{"_helmet", "_chestplate", "_leggings", "_boots"}

// ParseMaterial normalizes a key, adding the minecraft namespace when missing.
func ParseMaterial(s string) Material {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if !strings.Contains(s, ":") {
		s = defaultNamespace + ":" + s
	}
	return Material(s)
}

func (m Material) String() string { return string(m) }

// Key returns the path part of the key ("diamond_sword").
func (m Material) Key() string {
	if _, path, ok := strings.Cut(string(m), ":"); ok {
		return path
	}
	return string(m)
}

// ID resolves the protocol item ID, or -1 if the registry does not know the key.
func (m Material) ID() int32 {
	return items.ItemID(string(ParseMaterial(string(m))))
}

// Known reports whether the item registry knows this material.
func (m Material) Known() bool { return m.ID() >= 0 }

// DisplayName returns the vanilla-style name of the material ("Diamond Sword").
func (m Material) DisplayName() string {
	return cases.Title(language.English).String(strings.ReplaceAll(m.Key(), "_", " "))
}

func (m Material) IsAir() bool { return m == "" || ParseMaterial(string(m)) == Air }

// IsHead reports whether the material accepts a player profile.
func (m Material) IsHead() bool {
	m = ParseMaterial(string(m))
	return m == PlayerHead || m == PlayerWallHead
}

func (m Material) IsArmor() bool {
	key := m.Key()
	for _, suffix := range armorSuffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return m.inTag(trimmableArmorTag)
}

// IsLeather reports whether the material can be dyed like leather armor.
func (m Material) IsLeather() bool {
	switch ParseMaterial(string(m)) {
	case LeatherHelmet, LeatherChestplate, LeatherLeggings, LeatherBoots, LeatherHorseArmor:
		return true
	}
	return m.inTag(dyeableTag)
}

func (m Material) IsPotion() bool {
	switch ParseMaterial(string(m)) {
	case Potion, SplashPotion, LingeringPotion, TippedArrow:
		return true
	}
	return false
}

func (m Material) IsGoatHorn() bool { return ParseMaterial(string(m)) == GoatHorn }

func (m Material) IsBook() bool {
	switch ParseMaterial(string(m)) {
	case WrittenBook, WritableBook:
		return true
	}
	return false
}

func (m Material) IsAxolotlBucket() bool { return ParseMaterial(string(m)) == AxolotlBucket }

// Category returns a coarse label used for metrics.
func (m Material) Category() string {
	switch {
	case m.IsHead():
		return "head"
	case m.IsLeather():
		return "leather"
	case m.IsArmor():
		return "armor"
	case m.IsPotion():
		return "potion"
	case m.IsGoatHorn():
		return "instrument"
	case m.IsBook():
		return "book"
	case m.IsAxolotlBucket():
		return "bucket"
	default:
		return "generic"
	}
}

func (m Material) inTag(tag string) bool {
	id := m.ID()
	if id < 0 {
		return false
	}
	return slices.Contains(items.ItemTag(tag), id)
}
