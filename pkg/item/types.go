package item

import (
	"fmt"
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/go-mclib/data/pkg/data/registries"
	"github.com/google/uuid"
)

// Flag hides parts of an item's tooltip.
type Flag uint16

const (
	HideEnchants Flag = 1 << iota
	HideAttributes
	HideUnbreakable
	HideDestroys
	HidePlacedOn
	HideAdditionalTooltip
	HideDye
	HideArmorTrim
	HideStoredEnchants
)

var flagNames = map[Flag]string{
	HideEnchants:          "hide_enchants",
	HideAttributes:        "hide_attributes",
	HideUnbreakable:       "hide_unbreakable",
	HideDestroys:          "hide_destroys",
	HidePlacedOn:          "hide_placed_on",
	HideAdditionalTooltip: "hide_additional_tooltip",
	HideDye:               "hide_dye",
	HideArmorTrim:         "hide_armor_trim",
	HideStoredEnchants:    "hide_stored_enchants",
}

func (f Flag) String() string {
	if name, ok := flagNames[f]; ok {
		return name
	}
	return "flag(" + strconv.Itoa(int(f)) + ")"
}

// ParseFlag accepts names like "hide_enchants" or "HIDE_ENCHANTS".
func ParseFlag(s string) (Flag, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range flagNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown item flag %q", s)
}

// FlagSet is a set of tooltip flags.
type FlagSet uint16

func (s FlagSet) Has(f Flag) bool { return s&FlagSet(f) != 0 }

func (s FlagSet) Len() int { return bits.OnesCount16(uint16(s)) }

// List returns the flags in declaration order.
func (s FlagSet) List() []Flag {
	var out []Flag
	for f := HideEnchants; f <= HideStoredEnchants; f <<= 1 {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Generation classifies how often a written book has been copied.
type Generation uint8

const (
	GenerationOriginal Generation = iota
	GenerationCopyOfOriginal
	GenerationCopyOfCopy
	GenerationTattered
)

var generationNames = [...]string{"original", "copy_of_original", "copy_of_copy", "tattered"}

func (g Generation) String() string {
	if int(g) < len(generationNames) {
		return generationNames[g]
	}
	return "generation(" + strconv.Itoa(int(g)) + ")"
}

func ParseGeneration(s string) (Generation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range generationNames {
		if name == s {
			return Generation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown book generation %q", s)
}

// Instrument is a goat horn instrument key.
type Instrument string

const (
	InstrumentPonder Instrument = "minecraft:ponder_goat_horn"
	InstrumentSing   Instrument = "minecraft:sing_goat_horn"
	InstrumentSeek   Instrument = "minecraft:seek_goat_horn"
	InstrumentFeel   Instrument = "minecraft:feel_goat_horn"
	InstrumentAdmire Instrument = "minecraft:admire_goat_horn"
	InstrumentCall   Instrument = "minecraft:call_goat_horn"
	InstrumentYearn  Instrument = "minecraft:yearn_goat_horn"
	InstrumentDream  Instrument = "minecraft:dream_goat_horn"
)

var instruments = []Instrument{
	InstrumentPonder, InstrumentSing, InstrumentSeek, InstrumentFeel,
	InstrumentAdmire, InstrumentCall, InstrumentYearn, InstrumentDream,
}

// Known reports whether i names one of the goat horn instruments.
func (i Instrument) Known() bool {
	return slices.Contains(instruments, Instrument(ParseMaterial(string(i))))
}

// AxolotlVariant is the axolotl colour stored in a bucket.
type AxolotlVariant string

const (
	AxolotlLucy AxolotlVariant = "lucy"
	AxolotlWild AxolotlVariant = "wild"
	AxolotlGold AxolotlVariant = "gold"
	AxolotlCyan AxolotlVariant = "cyan"
	AxolotlBlue AxolotlVariant = "blue"
)

// TrimMaterial is the ingredient of an armor trim.
type TrimMaterial string

const (
	TrimAmethyst  TrimMaterial = "minecraft:amethyst"
	TrimCopper    TrimMaterial = "minecraft:copper"
	TrimDiamond   TrimMaterial = "minecraft:diamond"
	TrimEmerald   TrimMaterial = "minecraft:emerald"
	TrimGold      TrimMaterial = "minecraft:gold"
	TrimIron      TrimMaterial = "minecraft:iron"
	TrimLapis     TrimMaterial = "minecraft:lapis"
	TrimNetherite TrimMaterial = "minecraft:netherite"
	TrimQuartz    TrimMaterial = "minecraft:quartz"
	TrimRedstone  TrimMaterial = "minecraft:redstone"
)

var trimMaterials = []TrimMaterial{
	TrimAmethyst, TrimCopper, TrimDiamond, TrimEmerald, TrimGold,
	TrimIron, TrimLapis, TrimNetherite, TrimQuartz, TrimRedstone,
}

func (m TrimMaterial) Known() bool {
	return slices.Contains(trimMaterials, TrimMaterial(ParseMaterial(string(m))))
}

// TrimPattern is the smithing template pattern of an armor trim.
type TrimPattern string

const (
	PatternCoast     TrimPattern = "minecraft:coast"
	PatternDune      TrimPattern = "minecraft:dune"
	PatternEye       TrimPattern = "minecraft:eye"
	PatternHost      TrimPattern = "minecraft:host"
	PatternRaiser    TrimPattern = "minecraft:raiser"
	PatternRib       TrimPattern = "minecraft:rib"
	PatternSentry    TrimPattern = "minecraft:sentry"
	PatternShaper    TrimPattern = "minecraft:shaper"
	PatternSilence   TrimPattern = "minecraft:silence"
	PatternSnout     TrimPattern = "minecraft:snout"
	PatternSpire     TrimPattern = "minecraft:spire"
	PatternTide      TrimPattern = "minecraft:tide"
	PatternVex       TrimPattern = "minecraft:vex"
	PatternWard      TrimPattern = "minecraft:ward"
	PatternWayfinder TrimPattern = "minecraft:wayfinder"
	PatternWild      TrimPattern = "minecraft:wild"
)

var trimPatterns = []TrimPattern{
	PatternCoast, PatternDune, PatternEye, PatternHost, PatternRaiser, PatternRib,
	PatternSentry, PatternShaper, PatternSilence, PatternSnout, PatternSpire,
	PatternTide, PatternVex, PatternWard, PatternWayfinder, PatternWild,
}

func (p TrimPattern) Known() bool {
	return slices.Contains(trimPatterns, TrimPattern(ParseMaterial(string(p))))
}

type ArmorTrim struct {
	Material TrimMaterial
	Pattern  TrimPattern
}

// Enchantment is a namespaced enchantment key.
type Enchantment string

const (
	Sharpness       Enchantment = "minecraft:sharpness"
	Smite           Enchantment = "minecraft:smite"
	Knockback       Enchantment = "minecraft:knockback"
	FireAspect      Enchantment = "minecraft:fire_aspect"
	Looting         Enchantment = "minecraft:looting"
	Efficiency      Enchantment = "minecraft:efficiency"
	SilkTouch       Enchantment = "minecraft:silk_touch"
	Fortune         Enchantment = "minecraft:fortune"
	Unbreaking      Enchantment = "minecraft:unbreaking"
	Mending         Enchantment = "minecraft:mending"
	Protection      Enchantment = "minecraft:protection"
	Thorns          Enchantment = "minecraft:thorns"
	Power           Enchantment = "minecraft:power"
	Infinity        Enchantment = "minecraft:infinity"
	LuckOfTheSea    Enchantment = "minecraft:luck_of_the_sea"
	BindingCurse    Enchantment = "minecraft:binding_curse"
	VanishingCurse  Enchantment = "minecraft:vanishing_curse"
	FeatherFalling  Enchantment = "minecraft:feather_falling"
	DepthStrider    Enchantment = "minecraft:depth_strider"
	FrostWalker     Enchantment = "minecraft:frost_walker"
	SoulSpeed       Enchantment = "minecraft:soul_speed"
	SwiftSneak      Enchantment = "minecraft:swift_sneak"
	Respiration     Enchantment = "minecraft:respiration"
	AquaAffinity    Enchantment = "minecraft:aqua_affinity"
	SweepingEdge    Enchantment = "minecraft:sweeping_edge"
	Density         Enchantment = "minecraft:density"
	Breach          Enchantment = "minecraft:breach"
	WindBurst       Enchantment = "minecraft:wind_burst"
	Lure            Enchantment = "minecraft:lure"
	Loyalty         Enchantment = "minecraft:loyalty"
	Riptide         Enchantment = "minecraft:riptide"
	Channeling      Enchantment = "minecraft:channeling"
	Impaling        Enchantment = "minecraft:impaling"
	Multishot       Enchantment = "minecraft:multishot"
	Piercing        Enchantment = "minecraft:piercing"
	QuickCharge     Enchantment = "minecraft:quick_charge"
	Punch           Enchantment = "minecraft:punch"
	Flame           Enchantment = "minecraft:flame"
	BaneOfArthropod Enchantment = "minecraft:bane_of_arthropods"
	FireProtection  Enchantment = "minecraft:fire_protection"
	BlastProtection Enchantment = "minecraft:blast_protection"
	ProjProtection  Enchantment = "minecraft:projectile_protection"
)

// vanilla max levels; anything missing is treated as 1
var maxLevels = map[Enchantment]int{
	Sharpness: 5, Smite: 5, BaneOfArthropod: 5, Knockback: 2, FireAspect: 2,
	Looting: 3, Efficiency: 5, Fortune: 3, Unbreaking: 3, Protection: 4,
	FireProtection: 4, BlastProtection: 4, ProjProtection: 4, Thorns: 3,
	Power: 5, Punch: 2, LuckOfTheSea: 3, Lure: 3, FeatherFalling: 4,
	DepthStrider: 3, FrostWalker: 2, SoulSpeed: 3, SwiftSneak: 3,
	Respiration: 3, SweepingEdge: 3, Density: 5, Breach: 4, WindBurst: 3,
	Loyalty: 3, Riptide: 3, Impaling: 5, Piercing: 4, QuickCharge: 3,
}

// MaxLevel is the highest level an enchanting table or anvil would produce.
func (e Enchantment) MaxLevel() int {
	if lvl, ok := maxLevels[e]; ok {
		return lvl
	}
	return 1
}

func (e Enchantment) Key() string { return Material(e).Key() }

// EffectType is a namespaced mob effect key (e.g. "minecraft:speed").
type EffectType string

// ID resolves the protocol mob effect ID.
func (t EffectType) ID() int32 {
	return registries.MobEffect.Get(string(t))
}

// Known reports whether the mob effect registry has the effect.
func (t EffectType) Known() bool {
	return EffectType(ParseMaterial(string(t))).ID() >= 0
}

func (t EffectType) Key() string { return Material(t).Key() }

// PotionEffect is a custom effect carried by a potion. Duration is in ticks;
// -1 means infinite.
type PotionEffect struct {
	Type      EffectType
	Duration  int32
	Amplifier int32 // 0 = Level I
	Ambient   bool
	Particles bool
	Icon      bool
}

// Color is an RGB dye colour.
type Color struct {
	R, G, B uint8
}

// FromRGB unpacks a 0xRRGGBB value.
func FromRGB(rgb int) Color {
	return Color{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb)}
}

// ParseColor accepts "#RRGGBB" or "RRGGBB".
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return FromRGB(int(v)), nil
}

func (c Color) RGB() int { return int(c.R)<<16 | int(c.G)<<8 | int(c.B) }

func (c Color) Hex() string { return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B) }

// Profile identifies the player whose skin a head shows.
type Profile struct {
	ID       uuid.UUID
	Name     string
	Textures string // base64 skin property, optional
}
