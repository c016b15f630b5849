package item

import (
	"errors"
	"testing"

	"github.com/JWeinelt/codelib/pkg/metrics"
	"github.com/go-mclib/data/pkg/data/items"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	tests := []struct {
		material Material
		check    func(t *testing.T, m *Meta)
	}{
		{Stone, func(t *testing.T, m *Meta) {
			assert.Nil(t, m.Skull)
			assert.Nil(t, m.Armor)
			assert.Nil(t, m.Book)
		}},
		{PlayerHead, func(t *testing.T, m *Meta) { assert.NotNil(t, m.Skull) }},
		{DiamondChestplate, func(t *testing.T, m *Meta) {
			assert.NotNil(t, m.Armor)
			assert.Nil(t, m.Leather)
		}},
		{LeatherBoots, func(t *testing.T, m *Meta) {
			assert.NotNil(t, m.Armor)
			assert.NotNil(t, m.Leather)
		}},
		{SplashPotion, func(t *testing.T, m *Meta) { assert.NotNil(t, m.Potion) }},
		{GoatHorn, func(t *testing.T, m *Meta) { assert.NotNil(t, m.Instrument) }},
		{WrittenBook, func(t *testing.T, m *Meta) { assert.NotNil(t, m.Book) }},
		{AxolotlBucket, func(t *testing.T, m *Meta) { assert.NotNil(t, m.Axolotl) }},
	}

	for _, tt := range tests {
		t.Run(tt.material.Key(), func(t *testing.T) {
			it, err := New(tt.material).Build()
			require.NoError(t, err)
			assert.Equal(t, tt.material, it.Material)
			assert.Equal(t, 1, it.Amount)
			_, named := it.Meta.DisplayName()
			assert.False(t, named)
			tt.check(t, it.Meta)
		})
	}
}

func TestNewNormalizesMaterial(t *testing.T) {
	it, err := New("Diamond_Sword").Build()
	require.NoError(t, err)
	assert.Equal(t, DiamondSword, it.Material)
}

func TestDisplayName(t *testing.T) {
	materials := []Material{Stone, DiamondSword, PlayerHead, WrittenBook}
	names := []string{"Diamond Sword", " ", "", "§6Golden §lName"}

	for _, m := range materials {
		for _, name := range names {
			b := New(m).DisplayName(name)
			it, err := b.Build()
			require.NoError(t, err)

			got, ok := it.Meta.DisplayName()
			assert.True(t, ok)
			assert.Equal(t, name, got)
			assert.Equal(t, m, it.Material)

			// same name again changes nothing
			before := it.Meta.Clone()
			b.DisplayName(name)
			assert.Equal(t, before, it.Meta)
		}
	}
}

func TestDisplayNameOverwrites(t *testing.T) {
	it, err := New(Stone).DisplayName("first").DisplayName("second").Build()
	require.NoError(t, err)
	assert.Equal(t, "second", it.Name())
}

func TestNameFallsBackToMaterial(t *testing.T) {
	it, err := New(DiamondSword).Build()
	require.NoError(t, err)
	assert.Equal(t, "Diamond Sword", it.Name())
}

func TestLoreReplaces(t *testing.T) {
	it, err := New(Stone).
		Lore("a", "b", "c").
		Lore("x", "y").
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, it.Meta.Lore)
}

func TestLoreCopiesInput(t *testing.T) {
	lines := []string{"one", "two"}
	it, err := New(Stone).Lore(lines...).Build()
	require.NoError(t, err)

	lines[0] = "changed"
	assert.Equal(t, []string{"one", "two"}, it.Meta.Lore)
}

func TestFlagsAdditive(t *testing.T) {
	it, err := New(DiamondSword).
		Flag(HideEnchants).
		Flags(HideAttributes, HideEnchants).
		Flag(HideEnchants).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 2, it.Meta.Flags.Len())
	assert.Equal(t, []Flag{HideEnchants, HideAttributes}, it.Meta.Flags.List())
}

func TestEnchantIgnoresMaxLevel(t *testing.T) {
	it, err := New(DiamondSword).
		Enchant(Sharpness, 10).
		Enchant(Unbreaking, 3).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 5, Sharpness.MaxLevel())
	assert.Equal(t, 10, it.Meta.EnchantLevel(Sharpness))
	assert.Equal(t, []Enchantment{Sharpness, Unbreaking}, it.Meta.SortedEnchantments())
}

func TestOwnerOnHead(t *testing.T) {
	p := Profile{ID: uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5"), Name: "Notch"}

	it, err := New(PlayerHead).Owner(p).Build()
	require.NoError(t, err)
	require.NotNil(t, it.Meta.Skull.Owner)
	assert.Equal(t, p, *it.Meta.Skull.Owner)
}

func TestOwnerOnNonHeadIsNoop(t *testing.T) {
	b := New(DiamondSword).DisplayName("Blade").Lore("sharp")
	it, err := b.Build()
	require.NoError(t, err)
	before := it.Meta.Clone()

	got := b.Owner(Profile{ID: uuid.New(), Name: "Steve"})

	assert.Same(t, b, got)
	assert.NoError(t, got.Err())
	assert.Equal(t, before, it.Meta)
}

func TestIncompatibleMeta(t *testing.T) {
	tests := []struct {
		name  string
		apply func(b *Builder) *Builder
		op    string
		kind  Kind
	}{
		{"trim", func(b *Builder) *Builder { return b.Trim(TrimGold, PatternCoast) }, "ArmorTrim", KindArmor},
		{"leather", func(b *Builder) *Builder { return b.LeatherColor(FromRGB(0xA06540)) }, "LeatherColor", KindLeather},
		{"potion color", func(b *Builder) *Builder { return b.PotionColor(FromRGB(0xFF0000)) }, "PotionColor", KindPotion},
		{"potion effect", func(b *Builder) *Builder {
			return b.PotionEffect(PotionEffect{Type: "minecraft:speed", Duration: 200})
		}, "PotionEffects", KindPotion},
		{"instrument", func(b *Builder) *Builder { return b.MusicInstrument(InstrumentPonder) }, "MusicInstrument", KindInstrument},
		{"book title", func(b *Builder) *Builder { return b.BookTitle("t") }, "BookTitle", KindBook},
		{"book author", func(b *Builder) *Builder { return b.BookAuthor("a") }, "BookAuthor", KindBook},
		{"book page", func(b *Builder) *Builder { return b.BookPage("p") }, "BookPage", KindBook},
		{"book generation", func(b *Builder) *Builder { return b.BookGeneration(GenerationTattered) }, "BookGeneration", KindBook},
		{"axolotl", func(b *Builder) *Builder { return b.Axolotl(AxolotlBlue) }, "Axolotl", KindAxolotl},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(metrics.BuilderErrors.WithLabelValues(metrics.BuilderItem, "incompatible_meta"))

			b := tt.apply(New(Stone))
			it, err := b.Build()

			require.Error(t, err)
			assert.Nil(t, it)
			assert.True(t, errors.Is(err, ErrIncompatibleMeta))

			var me *MetaError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, tt.op, me.Op)
			assert.Equal(t, Stone, me.Material)
			assert.Equal(t, tt.kind, me.Kind)

			after := testutil.ToFloat64(metrics.BuilderErrors.WithLabelValues(metrics.BuilderItem, "incompatible_meta"))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestErrorIsSticky(t *testing.T) {
	b := New(Stone).BookTitle("nope").DisplayName("ignored").Trim(TrimGold, PatternWard)

	var me *MetaError
	require.ErrorAs(t, b.Err(), &me)
	assert.Equal(t, "BookTitle", me.Op)

	_, named := b.item.Meta.DisplayName()
	assert.False(t, named)
}

func TestArmorTrim(t *testing.T) {
	it, err := New(NetheriteHelmet).Trim(TrimDiamond, PatternSilence).Build()
	require.NoError(t, err)
	assert.Equal(t, &ArmorTrim{Material: TrimDiamond, Pattern: PatternSilence}, it.Meta.Armor.Trim)

	it, err = New(TurtleHelmet).ArmorTrim(ArmorTrim{Material: TrimQuartz, Pattern: PatternTide}).Build()
	require.NoError(t, err)
	assert.Equal(t, PatternTide, it.Meta.Armor.Trim.Pattern)
}

func TestLeatherColor(t *testing.T) {
	it, err := New(LeatherChestplate).LeatherColor(FromRGB(0xA06540)).Build()
	require.NoError(t, err)
	require.NotNil(t, it.Meta.Leather.Color)
	assert.Equal(t, "#A06540", it.Meta.Leather.Color.Hex())
}

func TestPotionEffectsOverrideSameType(t *testing.T) {
	it, err := New(Potion).
		PotionColor(FromRGB(0x33EBFF)).
		PotionEffects(
			PotionEffect{Type: "minecraft:speed", Duration: 200, Amplifier: 0},
			PotionEffect{Type: "minecraft:regeneration", Duration: 100},
		).
		PotionEffect(PotionEffect{Type: "minecraft:speed", Duration: 600, Amplifier: 2}).
		Build()
	require.NoError(t, err)

	require.Len(t, it.Meta.Potion.Effects, 2)
	assert.Equal(t, PotionEffect{Type: "minecraft:speed", Duration: 600, Amplifier: 2}, it.Meta.Potion.Effects[0])
	assert.Equal(t, EffectType("minecraft:regeneration"), it.Meta.Potion.Effects[1].Type)
	assert.Equal(t, 0x33EBFF, it.Meta.Potion.Color.RGB())
}

func TestMusicInstrument(t *testing.T) {
	it, err := New(GoatHorn).MusicInstrument(InstrumentDream).Build()
	require.NoError(t, err)
	assert.Equal(t, InstrumentDream, it.Meta.Instrument.Instrument)
}

func TestBook(t *testing.T) {
	it, err := New(WrittenBook).
		BookTitle("Rules").
		BookAuthor("Admin").
		BookPage("P1").
		BookPage("P2").
		BookGeneration(GenerationCopyOfOriginal).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "Rules", it.Meta.Book.Title)
	assert.Equal(t, "Admin", it.Meta.Book.Author)
	assert.Equal(t, []string{"P1", "P2"}, it.Meta.Book.Pages)
	assert.Equal(t, GenerationCopyOfOriginal, it.Meta.Book.Generation)
}

func TestAxolotl(t *testing.T) {
	it, err := New(AxolotlBucket).Axolotl(AxolotlGold).Build()
	require.NoError(t, err)
	assert.Equal(t, AxolotlGold, it.Meta.Axolotl.Variant)
}

func TestAmount(t *testing.T) {
	it, err := New(Stone).Amount(64).Build()
	require.NoError(t, err)
	assert.Equal(t, 64, it.Amount)

	_, err = New(Stone).Amount(0).Build()
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestBuildReturnsSameItem(t *testing.T) {
	category := WrittenBook.Category()
	before := testutil.ToFloat64(metrics.ItemsBuilt.WithLabelValues(category))

	b := New(WrittenBook).BookTitle("t")
	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ItemsBuilt.WithLabelValues(category)))

	// mutations after Build show through the shared item
	b.BookPage("late")
	assert.Equal(t, []string{"late"}, first.Meta.Book.Pages)
}

func TestMetaCloneIsDeep(t *testing.T) {
	it, err := New(Potion).
		Lore("a").
		Enchant(Mending, 1).
		PotionColor(FromRGB(1)).
		PotionEffect(PotionEffect{Type: "minecraft:speed"}).
		Build()
	require.NoError(t, err)

	c := it.Meta.Clone()
	c.Lore[0] = "b"
	c.Enchantments[Mending] = 2
	c.Potion.Color.R = 9
	c.Potion.Effects[0].Duration = 5

	assert.Equal(t, "a", it.Meta.Lore[0])
	assert.Equal(t, 1, it.Meta.EnchantLevel(Mending))
	assert.Equal(t, uint8(0), it.Meta.Potion.Color.R)
	assert.Equal(t, int32(0), it.Meta.Potion.Effects[0].Duration)
}

func TestFromStack(t *testing.T) {
	it, err := FromStack(nil).Build()
	require.NoError(t, err)
	assert.True(t, it.IsEmpty())

	it, err = FromStack(&items.ItemStack{ID: items.ItemID("minecraft:stone"), Count: 5}).
		DisplayName("Pebbles").
		Build()
	require.NoError(t, err)
	assert.Equal(t, Stone, it.Material)
	assert.Equal(t, 5, it.Amount)
	assert.Equal(t, "Pebbles", it.Name())
}
