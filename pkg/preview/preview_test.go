package preview

import (
	"io"
	"log"
	"strings"
	"testing"

	"github.com/JWeinelt/codelib/pkg/gui"
	"github.com/JWeinelt/codelib/pkg/item"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shop(t *testing.T) *gui.Inventory {
	t.Helper()
	b, err := gui.NewChest("Shop", 3)
	require.NoError(t, err)
	inv, err := b.
		Slots(item.GrayStainedGlassPane, gui.SlotRange(0, 26)...).
		SlotBuilder(13, item.New(item.DiamondSword).
			DisplayName("Diamond Sword").
			Lore("Price: 100").
			Enchant(item.Sharpness, 7)).
		Build()
	require.NoError(t, err)
	return inv
}

func TestRoman(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{1, "I"},
		{4, "IV"},
		{7, "VII"},
		{9, "IX"},
		{14, "XIV"},
		{255, "CCLV"},
		{0, "0"},
		{4000, "4000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roman(tt.in), "roman(%d)", tt.in)
	}
}

func TestTicks(t *testing.T) {
	assert.Equal(t, "0:30", ticks(600))
	assert.Equal(t, "3:00", ticks(3600))
	assert.Equal(t, "∞", ticks(-1))
}

func TestTooltip(t *testing.T) {
	sword, err := item.New(item.DiamondSword).
		DisplayName("Diamond Sword").
		Lore("Price: 100").
		Enchant(item.Sharpness, 7).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"Diamond Sword", "Sharpness VII", "Price: 100"}, Tooltip(sword))

	hidden, err := item.New(item.DiamondSword).
		Enchant(item.Sharpness, 7).
		Flag(item.HideEnchants).
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"Diamond Sword"}, Tooltip(hidden))

	assert.Nil(t, Tooltip(nil))
}

func TestTooltipMeta(t *testing.T) {
	potion, err := item.New(item.Potion).
		PotionColor(item.FromRGB(0xFF0000)).
		PotionEffect(item.PotionEffect{Type: "minecraft:speed", Duration: 600, Amplifier: 1}).
		Build()
	require.NoError(t, err)
	lines := Tooltip(potion)
	assert.Contains(t, lines, "Speed II (0:30)")
	assert.Contains(t, lines, "Color #FF0000")

	book, err := item.New(item.WrittenBook).
		BookTitle("Rules").
		BookAuthor("Admin").
		BookGeneration(item.GenerationCopyOfOriginal).
		Build()
	require.NoError(t, err)
	lines = Tooltip(book)
	assert.Contains(t, lines, `"Rules" by Admin`)
	assert.Contains(t, lines, "Copy Of Original")

	chest, err := item.New(item.LeatherChestplate).
		LeatherColor(item.FromRGB(0xA06540)).
		Trim(item.TrimGold, item.PatternCoast).
		Build()
	require.NoError(t, err)
	lines = Tooltip(chest)
	assert.Contains(t, lines, "Dyed #A06540")
	assert.Contains(t, lines, " Coast Armor Trim")
	assert.Contains(t, lines, " Gold Material")

	horn, err := item.New(item.GoatHorn).MusicInstrument(item.InstrumentDream).Build()
	require.NoError(t, err)
	assert.Contains(t, Tooltip(horn), "Dream")

	head, err := item.New(item.PlayerHead).Owner(item.Profile{Name: "Notch"}).Build()
	require.NoError(t, err)
	assert.Contains(t, Tooltip(head), "Owner: Notch")
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "·", label(nil))

	it, err := item.New(item.DiamondSword).Build()
	require.NoError(t, err)
	assert.Equal(t, "DS", label(it))

	it, err = item.New(item.Stone).Amount(64).Build()
	require.NoError(t, err)
	assert.Equal(t, "S64", label(it))
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func TestModelCursor(t *testing.T) {
	m := NewModel(shop(t))
	assert.Nil(t, m.Init())
	assert.Equal(t, 0, m.Cursor())

	press(m, tea.KeyUp)
	press(m, tea.KeyLeft)
	assert.Equal(t, 0, m.Cursor())

	press(m, tea.KeyDown)
	press(m, tea.KeyRight)
	press(m, tea.KeyRight)
	press(m, tea.KeyRight)
	press(m, tea.KeyRight)
	assert.Equal(t, 13, m.Cursor())
	assert.Equal(t, item.DiamondSword, m.Hovered().Material)

	for range 10 {
		press(m, tea.KeyRight)
	}
	assert.Equal(t, 17, m.Cursor())

	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	assert.Equal(t, 26, m.Cursor())
}

func TestModelView(t *testing.T) {
	m := NewModel(shop(t))
	press(m, tea.KeyDown)
	for range 4 {
		press(m, tea.KeyRight)
	}

	view := m.View()
	assert.Contains(t, view, "Shop")
	assert.Contains(t, view, "chest, 27 slots, slot 13")
	assert.Contains(t, view, "Sharpness VII")
	assert.Contains(t, view, "Price: 100")
}

func TestModelQuit(t *testing.T) {
	m := NewModel(shop(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Closed())
}

func TestViewerOpenInventory(t *testing.T) {
	v := &Viewer{
		Logger: log.New(io.Discard, "", 0),
		Options: []tea.ProgramOption{
			tea.WithInput(strings.NewReader("q")),
			tea.WithOutput(io.Discard),
		},
	}

	b, err := gui.NewChest("Shop", 3)
	require.NoError(t, err)
	_, err = b.OpenForPlayer(v)
	assert.NoError(t, err)
}
