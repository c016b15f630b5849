package gui

import (
	"fmt"
	"strings"
)

// MenuType represents a Minecraft container menu type from the minecraft:menu registry.
type MenuType int32

const (
	MenuNone         MenuType = -1
	MenuGeneric9x1   MenuType = 0
	MenuGeneric9x2   MenuType = 1
	MenuGeneric9x3   MenuType = 2 // single chest, barrel
	MenuGeneric9x4   MenuType = 3
	MenuGeneric9x5   MenuType = 4
	MenuGeneric9x6   MenuType = 5 // double chest
	MenuGeneric3x3   MenuType = 6 // dispenser, dropper
	MenuCrafter3x3   MenuType = 7
	MenuAnvil        MenuType = 8
	MenuBeacon       MenuType = 9
	MenuBlastFurnace MenuType = 10
	MenuBrewingStand MenuType = 11
	MenuCrafting     MenuType = 12
	MenuEnchantment  MenuType = 13
	MenuFurnace      MenuType = 14
	MenuGrindstone   MenuType = 15
	MenuHopper       MenuType = 16
	MenuLectern      MenuType = 17
	MenuLoom         MenuType = 18
	MenuMerchant     MenuType = 19
	MenuShulkerBox   MenuType = 20
	MenuSmithing     MenuType = 21
	MenuSmoker       MenuType = 22
	MenuCartography  MenuType = 23
	MenuStonecutter  MenuType = 24
)

// chestMenu maps a row count to its generic menu.
func chestMenu(rows int) MenuType {
	if rows < 1 || rows > MaxRows {
		return MenuNone
	}
	return MenuGeneric9x1 + MenuType(rows-1)
}

// Type is an inventory archetype.
type Type int

const (
	TypeChest Type = iota
	TypeDispenser
	TypeDropper
	TypeFurnace
	TypeWorkbench
	TypeCrafting
	TypeEnchanting
	TypeBrewing
	TypePlayer
	TypeCreative
	TypeMerchant
	TypeEnderChest
	TypeAnvil
	TypeSmithing
	TypeBeacon
	TypeHopper
	TypeShulkerBox
	TypeBarrel
	TypeBlastFurnace
	TypeLectern
	TypeSmoker
	TypeLoom
	TypeCartography
	TypeGrindstone
	TypeStonecutter
	TypeComposter
	TypeChiseledBookshelf
	TypeJukebox
	TypeCrafter
	TypeDecoratedPot
)

type typeInfo struct {
	name     string
	size     int
	menu     MenuType
	viewable bool
}

var types = [...]typeInfo{
	TypeChest:             {"chest", 27, MenuGeneric9x3, true},
	TypeDispenser:         {"dispenser", 9, MenuGeneric3x3, true},
	TypeDropper:           {"dropper", 9, MenuGeneric3x3, true},
	TypeFurnace:           {"furnace", 3, MenuFurnace, true},
	TypeWorkbench:         {"workbench", 10, MenuCrafting, true},
	TypeCrafting:          {"crafting", 5, MenuNone, false},
	TypeEnchanting:        {"enchanting", 2, MenuEnchantment, true},
	TypeBrewing:           {"brewing", 5, MenuBrewingStand, true},
	TypePlayer:            {"player", 41, MenuGeneric9x4, true},
	TypeCreative:          {"creative", 9, MenuNone, false},
	TypeMerchant:          {"merchant", 3, MenuMerchant, true},
	TypeEnderChest:        {"ender_chest", 27, MenuGeneric9x3, true},
	TypeAnvil:             {"anvil", 3, MenuAnvil, true},
	TypeSmithing:          {"smithing", 4, MenuSmithing, true},
	TypeBeacon:            {"beacon", 1, MenuBeacon, true},
	TypeHopper:            {"hopper", 5, MenuHopper, true},
	TypeShulkerBox:        {"shulker_box", 27, MenuShulkerBox, true},
	TypeBarrel:            {"barrel", 27, MenuGeneric9x3, true},
	TypeBlastFurnace:      {"blast_furnace", 3, MenuBlastFurnace, true},
	TypeLectern:           {"lectern", 1, MenuLectern, true},
	TypeSmoker:            {"smoker", 3, MenuSmoker, true},
	TypeLoom:              {"loom", 4, MenuLoom, true},
	TypeCartography:       {"cartography", 3, MenuCartography, true},
	TypeGrindstone:        {"grindstone", 3, MenuGrindstone, true},
	TypeStonecutter:       {"stonecutter", 2, MenuStonecutter, true},
	TypeComposter:         {"composter", 1, MenuNone, false},
	TypeChiseledBookshelf: {"chiseled_bookshelf", 6, MenuNone, false},
	TypeJukebox:           {"jukebox", 1, MenuNone, false},
	TypeCrafter:           {"crafter", 9, MenuCrafter3x3, true},
	TypeDecoratedPot:      {"decorated_pot", 1, MenuNone, false},
}

func (t Type) valid() bool { return t >= 0 && int(t) < len(types) }

func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("type(%d)", int(t))
	}
	return types[t].name
}

// DefaultSize is the slot count of a freshly created inventory of this type.
func (t Type) DefaultSize() int {
	if !t.valid() {
		return 0
	}
	return types[t].size
}

// Viewable reports whether an inventory of this type can be opened for a viewer.
func (t Type) Viewable() bool { return t.valid() && types[t].viewable }

// MenuType returns the protocol menu used to show this archetype.
func (t Type) MenuType() MenuType {
	if !t.valid() {
		return MenuNone
	}
	return types[t].menu
}

// RendersTitle reports whether clients are guaranteed to draw the title.
// Only chests are.
func (t Type) RendersTitle() bool { return t == TypeChest }

// Functional reports whether opening this type through a GUI builder keeps
// the block's behaviour. Workbenches and enchanting tables built here only
// display items.
func (t Type) Functional() bool {
	return t != TypeWorkbench && t != TypeEnchanting
}

// ParseType accepts archetype names such as "hopper" or "ENDER_CHEST".
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, info := range types {
		if info.name == s {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown inventory type %q", s)
}
