package gui

import (
	"errors"
	"fmt"

	"github.com/JWeinelt/codelib/pkg/item"
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
)

var (
	ErrSlotOutOfRange = errors.New("slot out of range")
	ErrNotViewable    = errors.New("inventory type cannot be viewed")
	ErrInvalidRows    = errors.New("chest rows must be between 1 and 6")
)

// Inventory is a titled, fixed-size slot container.
type Inventory struct {
	typ   Type
	menu  MenuType
	title ns.TextComponent
	slots []*item.Item
}

func newInventory(t Type, menu MenuType, title ns.TextComponent, size int) *Inventory {
	return &Inventory{
		typ:   t,
		menu:  menu,
		title: title,
		slots: make([]*item.Item, size),
	}
}

func (inv *Inventory) Type() Type { return inv.typ }

// MenuType returns the protocol menu the inventory is shown with. For chests
// it follows the row count.
func (inv *Inventory) MenuType() MenuType { return inv.menu }

func (inv *Inventory) Title() ns.TextComponent { return inv.title }

// Size returns the number of slots.
func (inv *Inventory) Size() int { return len(inv.slots) }

// Rows returns the number of 9-wide rows needed to draw the inventory.
func (inv *Inventory) Rows() int {
	return (len(inv.slots) + SlotsPerRow - 1) / SlotsPerRow
}

// Item returns the item at index, or nil if the slot is empty or out of range.
func (inv *Inventory) Item(index int) *item.Item {
	if index < 0 || index >= len(inv.slots) {
		return nil
	}
	return inv.slots[index]
}

// Items returns a copy of the slot array. Empty slots are nil.
func (inv *Inventory) Items() []*item.Item {
	out := make([]*item.Item, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// SetItem stores it at index, overwriting the slot. A nil item clears it.
func (inv *Inventory) SetItem(index int, it *item.Item) error {
	if index < 0 || index >= len(inv.slots) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrSlotOutOfRange, index, len(inv.slots))
	}
	inv.slots[index] = it
	return nil
}

// FirstEmpty returns the first empty slot index, or -1 when full.
func (inv *Inventory) FirstEmpty() int {
	for i, it := range inv.slots {
		if it.IsEmpty() {
			return i
		}
	}
	return -1
}
