package gui

import (
	"errors"
	"fmt"

	"github.com/JWeinelt/codelib/pkg/item"
	"github.com/JWeinelt/codelib/pkg/metrics"
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"
)

// FillerName is the display name given to background items; a single space
// hides the tooltip title.
const FillerName = " "

// Builder populates a single inventory through chained calls. Like
// item.Builder it keeps the first error and ignores later calls.
type Builder struct {
	inv     *Inventory
	err     error
	counted bool
}

// NewChest creates a chest menu with rows*9 slots.
func NewChest(title string, rows int) (*Builder, error) {
	return NewChestText(ns.TextComponent{Text: title}, rows)
}

// NewChestText is NewChest with a rich-text title.
func NewChestText(title ns.TextComponent, rows int) (*Builder, error) {
	if rows < 1 || rows > MaxRows {
		metrics.BuilderErrors.WithLabelValues(metrics.BuilderGUI, "invalid_rows").Inc()
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRows, rows)
	}
	return &Builder{inv: newInventory(TypeChest, chestMenu(rows), title, rows*SlotsPerRow)}, nil
}

// New creates an inventory of the given archetype with its default size.
// Clients only guarantee to render the title for chests. Workbench and
// enchanting inventories created this way do not craft or enchant.
func New(t Type, title string) (*Builder, error) {
	return NewText(t, ns.TextComponent{Text: title})
}

// NewText is New with a rich-text title.
func NewText(t Type, title ns.TextComponent) (*Builder, error) {
	if !t.Viewable() {
		metrics.BuilderErrors.WithLabelValues(metrics.BuilderGUI, "not_viewable").Inc()
		return nil, fmt.Errorf("%w: %s", ErrNotViewable, t)
	}
	return &Builder{inv: newInventory(t, t.MenuType(), title, t.DefaultSize())}, nil
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error { return b.err }

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
		r := "item"
		if errors.Is(err, ErrSlotOutOfRange) {
			r = "slot_out_of_range"
		}
		metrics.BuilderErrors.WithLabelValues(metrics.BuilderGUI, r).Inc()
	}
	return b
}

// Slot puts it into slot index, replacing whatever was there.
func (b *Builder) Slot(index int, it *item.Item) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.inv.SetItem(index, it); err != nil {
		return b.fail(err)
	}
	return b
}

// SlotBuilder builds ib and puts the result into slot index.
func (b *Builder) SlotBuilder(index int, ib *item.Builder) *Builder {
	if b.err != nil {
		return b
	}
	it, err := ib.Build()
	if err != nil {
		return b.fail(fmt.Errorf("slot %d: %w", index, err))
	}
	return b.Slot(index, it)
}

// Slots fills every listed slot with its own filler item of the material.
func (b *Builder) Slots(material item.Material, indices ...int) *Builder {
	for _, i := range indices {
		b.SlotBuilder(i, item.New(material).DisplayName(FillerName))
	}
	return b
}

// Fill puts filler items of the material into every empty slot.
func (b *Builder) Fill(material item.Material) *Builder {
	for i := range b.inv.Size() {
		if b.inv.Item(i).IsEmpty() {
			b.Slots(material, i)
		}
	}
	return b
}

// Build returns the inventory without showing it.
func (b *Builder) Build() (*Inventory, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.counted {
		b.counted = true
		metrics.GUIsBuilt.WithLabelValues(b.inv.typ.String()).Inc()
	}
	return b.inv, nil
}

// OpenForPlayer shows the inventory to v and returns it.
func (b *Builder) OpenForPlayer(v Viewer) (*Inventory, error) {
	inv, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := v.OpenInventory(inv); err != nil {
		return nil, fmt.Errorf("open %s for viewer: %w", inv.typ, err)
	}
	metrics.GUIsOpened.WithLabelValues(inv.typ.String()).Inc()
	return inv, nil
}
