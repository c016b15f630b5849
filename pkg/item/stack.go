package item

import "github.com/go-mclib/data/pkg/data/items"

// FromStack starts a builder from a stack decoded off the wire, keeping its
// material and count. Component data is not carried over.
func FromStack(stack *items.ItemStack) *Builder {
	if stack == nil || stack.IsEmpty() {
		return New(Air)
	}
	b := New(Material(items.ItemName(stack.ID)))
	if n := int(stack.Count); n > 0 {
		b.item.Amount = n
	}
	return b
}
