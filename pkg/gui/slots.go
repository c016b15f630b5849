package gui

const (
	SlotsPerRow = 9
	MaxRows     = 6
	ChestSlots  = 27
	MaxSlots    = SlotsPerRow * MaxRows
)

// SlotIndex converts a (row, column) pair of a chest-style grid to a slot index.
func SlotIndex(row, col int) int {
	return row*SlotsPerRow + col
}

// RowCol is the inverse of SlotIndex.
func RowCol(slot int) (row, col int) {
	return slot / SlotsPerRow, slot % SlotsPerRow
}

// BorderSlots returns the outer ring of a chest with the given rows, in
// ascending order.
func BorderSlots(rows int) []int {
	if rows < 1 || rows > MaxRows {
		return nil
	}
	var out []int
	for slot := range rows * SlotsPerRow {
		row, col := RowCol(slot)
		if row == 0 || row == rows-1 || col == 0 || col == SlotsPerRow-1 {
			out = append(out, slot)
		}
	}
	return out
}

// SlotRange returns the slots from first to last inclusive.
func SlotRange(first, last int) []int {
	if last < first {
		return nil
	}
	out := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		out = append(out, i)
	}
	return out
}
