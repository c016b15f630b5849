package gui

// Viewer is the player session an inventory is shown to. Closing whatever
// the viewer had open before is the viewer's responsibility.
type Viewer interface {
	OpenInventory(inv *Inventory) error
}

// ViewerFunc adapts a function to the Viewer interface.
type ViewerFunc func(inv *Inventory) error

func (f ViewerFunc) OpenInventory(inv *Inventory) error { return f(inv) }
