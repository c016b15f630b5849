package preview

import (
	"fmt"
	"log"
	"os"

	"github.com/JWeinelt/codelib/pkg/gui"
	tea "github.com/charmbracelet/bubbletea"
)

// Viewer opens inventories in an interactive terminal program. It blocks
// until the user closes the preview.
type Viewer struct {
	Logger *log.Logger
	// Options are passed to tea.NewProgram.
	Options []tea.ProgramOption
}

// New creates a viewer using the alternate screen.
func New() *Viewer {
	return &Viewer{
		Logger:  log.New(os.Stdout, "", log.LstdFlags),
		Options: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// OpenInventory runs the preview for inv.
func (v *Viewer) OpenInventory(inv *gui.Inventory) error {
	m := NewModel(inv)
	if _, err := tea.NewProgram(m, v.Options...).Run(); err != nil {
		return fmt.Errorf("failed to run preview: %w", err)
	}
	if v.Logger != nil {
		v.Logger.Printf("preview: closed %q (%s) at slot %d", inv.Title().Text, inv.Type(), m.Cursor())
	}
	return nil
}

var _ gui.Viewer = (*Viewer)(nil)
