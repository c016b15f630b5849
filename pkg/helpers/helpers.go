package helpers

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/JWeinelt/codelib/pkg/gui"
	"github.com/JWeinelt/codelib/pkg/layout"
	"github.com/JWeinelt/codelib/pkg/preview"
	"github.com/joho/godotenv"
)

// EnvLayoutDir names the environment variable holding the default layout
// directory. It may also be set in a .env file in the working directory.
const EnvLayoutDir = "CODELIB_LAYOUT_DIR"

// Flags holds common CLI flags for the preview tools.
type Flags struct {
	Dir       string
	Menu      string
	List      bool
	Verbose   bool
	Terminal  bool
	CacheSize int
	CacheTTL  time.Duration
}

// RegisterFlags loads .env and registers the standard CLI flags on the
// default flag set.
func RegisterFlags(f *Flags) {
	_ = godotenv.Load()

	dir := os.Getenv(EnvLayoutDir)
	if dir == "" {
		dir = "layouts"
	}
	flag.StringVar(&f.Dir, "d", dir, "layout directory (default from $"+EnvLayoutDir+")")
	flag.StringVar(&f.Menu, "m", "", "menu to open")
	flag.BoolVar(&f.List, "l", false, "list menus and exit")
	flag.BoolVar(&f.Verbose, "v", false, "verbose logging")
	flag.BoolVar(&f.Terminal, "t", true, "open menus in the terminal preview")
	flag.IntVar(&f.CacheSize, "cache", layout.DefaultCacheSize, "max cached menus")
	flag.DurationVar(&f.CacheTTL, "ttl", layout.DefaultCacheTTL, "cache lifetime of a parsed menu")
}

// NewLogger returns the logger used by the tools; quiet unless verbose.
func NewLogger(f Flags) *log.Logger {
	if !f.Verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

// NewLoader creates a layout loader from parsed flags.
func NewLoader(f Flags) *layout.Loader {
	l := layout.NewLoader(f.Dir, f.CacheSize, f.CacheTTL)
	l.Logger = NewLogger(f)
	return l
}

// NewViewer returns the terminal preview, or a viewer that prints the
// inventory to stdout when the preview is disabled. The printed layout is the
// output of that mode, so it does not depend on -v.
func NewViewer(f Flags) gui.Viewer {
	if f.Terminal {
		v := preview.New()
		v.Logger = NewLogger(f)
		return v
	}
	return PrintViewer(log.New(os.Stdout, "", 0))
}

// PrintViewer writes the title and every non-filler slot of an opened
// inventory to out.
func PrintViewer(out *log.Logger) gui.ViewerFunc {
	return func(inv *gui.Inventory) error {
		out.Printf("open %q: %s (menu %d), %d slots", inv.Title().Text, inv.Type(), inv.MenuType(), inv.Size())
		for i, it := range inv.Items() {
			if !it.IsEmpty() && it.Name() != gui.FillerName {
				out.Printf("  slot %2d: %s x%d (%s)", i, it.Name(), it.Amount, it.Material)
			}
		}
		return nil
	}
}

// Open shows the built inventory and exits on failure.
func Open(b *gui.Builder, v gui.Viewer) {
	if _, err := b.OpenForPlayer(v); err != nil {
		log.Fatal(err)
	}
}
