package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultCacheSize = 64
	DefaultCacheTTL  = 5 * time.Minute
)

var ErrMenuNotFound = errors.New("menu not found")

var extensions = []string{".yaml", ".yml"}

// Loader reads menu files from a directory and caches the parsed result.
// Cached menus expire after the TTL so edited files are picked up again.
type Loader struct {
	Logger *log.Logger

	dir   string
	cache *expirable.LRU[string, *Menu]
}

// NewLoader creates a loader for dir. size <= 0 or ttl <= 0 select the defaults.
func NewLoader(dir string, size int, ttl time.Duration) *Loader {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Loader{
		Logger: log.New(os.Stdout, "", log.LstdFlags),
		dir:    dir,
		cache:  expirable.NewLRU[string, *Menu](size, nil, ttl),
	}
}

// Dir returns the directory the loader reads from.
func (l *Loader) Dir() string { return l.dir }

// Get returns the menu stored in <dir>/<name>.yaml (or .yml).
func (l *Loader) Get(name string) (*Menu, error) {
	if m, ok := l.cache.Get(name); ok {
		return m, nil
	}

	path, err := l.find(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu %s: %w", name, err)
	}

	m, err := Parse(data)
	if err != nil {
		l.Logger.Printf("layout: %s: %v", path, err)
		return nil, fmt.Errorf("menu %s: %w", name, err)
	}

	l.cache.Add(name, m)
	return m, nil
}

// Names lists the menus available in the directory, sorted.
func (l *Loader) Names() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if slices.Contains(extensions, ext) {
			names = append(names, strings.TrimSuffix(entry.Name(), ext))
		}
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

// LoadAll parses every menu in the directory, logging and skipping the ones
// that fail. It returns the number of menus loaded.
func (l *Loader) LoadAll() (int, error) {
	names, err := l.Names()
	if err != nil {
		return 0, err
	}
	loaded := 0
	for _, name := range names {
		if _, err := l.Get(name); err != nil {
			continue
		}
		loaded++
	}
	l.Logger.Printf("layout: loaded %d/%d menus from %s", loaded, len(names), l.dir)
	return loaded, nil
}

// Invalidate drops a cached menu; Purge drops all of them.
func (l *Loader) Invalidate(name string) { l.cache.Remove(name) }

func (l *Loader) Purge() { l.cache.Purge() }

func (l *Loader) find(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrMenuNotFound, name)
	}
	for _, ext := range extensions {
		path := filepath.Join(l.dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to stat menu %s: %w", name, err)
		}
	}
	return "", fmt.Errorf("%w: %q", ErrMenuNotFound, name)
}
