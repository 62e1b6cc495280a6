package introspect

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"github.com/pseudomuto/schemata/pkg/catalog"
)

// ErrUnknownDriver is returned when no loader is registered under a driver name.
var ErrUnknownDriver = errors.New("unknown driver")

// Loader reads the metadata of a live database into a catalog.
type Loader interface {
	// Name is the driver name the loader registers under.
	Name() string

	// Load connects to dsn and returns the catalog of every user schema it can see.
	Load(ctx context.Context, dsn string) (*catalog.Catalog, error)
}

var (
	mu       sync.RWMutex
	registry = map[string]Loader{}
)

// Register makes a loader available by name. Registering the same name again
// replaces the previous loader.
func Register(l Loader) {
	mu.Lock()
	defer mu.Unlock()
	registry[l.Name()] = l
}

// Get returns the loader registered as driver.
func Get(driver string) (Loader, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := registry[driver]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDriver, "%q (known: %v)", driver, drivers())
	}

	return l, nil
}

// Drivers returns the registered driver names, sorted.
func Drivers() []string {
	mu.RLock()
	defer mu.RUnlock()
	return drivers()
}

func drivers() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Load reads a catalog through the loader registered as driver.
func Load(ctx context.Context, driver, dsn string) (*catalog.Catalog, error) {
	l, err := Get(driver)
	if err != nil {
		return nil, err
	}

	slog.Debug("introspecting database", "driver", driver)
	cat, err := l.Load(ctx, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to introspect %s database", driver)
	}

	slog.Debug("introspected database", "driver", driver, "catalog", cat.Name, "schemas", cat.Schemas.Len())
	return cat, nil
}
