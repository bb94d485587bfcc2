package tuning

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]System{}
)

func init() {
	for _, sys := range []System{Equal, Werckmeister3, Just} {
		if err := Register(sys); err != nil {
			panic(err)
		}
	}
}

// Register makes sys available to Lookup under sys.Name().
func Register(sys System) error {
	if sys == nil || sys.Name() == "" {
		return fmt.Errorf("tuning: cannot register unnamed system")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[sys.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, sys.Name())
	}
	registry[sys.Name()] = sys
	return nil
}

// Lookup returns the system registered under name.
func Lookup(name string) (System, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	sys, ok := registry[name]
	return sys, ok
}

// Names lists registered systems in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
