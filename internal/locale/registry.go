package locale

import "sync"

var (
	activeMu sync.RWMutex
	active   = English()
)

// Active returns the catalog currently used for rendering.
func Active() Catalog {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}

// Configure replaces the active catalog wholesale. An incomplete catalog is
// rejected and the previous catalog stays active; the returned error says
// which token was missing. Configure between renders, not concurrently with
// in-flight formatting.
func Configure(c Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}
	activeMu.Lock()
	defer activeMu.Unlock()
	active = c
	return nil
}

// Reset restores the built-in English catalog. Tests defer this the same way
// they defer the config reset.
func Reset() {
	activeMu.Lock()
	defer activeMu.Unlock()
	active = English()
}
