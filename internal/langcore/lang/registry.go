package lang

import (
	"fmt"
	"sync"

	"github.com/polyfront/polyfront/internal/langcore/logging"
)

// registry mirrors the shape of pulumi's encoding.Marshalers map (one
// instance per key, looked up by a driver that only knows the key) but
// guards it with a mutex: unlike Marshalers, which is populated once in an
// init() and read thereafter, LangId factories may be registered by
// plugins loaded after start-up, so concurrent Register/Lookup must be
// safe.
var (
	registryMu sync.RWMutex
	registry   = map[LangId]Factory{}
)

// Register installs f as the Factory for its own LangName(). Registering
// the same LangId twice replaces the previous Factory; this is intentional
// so a driver can override a built-in illustrative factory (e.g. GoFactory)
// with a hand-written one without touching this package.
func Register(f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[f.LangName()] = f
}

// Lookup returns the Factory registered for id, or ok=false if none is.
func Lookup(id LangId) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[id]
	if ok {
		logging.Factory(id)
	}
	return f, ok
}

// MustLookup is a convenience for callers that consider a missing factory
// a programming error rather than a recoverable condition.
func MustLookup(id LangId) Factory {
	f, ok := Lookup(id)
	if !ok {
		panic(fmt.Sprintf("lang: no factory registered for %v", id))
	}
	return f
}

func init() {
	Register(PythonFactory{})
	Register(GoFactory{})
	Register(DFactory{})
}
