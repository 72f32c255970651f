package wiring

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"

	"masquerade/domain/interfaces"
)

var (
	providersMu sync.RWMutex
	providers   []namedProvider
)

type namedProvider struct {
	name     string
	provider interfaces.ComponentConfig
}

// RegisterProvider makes a component provider available to every
// Components created afterwards. It panics if the provider is nil or the
// name is taken. Usually called from an init function.
func RegisterProvider(name string, p interfaces.ComponentConfig) {
	providersMu.Lock()
	defer providersMu.Unlock()

	if p == nil {
		panic("wiring: RegisterProvider provider is nil")
	}
	for _, np := range providers {
		if np.name == name {
			panic("wiring: RegisterProvider called twice for provider " + name)
		}
	}
	providers = append(providers, namedProvider{name: name, provider: p})
}

// Providers returns the names of registered providers in registration order
func Providers() []string {
	providersMu.RLock()
	defer providersMu.RUnlock()

	names := make([]string, 0, len(providers))
	for _, np := range providers {
		names = append(names, np.name)
	}
	return names
}

func registeredProviders() []namedProvider {
	providersMu.RLock()
	defer providersMu.RUnlock()

	out := make([]namedProvider, len(providers))
	copy(out, providers)
	return out
}

// ProviderFunc adapts a function to interfaces.ComponentConfig
type ProviderFunc func(d interfaces.Driver) (map[reflect.Type]interfaces.Factory, error)

// Components calls f(d)
func (f ProviderFunc) Components(d interfaces.Driver) (map[reflect.Type]interfaces.Factory, error) {
	return f(d)
}

// loadProviders merges the defaults, then every provider in order. Loading
// stops at the first failing provider; entries already merged stay.
func loadProviders(log logrus.FieldLogger, reg *Registry, d interfaces.Driver, defaults interfaces.ComponentConfig, extra []namedProvider) error {
	if defaults != nil {
		m, err := contribute(defaults, d)
		if err != nil {
			return fmt.Errorf("failed to load default components: %w", err)
		}
		reg.Merge(m)
	}

	for _, np := range extra {
		m, err := contribute(np.provider, d)
		if err != nil {
			log.WithError(err).WithField("provider", np.name).Error("Unable to load component provider")
			return nil
		}
		reg.Merge(m)
		log.WithFields(logrus.Fields{
			"provider":   np.name,
			"components": len(m),
		}).Debug("Component provider loaded")
	}
	return nil
}

func contribute(p interfaces.ComponentConfig, d interfaces.Driver) (m map[reflect.Type]interfaces.Factory, err error) {
	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = fmt.Errorf("provider panicked: %v", r)
		}
	}()
	return p.Components(d)
}
