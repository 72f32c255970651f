// Package wiring resolves contract types into live, instrumented component
// trees. A Components context holds the driver, the registry of component
// factories and the proxy factory, and wires interfaces through the
// registry and composite structs field by field.
package wiring

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"masquerade/application/proxy"
	"masquerade/domain/by"
	"masquerade/domain/interfaces"
)

// Components is the wiring context
type Components struct {
	log      *logrus.Entry
	driver   interfaces.Driver
	registry *Registry
	proxies  *proxy.Factory
	session  string
}

type options struct {
	log            logrus.FieldLogger
	providers      []namedProvider
	proxies        *proxy.Factory
	skipRegistered bool
}

// Option configures New
type Option func(*options)

// WithLogger sets the logger used for wiring and proxy call logs
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithProviders appends providers loaded after the registered ones
func WithProviders(p ...interfaces.ComponentConfig) Option {
	return func(o *options) {
		for _, cfg := range p {
			if cfg == nil {
				continue
			}
			o.providers = append(o.providers, namedProvider{
				name:     fmt.Sprintf("%T", cfg),
				provider: cfg,
			})
		}
	}
}

// WithProxyFactory replaces the proxy factory, e.g. to add custom wrappers
func WithProxyFactory(f *proxy.Factory) Option {
	return func(o *options) {
		o.proxies = f
	}
}

// WithoutRegisteredProviders ignores providers added with RegisterProvider
func WithoutRegisteredProviders() Option {
	return func(o *options) {
		o.skipRegistered = true
	}
}

// New creates a wiring context. The defaults are loaded first, then the
// registered providers and the ones passed with WithProviders.
func New(d interfaces.Driver, defaults interfaces.ComponentConfig, opts ...Option) (*Components, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logrus.StandardLogger()
	}

	session := uuid.NewString()
	entry := o.log.WithField("session", session)
	if o.proxies == nil {
		o.proxies = proxy.NewFactory(entry)
	}

	c := &Components{
		log:      entry,
		driver:   d,
		registry: NewRegistry(),
		proxies:  o.proxies,
		session:  session,
	}

	var all []namedProvider
	if !o.skipRegistered {
		all = registeredProviders()
	}
	all = append(all, o.providers...)

	if err := loadProviders(entry, c.registry, d, defaults, all); err != nil {
		return nil, err
	}

	entry.WithField("components", c.registry.Len()).Debug("Component registry initialized")
	return c, nil
}

// Driver returns the driver components are resolved against
func (c *Components) Driver() interfaces.Driver {
	return c.driver
}

// Registry returns the component registry
func (c *Components) Registry() *Registry {
	return c.registry
}

// Proxies returns the proxy factory
func (c *Components) Proxies() *proxy.Factory {
	return c.proxies
}

// Session returns the unique id of this context
func (c *Components) Session() string {
	return c.session
}

// Logger returns the context logger
func (c *Components) Logger() *logrus.Entry {
	return c.log
}

// Register adds or replaces the factory of contract T
func Register[T any](c *Components, factory func(l by.Locator) T) {
	c.registry.Register(reflect.TypeFor[T](), func(l by.Locator) any {
		return factory(l)
	})
}

// Proxy instruments target as contract T
func Proxy[T any](c *Components, target T) T {
	if p, ok := c.proxies.Proxy(reflect.TypeFor[T](), target).(T); ok {
		return p
	}
	return target
}
