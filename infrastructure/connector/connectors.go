// Package connector builds clients for remote service contracts. A contract
// is a struct of function fields; the factories fill every field with a
// dispatcher forwarding to JMX (through Jolokia) or to a REST API
// protected by OAuth2.
package connector

import (
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"masquerade/domain/entities"
	"masquerade/domain/interfaces"
)

const (
	DefaultJmxAddress  = ":7777"
	DefaultRestBaseURL = "http://localhost:8080/app/rest/v2/"
	DefaultRestUser    = "admin"
	DefaultRestPass    = "admin"

	defaultTokenTTL = 10 * time.Minute
)

// HandlerFactory creates the call handler of one JMX object
type HandlerFactory func(host entities.JmxHost, objectName string) interfaces.CallHandler

// TokenServiceFactory creates the token service of one REST host
type TokenServiceFactory func(host entities.RestAPIHost) interfaces.TokenService

// Connectors creates remote contract clients
type Connectors struct {
	jmxHost  entities.JmxHost
	restHost entities.RestAPIHost
	client   *http.Client
	log      logrus.FieldLogger
	handlers HandlerFactory
	tokens   TokenServiceFactory
	cache    *gocache.Cache
	tokenTTL time.Duration
}

// Option configures Connectors
type Option func(*Connectors)

// WithJmxHost sets the default JMX host
func WithJmxHost(host entities.JmxHost) Option {
	return func(c *Connectors) {
		c.jmxHost = host
	}
}

// WithRestHost sets the default REST host
func WithRestHost(host entities.RestAPIHost) Option {
	return func(c *Connectors) {
		c.restHost = host
	}
}

// WithHTTPClient sets the client used by the default transports
func WithHTTPClient(client *http.Client) Option {
	return func(c *Connectors) {
		c.client = client
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Connectors) {
		c.log = log
	}
}

// WithHandlerFactory replaces the Jolokia transport
func WithHandlerFactory(f HandlerFactory) Option {
	return func(c *Connectors) {
		c.handlers = f
	}
}

// WithTokenService replaces the OAuth2 token exchange
func WithTokenService(f TokenServiceFactory) Option {
	return func(c *Connectors) {
		c.tokens = f
	}
}

// WithTokenCache keeps access tokens for ttl, or for the lifetime the
// server reports when it is shorter. Zero disables caching.
func WithTokenCache(ttl time.Duration) Option {
	return func(c *Connectors) {
		if ttl <= 0 {
			c.cache, c.tokenTTL = nil, 0
			return
		}
		c.cache, c.tokenTTL = gocache.New(ttl, 2*ttl), ttl
	}
}

// New returns connectors for the default local hosts
func New(opts ...Option) *Connectors {
	c := &Connectors{
		jmxHost:  entities.JmxHost{Address: DefaultJmxAddress},
		restHost: entities.NewRestAPIHost(DefaultRestUser, DefaultRestPass, DefaultRestBaseURL),
		client:   &http.Client{Timeout: 30 * time.Second},
		cache:    gocache.New(defaultTokenTTL, 2*defaultTokenTTL),
		tokenTTL: defaultTokenTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logrus.StandardLogger()
	}
	if c.client == nil {
		c.client = http.DefaultClient
	}
	if c.handlers == nil {
		c.handlers = func(host entities.JmxHost, objectName string) interfaces.CallHandler {
			return NewJolokiaHandler(c.client, host, objectName)
		}
	}
	if c.tokens == nil {
		c.tokens = func(host entities.RestAPIHost) interfaces.TokenService {
			return NewOAuthTokenService(c.client, host)
		}
	}
	return c
}

// JmxHost returns the default JMX host
func (c *Connectors) JmxHost() entities.JmxHost {
	return c.jmxHost
}

// RestHost returns the default REST host
func (c *Connectors) RestHost() entities.RestAPIHost {
	return c.restHost
}

// Handler returns the call handler of objectName on the default JMX host
func (c *Connectors) Handler(objectName string) interfaces.CallHandler {
	return c.handlers(c.jmxHost, objectName)
}
