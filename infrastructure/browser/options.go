package browser

import (
	"time"

	"github.com/sirupsen/logrus"

	"masquerade/infrastructure/storage"
)

const (
	DefaultTimeout      = 4 * time.Second
	DefaultPollInterval = 100 * time.Millisecond
	DefaultDriverPort   = 9515
)

// Options configure a driver
type Options struct {
	Headless     bool
	Timeout      time.Duration
	PollInterval time.Duration

	// SlowMo delays playwright operations, in milliseconds
	SlowMo float64

	// DriverPath and ChromeBinary override chromedriver discovery
	DriverPath   string
	ChromeBinary string
	Port         int

	// State persists browser sessions between runs, nil disables it
	State *storage.BrowserState

	Logger logrus.FieldLogger
}

// DefaultOptions returns headless options with the default timeouts
func DefaultOptions() Options {
	return Options{
		Headless:     true,
		Timeout:      DefaultTimeout,
		PollInterval: DefaultPollInterval,
		Port:         DefaultDriverPort,
	}
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.Port == 0 {
		o.Port = DefaultDriverPort
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return o
}
