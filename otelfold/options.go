package otelfold

import "go.opentelemetry.io/otel/metric"

// Option configures Wrap.
type Option func(*config)

type config struct {
	provider metric.MeterProvider
	name     string
}

// WithMeterProvider sets the meter provider used to create the instruments.
// If not provided, the global provider is used.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(c *config) {
		if provider != nil {
			c.provider = provider
		}
	}
}

// WithName attaches a container name to every measurement as the
// "container" attribute, distinguishing multiple instrumented maps that
// share a provider. Defaults to "foldmap".
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}
