package swagview

import (
	"sync"

	"github.com/goodluckxu-go/swagview/swagger"
)

// Engine constructs a viewer from its config, *swagger.Engine implements it
type Engine interface {
	Construct(config swagger.Config) (*swagger.UI, error)
}

// Bootstrapper hands swagger.DefaultConfig to the engine exactly once and
// publishes the result under HandleName. Engine errors are returned as they are.
type Bootstrapper struct {
	Engine Engine

	// Global() when nil
	Registry *Registry

	once sync.Once
	ui   *swagger.UI
	err  error
}

func NewBootstrapper(engine Engine, registry *Registry) *Bootstrapper {
	return &Bootstrapper{Engine: engine, Registry: registry}
}

// Bootstrap runs on the first call only, later calls return the first result
func (b *Bootstrapper) Bootstrap() (*swagger.UI, error) {
	b.once.Do(func() {
		ui, err := b.Engine.Construct(swagger.DefaultConfig())
		if err != nil {
			b.err = err
			return
		}
		registry := b.Registry
		if registry == nil {
			registry = Global()
		}
		if err = registry.Publish(HandleName, ui); err != nil {
			b.err = err
			return
		}
		b.ui = ui
	})
	return b.ui, b.err
}
