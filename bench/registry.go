package bench

import "github.com/pkg/errors"

type registeredBenchmark struct {
	name string
	fn   Func
}

// Registration order is execution order.
var registry []registeredBenchmark

// Register adds fn to the benchmark list under name. Names must be unique.
func Register(name string, fn Func) error {
	if name == "" {
		return errors.New("benchmark name must not be empty")
	}
	if fn == nil {
		return errors.Errorf("benchmark %s: nil function", name)
	}

	for _, entry := range registry {
		if entry.name == name {
			return errors.Errorf("benchmark %s already registered", name)
		}
	}

	registry = append(registry, registeredBenchmark{name: name, fn: fn})

	return nil
}

// MustRegister is Register for init-time declarations.
func MustRegister(name string, fn Func) {
	if err := Register(name, fn); err != nil {
		panic(err)
	}
}
