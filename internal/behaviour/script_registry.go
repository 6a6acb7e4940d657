package behaviour

import (
	"sort"

	"LightLab/internal/renderer"
)

// Params configures a registered behaviour. Each behaviour reads the fields it
// understands.
type Params struct {
	Radius       float32 `json:"radius"`
	Amplitude    float32 `json:"amplitude"`
	Speed        float32 `json:"speed"`
	BobFrequency float32 `json:"bobFrequency"`
}

type Constructor func(mesh *renderer.Mesh, params Params) Behaviour

var registry = make(map[string]Constructor)

func init() {
	Register("orbit-bounce", func(mesh *renderer.Mesh, params Params) Behaviour {
		return NewOrbitBounce(mesh, params)
	})
}

func Register(name string, constructor Constructor) {
	registry[name] = constructor
}

func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds the named behaviour, or returns nil if none is registered.
func Create(name string, mesh *renderer.Mesh, params Params) Behaviour {
	if constructor, exists := registry[name]; exists {
		return constructor(mesh, params)
	}
	return nil
}

func Exists(name string) bool {
	_, exists := registry[name]
	return exists
}
