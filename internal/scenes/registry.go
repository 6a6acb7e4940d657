package scenes

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownVariant = errors.New("unknown scene variant")

// VariantFactory returns a fresh config on every call, so callers may edit it.
type VariantFactory func() SceneConfig

var variants = make(map[string]VariantFactory)

func init() {
	RegisterVariant("lights", LightsVariant)
	RegisterVariant("shadows", ShadowsVariant)
	RegisterVariant("spotlight", SpotlightVariant)
	RegisterVariant("animated", AnimatedVariant)
}

func RegisterVariant(name string, factory VariantFactory) {
	variants[name] = factory
}

func AvailableVariants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func CreateVariant(name string) (SceneConfig, error) {
	factory, exists := variants[name]
	if !exists {
		return SceneConfig{}, fmt.Errorf("%q (available: %v): %w", name, AvailableVariants(), ErrUnknownVariant)
	}
	return factory(), nil
}
