package scene

import (
	"fmt"
	"sort"
)

var builders = map[string]func() (*Scene, error){
	"cornell":   NewCornellScene,
	"quadlight": NewQuadLightScene,
	"spheres":   NewSpheresScene,
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds and preprocesses the named scene
func New(name string) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	s, err := build()
	if err != nil {
		return nil, err
	}
	if err := s.Preprocess(); err != nil {
		return nil, err
	}
	return s, nil
}
