package behaviour

import (
	"testing"

	"LightLab/internal/renderer"
)

type MockBehaviour struct {
	starts  int
	updates int
	last    Frame
}

func (m *MockBehaviour) Start() { m.starts++ }

func (m *MockBehaviour) Update(frame Frame) {
	m.updates++
	m.last = frame
}

func withRegistry(t *testing.T) {
	saved := registry
	registry = make(map[string]Constructor)
	t.Cleanup(func() { registry = saved })
}

func TestRegister(t *testing.T) {
	withRegistry(t)

	Register("TestBehaviour", func(*renderer.Mesh, Params) Behaviour {
		return &MockBehaviour{}
	})

	names := Available()

	if len(names) != 1 {
		t.Errorf("Expected 1 behaviour, got %d", len(names))
	}

	if names[0] != "TestBehaviour" {
		t.Errorf("Expected 'TestBehaviour', got '%s'", names[0])
	}
}

func TestCreateNotFound(t *testing.T) {
	withRegistry(t)

	if b := Create("NonExistent", nil, Params{}); b != nil {
		t.Error("Create should return nil for an unknown behaviour")
	}
}

func TestAvailableSorted(t *testing.T) {
	withRegistry(t)

	Register("Zebra", func(*renderer.Mesh, Params) Behaviour { return &MockBehaviour{} })
	Register("Alpha", func(*renderer.Mesh, Params) Behaviour { return &MockBehaviour{} })
	Register("Middle", func(*renderer.Mesh, Params) Behaviour { return &MockBehaviour{} })

	names := Available()

	if len(names) != 3 {
		t.Fatalf("Expected 3 behaviours, got %d", len(names))
	}
	if names[0] != "Alpha" || names[1] != "Middle" || names[2] != "Zebra" {
		t.Errorf("Expected sorted names, got %v", names)
	}
}

func TestOrbitBounceRegistered(t *testing.T) {
	mesh := renderer.NewMesh("sphere", nil, renderer.NewStandardMaterial())

	b := Create("orbit-bounce", mesh, Params{Radius: 1.5, Amplitude: 1})
	if _, ok := b.(*OrbitBounce); !ok {
		t.Fatalf("Expected *OrbitBounce, got %T", b)
	}
}
