package renderer

import "github.com/go-gl/mathgl/mgl32"

// Node is anything that can be attached to a Scene.
type Node interface {
	NodeName() string
}

// Scene is the root of the graph handed to Render. Children keep insertion
// order and are never duplicated.
type Scene struct {
	Background mgl32.Vec3
	children   []Node
}

func NewScene() *Scene {
	return &Scene{}
}

// Add attaches nodes to the scene. Nodes already attached are ignored.
func (s *Scene) Add(nodes ...Node) {
	for _, node := range nodes {
		if node == nil || s.Contains(node) {
			continue
		}
		s.children = append(s.children, node)
	}
}

func (s *Scene) Remove(node Node) {
	for i, n := range s.children {
		if n == node {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

func (s *Scene) Contains(node Node) bool {
	for _, n := range s.children {
		if n == node {
			return true
		}
	}
	return false
}

func (s *Scene) Children() []Node {
	return s.children
}

func (s *Scene) Lights() []*Light {
	var lights []*Light
	for _, n := range s.children {
		if l, ok := n.(*Light); ok {
			lights = append(lights, l)
		}
	}
	return lights
}

func (s *Scene) Meshes() []*Mesh {
	var meshes []*Mesh
	for _, n := range s.children {
		if m, ok := n.(*Mesh); ok {
			meshes = append(meshes, m)
		}
	}
	return meshes
}

func (s *Scene) Helpers() []*Helper {
	var helpers []*Helper
	for _, n := range s.children {
		if h, ok := n.(*Helper); ok {
			helpers = append(helpers, h)
		}
	}
	return helpers
}

// FindNode returns the first child with the given name.
func (s *Scene) FindNode(name string) Node {
	for _, n := range s.children {
		if n.NodeName() == name {
			return n
		}
	}
	return nil
}
