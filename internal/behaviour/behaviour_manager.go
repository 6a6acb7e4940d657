package behaviour

import "time"

// Frame is the per-tick context handed to every behaviour.
type Frame struct {
	Index   uint64
	Elapsed time.Duration // since the loop started; zero while animation is off
	Delta   time.Duration
	Animate bool
}

// Seconds is the elapsed time as float32 seconds, the unit animations use.
func (f Frame) Seconds() float32 {
	return float32(f.Elapsed.Seconds())
}

type Behaviour interface {
	Start()
	Update(frame Frame)
}

type BehaviourWrapper struct {
	Behaviour Behaviour
	started   bool
}

// BehaviourManager runs behaviours in registration order. Start runs once,
// right before a behaviour's first Update.
type BehaviourManager struct {
	behaviours []BehaviourWrapper
}

func NewBehaviourManager() *BehaviourManager {
	return &BehaviourManager{}
}

func (m *BehaviourManager) Add(behaviour Behaviour) {
	if behaviour == nil {
		return
	}
	m.behaviours = append(m.behaviours, BehaviourWrapper{Behaviour: behaviour})
}

func (m *BehaviourManager) Remove(behaviour Behaviour) {
	for i := range m.behaviours {
		if m.behaviours[i].Behaviour == behaviour {
			m.behaviours = append(m.behaviours[:i], m.behaviours[i+1:]...)
			return
		}
	}
}

// Clear removes all behaviours from the manager
func (m *BehaviourManager) Clear() {
	m.behaviours = m.behaviours[:0]
}

func (m *BehaviourManager) Len() int {
	return len(m.behaviours)
}

func (m *BehaviourManager) UpdateAll(frame Frame) {
	for i := range m.behaviours {
		if !m.behaviours[i].started {
			m.behaviours[i].Behaviour.Start()
			m.behaviours[i].started = true
		}
		m.behaviours[i].Behaviour.Update(frame)
	}
}
