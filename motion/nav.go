package motion

import (
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/nav"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// NavMotion follows A* paths on the navigation grid, requesting a new path
// every RepathInterval seconds while pursuing.
type NavMotion struct {
	grid *nav.Grid

	path        []mgl64.Vec3
	repathTimer float64
}

func NewNavMotion(grid *nav.Grid) *NavMotion {
	return &NavMotion{grid: grid}
}

func (m *NavMotion) Kind() cfg.MotionKind { return cfg.MotionNav }

// Path returns the waypoints still ahead of the agent.
func (m *NavMotion) Path() []mgl64.Vec3 {
	return m.path
}

func (m *NavMotion) Move(e *donburi.Entry, target mgl64.Vec3, speed, dt float64) {
	pos := components.Transform.Get(e).Position
	if components.PlanarDistance(pos, target) <= cfg.Enemy.StoppingDistance {
		m.Halt(e)
		return
	}

	m.repathTimer -= dt
	if m.repathTimer <= 0 || len(m.path) == 0 {
		m.repathTimer = cfg.Enemy.RepathInterval
		if m.grid != nil {
			m.path = m.grid.FindPath(pos, target)
		} else {
			m.path = []mgl64.Vec3{target}
		}
	}

	for len(m.path) > 0 && components.PlanarDistance(pos, m.path[0]) <= cfg.Enemy.WaypointReached {
		m.path = m.path[1:]
	}
	if len(m.path) == 0 {
		return
	}

	next := m.path[0]
	step := speed * dt
	if dist := components.PlanarDistance(pos, next); step > dist {
		step = dist
	}
	Translate(e, PlanarDirection(pos, next).Mul(step))
}

func (m *NavMotion) Halt(e *donburi.Entry) {
	m.path = nil
	m.repathTimer = 0
}
