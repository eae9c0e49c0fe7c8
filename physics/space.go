// Package physics is the resolv-backed collision world. It works in world
// units with y pointing up and converts to resolv's pixel grid (y down) at
// the edges.
package physics

import (
	stdmath "math"

	"github.com/automoto/swamp-preachers/config"
	"github.com/automoto/swamp-preachers/controller"
	"github.com/automoto/swamp-preachers/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// Resolv tags for level geometry and bodies
const (
	TagSolid     = "solid"
	TagGround    = "ground"
	TagWall      = "wall"
	TagClimbable = "climbable"
	TagDeadZone  = "deadzone"
	TagBody      = "body"
)

// Space owns the resolv space, the level geometry and every Body in it.
type Space struct {
	space  *resolv.Space
	cfg    *config.PhysicsConfig
	ppu    float64
	size   math.Vec2
	probe  *resolv.Object
	bodies []*Body
}

// NewSpace creates a space covering [0, size] in world units. A nil cfg
// uses the live physics configuration.
func NewSpace(size math.Vec2, ppu float64, cellSize int, cfg *config.PhysicsConfig) *Space {
	if ppu <= 0 {
		ppu = 16
	}
	if cellSize <= 0 {
		cellSize = 16
	}
	if cfg == nil {
		cfg = &config.Physics
	}

	w := int(stdmath.Ceil(size.X * ppu))
	h := int(stdmath.Ceil(size.Y * ppu))
	s := &Space{
		space: resolv.NewSpace(w, h, cellSize, cellSize),
		cfg:   cfg,
		ppu:   ppu,
		size:  size,
	}

	// Reused for every overlap query.
	s.probe = resolv.NewObject(0, 0, 1, 1)
	s.space.Add(s.probe)
	return s
}

// Size returns the world size of the space.
func (s *Space) Size() math.Vec2 { return s.size }

func (s *Space) PixelsPerUnit() float64 { return s.ppu }

// AddSolid adds a static rectangle on the given layers. Ground and wall
// geometry blocks bodies; climbable-only geometry does not.
func (s *Space) AddSolid(r gamemath.Rect, layers controller.Layer) *resolv.Object {
	tags := layerTags(layers)
	if layers&(controller.LayerGround|controller.LayerWall) != 0 {
		tags = append(tags, TagSolid)
	}
	return s.addStatic(r, tags...)
}

// AddArea adds a non-blocking trigger rectangle, found by Body.Overlaps.
func (s *Space) AddArea(r gamemath.Rect, tag string) *resolv.Object {
	return s.addStatic(r, tag)
}

func (s *Space) addStatic(r gamemath.Rect, tags ...string) *resolv.Object {
	x, y, w, h := s.toPixels(r)
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.Data = r
	s.space.Add(obj)
	return obj
}

// OverlapCircle reports whether a circle touches geometry on any layer in
// mask.
func (s *Space) OverlapCircle(center math.Vec2, radius float64, mask controller.Layer) bool {
	box := gamemath.Rect{X: center.X - radius, Y: center.Y - radius, W: radius * 2, H: radius * 2}
	return s.query(box, layerTags(mask), func(r gamemath.Rect) bool {
		return gamemath.CircleIntersectsRect(center, radius, r)
	})
}

// OverlapBox reports whether a box strictly overlaps geometry on any layer
// in mask.
func (s *Space) OverlapBox(center, size math.Vec2, mask controller.Layer) bool {
	box := gamemath.RectFromCenter(center, size)
	return s.query(box, layerTags(mask), func(r gamemath.Rect) bool {
		return gamemath.RectsOverlap(box, r)
	})
}

// query runs a resolv broadphase around box and confirms each candidate
// with hit.
func (s *Space) query(box gamemath.Rect, tags []string, hit func(gamemath.Rect) bool) bool {
	if len(tags) == 0 {
		return false
	}
	// Grow by one pixel so geometry that only touches the box lands in the
	// checked cells.
	pad := 1 / s.ppu
	grown := gamemath.Rect{X: box.X - pad, Y: box.Y - pad, W: box.W + pad*2, H: box.H + pad*2}
	s.probe.X, s.probe.Y, s.probe.W, s.probe.H = s.toPixels(grown)
	s.probe.Update()

	check := s.probe.Check(0, 0, tags...)
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		if r, ok := obj.Data.(gamemath.Rect); ok && hit(r) {
			return true
		}
	}
	return false
}

// NewBody adds a dynamic body at pos with gravity and collision enabled.
func (s *Space) NewBody(pos math.Vec2, collider controller.Collider) *Body {
	b := &Body{
		space:     s,
		pos:       pos,
		collider:  collider,
		gravity:   true,
		collision: true,
	}
	x, y, w, h := s.toPixels(b.Bounds())
	b.obj = resolv.NewObject(x, y, w, h, TagBody)
	b.obj.Data = b
	s.space.Add(b.obj)
	s.bodies = append(s.bodies, b)
	return b
}

// Remove takes a body out of the space. Removing twice is a no-op.
func (s *Space) Remove(b *Body) {
	for i, other := range s.bodies {
		if other == b {
			s.space.Remove(b.obj)
			s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
			return
		}
	}
}

// Step advances every body by dt seconds.
func (s *Space) Step(dt float64) {
	for _, b := range s.bodies {
		b.Step(dt)
	}
}

// toPixels converts a world rectangle into resolv's y-down pixel space.
func (s *Space) toPixels(r gamemath.Rect) (x, y, w, h float64) {
	return r.X * s.ppu, (s.size.Y - r.Y - r.H) * s.ppu, r.W * s.ppu, r.H * s.ppu
}

func layerTags(mask controller.Layer) []string {
	var tags []string
	if mask&controller.LayerGround != 0 {
		tags = append(tags, TagGround)
	}
	if mask&controller.LayerWall != 0 {
		tags = append(tags, TagWall)
	}
	if mask&controller.LayerClimbable != 0 {
		tags = append(tags, TagClimbable)
	}
	return tags
}
