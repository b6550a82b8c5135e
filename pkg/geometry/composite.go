package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Composite is an ordered group of child models. Nesting depth is
// unbounded; traversal uses an explicit stack instead of recursion.
type Composite struct {
	Children []Model
}

// NewComposite creates a composite of the given children
func NewComposite(children ...Model) *Composite {
	return &Composite{Children: children}
}

func (*Composite) isModel() {}

// Add appends a child model
func (c *Composite) Add(child Model) {
	c.Children = append(c.Children, child)
}

// Hit scans every descendant linearly and returns the hit with the smallest t.
// On equal t the earlier child in order wins.
func (c *Composite) Hit(ray core.Ray) (*material.HitRecord, bool) {
	var closest *material.HitRecord

	Walk(c, func(s *Sphere) {
		if hit, ok := s.Hit(ray); ok && (closest == nil || hit.T < closest.T) {
			closest = hit
		}
	})

	return closest, closest != nil
}

// Walk visits every sphere under m depth-first in child order
func Walk(m Model, visit func(*Sphere)) {
	stack := []Model{m}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch node := node.(type) {
		case *Sphere:
			visit(node)
		case *Composite:
			// Push in reverse so children pop in order
			for i := len(node.Children) - 1; i >= 0; i-- {
				stack = append(stack, node.Children[i])
			}
		}
	}
}

// CountSpheres returns the number of spheres under m
func CountSpheres(m Model) int {
	count := 0
	Walk(m, func(*Sphere) { count++ })
	return count
}
