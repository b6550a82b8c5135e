package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestComposite_NearestHitRegardlessOfOrder(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	mid := material.NewLambertian(core.NewVec3(0, 1, 0))
	far := material.NewLambertian(core.NewVec3(0, 0, 1))

	spheres := []*Sphere{
		NewSphere(core.NewVec3(0, 0, -2), 1.0, near),  // hit at t=1
		NewSphere(core.NewVec3(0, 0, -2.5), 1.0, mid), // hit at t=1.5
		NewSphere(core.NewVec3(0, 0, -5), 2.0, far),   // hit at t=3
	}

	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}, {2, 0, 1}}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for _, order := range orders {
		composite := NewComposite()
		for _, idx := range order {
			composite.Add(spheres[idx])
		}

		hit, isHit := composite.Hit(ray)
		if !isHit {
			t.Fatalf("Order %v: expected hit", order)
		}
		if math.Abs(hit.T-1.0) > 1e-9 {
			t.Errorf("Order %v: expected t=1, got %f", order, hit.T)
		}
		if hit.Material != material.Material(near) {
			t.Errorf("Order %v: expected nearest sphere's material", order)
		}
	}
}

func TestComposite_Nested(t *testing.T) {
	target := material.NewMetal(core.NewVec3(1, 1, 1), 0)
	other := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	inner := NewComposite(NewSphere(core.NewVec3(0, 0, -3), 1, target))
	world := NewComposite(
		NewSphere(core.NewVec3(0, 0, -10), 1, other),
		NewComposite(NewComposite(inner)),
		NewSphere(core.NewVec3(5, 0, -3), 1, other),
	)

	hit, isHit := world.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("Expected hit on nested sphere")
	}
	if math.Abs(hit.T-2) > 1e-9 || hit.Material != material.Material(target) {
		t.Errorf("Expected nested sphere at t=2, got t=%f", hit.T)
	}

	if n := CountSpheres(world); n != 3 {
		t.Errorf("Expected 3 spheres, got %d", n)
	}
}

func TestComposite_DeepNestingDoesNotRecurse(t *testing.T) {
	var model Model = NewSphere(core.NewVec3(0, 0, -2), 1, nil)
	for i := 0; i < 100000; i++ {
		model = NewComposite(model)
	}

	hit, isHit := model.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	if !isHit || math.Abs(hit.T-1) > 1e-9 {
		t.Errorf("Expected hit at t=1 through deep nesting, got hit=%t", isHit)
	}
}

func TestComposite_EmptyAndMiss(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := NewComposite().Hit(ray); isHit {
		t.Error("Empty composite should never hit")
	}

	world := NewComposite(NewSphere(core.NewVec3(0, 5, -1), 1, nil))
	if _, isHit := world.Hit(ray); isHit {
		t.Error("Expected miss")
	}
}

func TestComposite_TieKeepsFirstChild(t *testing.T) {
	first := material.NewLambertian(core.NewVec3(1, 0, 0))
	second := material.NewLambertian(core.NewVec3(0, 1, 0))
	world := NewComposite(
		NewSphere(core.NewVec3(0, 0, -2), 1, first),
		NewSphere(core.NewVec3(0, 0, -2), 1, second),
	)

	hit, _ := world.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	if hit.Material != material.Material(first) {
		t.Error("Expected first child to win a tie")
	}
}
