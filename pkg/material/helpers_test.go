package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// scriptedSampler replays fixed values so stochastic branches can be pinned
type scriptedSampler struct {
	values1D []float64
	values3D []core.Vec3
}

func (s *scriptedSampler) Get1D() float64 {
	if len(s.values1D) == 0 {
		return 0.5
	}
	v := s.values1D[0]
	s.values1D = s.values1D[1:]
	return v
}

func (s *scriptedSampler) Get3D() core.Vec3 {
	if len(s.values3D) == 0 {
		// maps to the centre of the unit ball
		return core.NewVec3(0, 0, 0.5)
	}
	v := s.values3D[0]
	s.values3D = s.values3D[1:]
	return v
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
