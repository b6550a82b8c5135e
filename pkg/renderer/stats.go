package renderer

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of camera rays traced
	TotalBounces   int     // Scattered rays followed across all samples
	AverageBounces float64 // Bounces per camera ray
	Escaped        int     // Paths that left the scene
	Absorbed       int     // Paths ended by a material
	DepthCapped    int     // Paths stopped at MaxDepth
}

func (s *RenderStats) addPath(path PathResult) {
	s.TotalSamples++
	s.TotalBounces += path.Bounces
	switch path.Termination {
	case Escaped:
		s.Escaped++
	case Absorbed:
		s.Absorbed++
	case DepthCapped:
		s.DepthCapped++
	}
}

func (s *RenderStats) finalize() {
	if s.TotalSamples > 0 {
		s.AverageBounces = float64(s.TotalBounces) / float64(s.TotalSamples)
	}
}
