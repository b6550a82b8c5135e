package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Camera turns normalized image coordinates into world-space rays.
// u and v are in [0,1); v=0 is the bottom of the view.
type Camera interface {
	GetRay(u, v float64) Ray
}
