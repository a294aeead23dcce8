package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(format string, args ...interface{}) {}

// Camera produces primary rays through normalized image coordinates (x, y) in [0,1]^2
type Camera interface {
	RayThrough(x, y float64) Ray
}
