package meshdiag

// Default tolerances and thresholds used by each pass. Overriding any
// of these via an AnalyzeOption is a deliberate deviation from the
// documented reference behavior; calling Analyze with no options
// (newDefaultConfig) always reproduces it exactly.
const (
	// DefaultTriangleCap is the capacity guard: beyond this many
	// triangles the engine short-circuits rather than building an
	// edge-face map sized for them.
	DefaultTriangleCap = 5_592_405

	defaultDuplicateEpsilon      = 1e-6
	defaultThinWallFraction      = 0.005
	defaultDegenerateAreaRatio   = 1e-8
	defaultTinyAreaFraction      = 0.01
	defaultNeedleAspectRatio     = 10.0
	defaultSharpAngleDegrees     = 30.0
	defaultCoplanarAngleDegrees  = 170.0
	defaultSelfIntersectTolerance = 1e-8
	defaultTJunctionParamMargin  = 0.01
	defaultCoincidentNormalDot   = 0.999
	defaultCoincidentPlaneEps    = 1e-5
)

type config struct {
	triangleCap      int
	duplicateEpsilon float64
	thinWallFraction float64
}

func newDefaultConfig() config {
	return config{
		triangleCap:      DefaultTriangleCap,
		duplicateEpsilon: defaultDuplicateEpsilon,
		thinWallFraction: defaultThinWallFraction,
	}
}

// AnalyzeOption configures a single call to Analyze.
type AnalyzeOption func(*config)

// WithTriangleCap overrides the capacity guard. Lowering it makes the
// capacity-limited path reachable on smaller meshes, which is useful
// for exercising it in tests; raising it relaxes the documented
// capacity limit for callers who have verified their map
// implementation tolerates larger edge-face maps.
func WithTriangleCap(n int) AnalyzeOption {
	return func(c *config) {
		if n > 0 {
			c.triangleCap = n
		}
	}
}

// WithDuplicateEpsilon overrides the absolute distance (default 1e-6)
// used by the duplicate-vertex detector.
func WithDuplicateEpsilon(eps float64) AnalyzeOption {
	return func(c *config) {
		if eps > 0 {
			c.duplicateEpsilon = eps
		}
	}
}

// WithThinWallFraction overrides the fraction of the bounding
// diagonal (default 0.005) used as the thin-wall threshold.
func WithThinWallFraction(f float64) AnalyzeOption {
	return func(c *config) {
		if f > 0 {
			c.thinWallFraction = f
		}
	}
}
