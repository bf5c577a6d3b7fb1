package builder

// Method names prefix constructor errors.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodPlatonicSolid     = "PlatonicSolid"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
	MethodPainting          = "Painting"
)

// CenterRegionID is the fixed hub ID of Star, Wheel and stellated Platonic solids.
const CenterRegionID = "Center"

// Minimum sizes.
const (
	MinCycleRegions    = 3
	MinPathRegions     = 2
	MinStarRegions     = 2
	MinWheelRegions    = 4
	MinCompleteRegions = 1
	MinPartitionSize   = 1
	MinGridDim         = 1
	MinRandomRegions   = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// maxStubMatchingAttempts bounds RandomRegular retries.
const maxStubMatchingAttempts = 64
