package builder

// Method tokens used as error context.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
	MethodGrid              = "Grid"
	MethodRingOfCliques     = "RingOfCliques"
)

// CenterLabel is the fixed label of the hub in Star and Wheel.
const CenterLabel = "Center"

// Minimum sizes per constructor.
const (
	MinCycleNodes  = 3
	MinPathNodes   = 2
	MinStarNodes   = 2
	MinWheelNodes  = 3
	MinGridDim     = 1
	MinCliqueSize  = 2
	MinCliqueCount = 2
)

// Probability domain of RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
