package prewitt

// The two fixed Prewitt operator kernels. kernelX responds to horizontal
// intensity change (vertical edges) and kernelY to vertical change
// (horizontal edges). Both are constant for the lifetime of the process
// and must never be mutated.
var (
	kernelX = [3][3]float64{
		{1, 0, -1},
		{1, 0, -1},
		{1, 0, -1},
	}
	kernelY = [3][3]float64{
		{1, 1, 1},
		{0, 0, 0},
		{-1, -1, -1},
	}
)
