package constants

const (

	// PlayerWidth is the width of the player square
	PlayerWidth float64 = 50.0
	// PlayerHeight is the height of the player square
	PlayerHeight float64 = 50.0

	// TouchVelocity is added to (or subtracted from) the touch velocity on every tap
	TouchVelocity float64 = 400.0
	// TouchImpulse is the one frame kick applied on every tap
	TouchImpulse float64 = 200.0
	// TouchVelocityDivisor controls how fast the touch velocity decays each frame
	TouchVelocityDivisor float64 = 20.0
	// GravityMultiplier scales the distance to the screen center into the centering velocity
	GravityMultiplier float64 = 3.0
	// GravityMaxVelocity bounds the centering velocity in both directions
	GravityMaxVelocity float64 = 400.0

	// ObstacleGap is the width of the gap between the two obstacles of a pair
	ObstacleGap float64 = 200.0
	// ObstacleHeight is the height of every obstacle and score box
	ObstacleHeight float64 = 50.0
	// ObstacleWidthDivisor splits the screen width into the base unit of the random obstacle split
	ObstacleWidthDivisor = 5
	// ScrollSecondsPerUnit is the time it takes to move one unit, for obstacles and the falling score label
	ScrollSecondsPerUnit float64 = 0.005
	// SpawnInterval is the delay between two obstacle pairs
	SpawnInterval float64 = 1.2 // seconds

	// WallWidth is the width of the invisible side walls
	WallWidth float64 = 10.0

	// MinScreenWidth is the narrowest screen that still fits the gap and the player
	MinScreenWidth = int(ObstacleGap) + int(PlayerWidth)
)
