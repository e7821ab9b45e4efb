package game

// Map dimensions (in grid units).
const (
	MapWidth  = 128
	MapHeight = 128
)

// Map draw layers.
const (
	BackgroundLayer int8 = -1
	ForegroundLayer int8 = 0
	FogLayer        int8 = 1
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	DefaultScale = 6.0
)

// Player movement velocity in grid units per second.
const PlayerVelocity = 20.0

// Camera easing rate toward the player, per second.
const CameraSpeed = 4.0

// Minimum move distance per frame; below this the player holds still so
// it doesn't jitter when the target is essentially on top of it.
const moveDeadzone = 1.0

// Pulse radius tiers, as fractions of the map height.
const (
	TinyPulseRadius   = MapHeight * 5 / 100
	SmallPulseRadius  = MapHeight * 1 / 10
	MediumPulseRadius = MapHeight * 2 / 10
	LargePulseRadius  = MapHeight * 3 / 10
)

// Seconds between pulse emissions.
const PulseCooldown = 1.5

// Tiles drop to this height offset on level load and rise to zero.
const LoadDropHeight = -100.0

// Floor tile opacity when no accent colour applies.
const FloorOpacity = 0.75

// Transition overlay timing (seconds).
const DefaultTransitionDuration = 0.75

// Music timing. Lo-fi beats tend to sit around 60-90 BPM.
const (
	TempoBPM       = 80.0
	StepsPerPhrase = 32
)
