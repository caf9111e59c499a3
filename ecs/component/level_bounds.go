package component

// LevelBounds stores the world-space bounds of the current level.
type LevelBounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
