package tank

// Scene dimensions. Every part of the tank is sized from WheelSize.
const (
	GridSize      = 30
	TileSize      = 1
	TileThickness = 0.1

	WheelSize       = 0.66
	AxleLength      = 4
	AxleSize        = WheelSize / 2
	MainBodyLength  = WheelSize * 12
	HullHalfTravel  = GridSize/2 - MainBodyLength/2
	HullLift        = TileThickness / 1.25
	MuzzleSpeed     = 5
	GroundThreshold = AxleSize / 2

	// deckHeight is the top of the chassis beam, where the hull boxes rest.
	deckHeight = 3 * WheelSize / 4
	// turretHeight is the barrel axis height above the tank origin.
	turretHeight = deckHeight + MainBodyLength/4 + AxleSize
)

// Control steps.
const (
	MoveStep      = 0.1
	ZoomStep      = 0.5
	MinZoom       = 1
	DefaultZoom   = 15
	ElevationStep = 1
	MaxElevation  = 20
	AzimuthStep   = 1
)

// Physics defaults.
const (
	Gravity   = -9.8
	FrameStep = 1.0 / 60
)
