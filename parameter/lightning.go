package parameter

// Lightning timing in ticks
const (
	// LightningInitialDelayMin and LightningInitialDelayRange set the first strike delay
	LightningInitialDelayMin   = 60
	LightningInitialDelayRange = 120

	// LightningDelayMin and LightningDelayRange set the delay after each cycle
	LightningDelayMin   = 30
	LightningDelayRange = 200

	// LightningFlashTicks is how long the flash state holds
	LightningFlashTicks = 2

	// LightningBoltMaxAge is the fade-out duration per bolt
	LightningBoltMaxAge = 10

	// LightningMaxBolts bounds the bolt queue
	LightningMaxBolts = 10
)

// Bolt geometry
const (
	LightningTopRow        = 2
	LightningGroundMargin  = 5
	LightningSideMargin    = 5
	LightningEdgeClamp     = 2
	LightningBranchChance  = 0.2
	LightningBranchLength  = 3
	LightningBranchMinRows = 2
)
