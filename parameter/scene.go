package parameter

// Scene geometry
const (
	// GroundHeight is the number of rows below the horizon
	GroundHeight = 7

	HouseWidth     = 64
	HouseHeight    = 13
	ChimneyOffsetX = 10

	TreeOffsetX    = 20
	TreeRise       = 5
	FenceGap       = 2
	FenceRise      = 2
	MailboxOffsetX = 10
	MailboxRise    = 3
	PineOffsetX    = 18
	PineRise       = 5
	PineMinWidth   = 120
	PineClearance  = 10
)
