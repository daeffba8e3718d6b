package common

const (
	// HOME_BRIDGE name to identify the home bridge component
	HOME_BRIDGE = "home-bridge" //nolint:stylecheck
	// FOREIGN_BRIDGE name to identify the foreign bridge component
	FOREIGN_BRIDGE = "foreign-bridge" //nolint:stylecheck
	// RPC name to identify the rpc component serving both bridges (implies home-bridge, foreign-bridge)
	RPC = "rpc"
	// RELAYER_H2F name to identify the home to foreign relayer (implies home-bridge, and foreign-bridge
	// unless it redeems through another node)
	RELAYER_H2F = "relayer-h2f" //nolint:stylecheck
	// RELAYER_F2H name to identify the foreign to home relayer (implies foreign-bridge, and home-bridge
	// unless it redeems through another node)
	RELAYER_F2H = "relayer-f2h" //nolint:stylecheck
)
