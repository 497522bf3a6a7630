package config

const (
	// Mainnet constants.
	MainnetSolanaRPCURL   = "https://api.mainnet-beta.solana.com"
	MainnetRedioProgramID = "CFQoHeX28aKhpgsLCSGM2zpou6RkRrwRoHVToWS2B6tQ"

	// Devnet constants.
	DevnetSolanaRPCURL   = "https://api.devnet.solana.com"
	DevnetRedioProgramID = "CFQoHeX28aKhpgsLCSGM2zpou6RkRrwRoHVToWS2B6tQ"

	// Localnet constants.
	LocalnetSolanaRPCURL   = "http://localhost:8899"
	LocalnetRedioProgramID = "CFQoHeX28aKhpgsLCSGM2zpou6RkRrwRoHVToWS2B6tQ"
)
