package domain

const (
	// Network constants
	DEFAULT_CHAIN_ID     = 1270
	DEFAULT_RPC_URL      = "https://testnet-rpc.irys.xyz/v1/execution-rpc"
	DEFAULT_EXPLORER_URL = "https://testnet.irys.xyz"

	// Native token constants
	NATIVE_TOKEN_SYMBOL   = "IRYS"
	NATIVE_TOKEN_DECIMALS = 18

	// Payment constants
	DEFAULT_PAYMENT_WALLET = "0x601F9e84D3B5621131896dF22268B898729a259F"
	DEFAULT_THREAD_FEE     = "0.0003"
	DEFAULT_REPLY_FEE      = "0.0001"
	DEFAULT_PROFILE_FEE    = "0.0002"

	// Storage keys
	DEFAULT_THREADS_KEY  = "iryswiki_threads"
	DEFAULT_PROFILES_KEY = "iryswiki_profiles"
	DEFAULT_LEDGER_KEY   = "iryswiki_verified_txs"

	// Media constants
	DEFAULT_MAX_AVATAR_SIZE = 10 * 1024 * 1024

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
)

// DefaultAvatarMimeTypes lists the inline image types accepted for profile avatars
var DefaultAvatarMimeTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
