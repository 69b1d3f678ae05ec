package logger

import "go.uber.org/zap"

// Action tags an entry with the paid action kind
func Action(action string) zap.Field {
	return zap.String("action", action)
}

// TxHash tags an entry with a transaction hash
func TxHash(hash string) zap.Field {
	return zap.String("tx_hash", hash)
}

// Address tags an entry with a wallet address
func Address(address string) zap.Field {
	return zap.String("address", address)
}

// Amount tags an entry with a decimal token amount
func Amount(amount string) zap.Field {
	return zap.String("amount", amount)
}
