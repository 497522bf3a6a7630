package config

import (
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
)

const (
	EnvMainnetBeta = "mainnet-beta"
	EnvMainnet     = "mainnet"
	EnvDevnet      = "devnet"
	EnvLocalnet    = "localnet"
)

var (
	ErrInvalidEnvironment = fmt.Errorf("invalid environment")
)

type NetworkConfig struct {
	SolanaRPCURL   string
	RedioProgramID solana.PublicKey
}

func NetworkConfigForEnv(env string) (*NetworkConfig, error) {
	var config *NetworkConfig
	switch env {
	case EnvMainnetBeta, EnvMainnet:
		programID, err := solana.PublicKeyFromBase58(MainnetRedioProgramID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redio program ID: %w", err)
		}
		config = &NetworkConfig{
			SolanaRPCURL:   MainnetSolanaRPCURL,
			RedioProgramID: programID,
		}
	case EnvDevnet:
		programID, err := solana.PublicKeyFromBase58(DevnetRedioProgramID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redio program ID: %w", err)
		}
		config = &NetworkConfig{
			SolanaRPCURL:   DevnetSolanaRPCURL,
			RedioProgramID: programID,
		}
	case EnvLocalnet:
		programID, err := solana.PublicKeyFromBase58(LocalnetRedioProgramID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redio program ID: %w", err)
		}
		config = &NetworkConfig{
			SolanaRPCURL:   LocalnetSolanaRPCURL,
			RedioProgramID: programID,
		}
	default:
		return nil, ErrInvalidEnvironment
	}

	rpcURL := os.Getenv("REDIO_RPC_URL")
	if rpcURL != "" {
		config.SolanaRPCURL = rpcURL
	}

	return config, nil
}
