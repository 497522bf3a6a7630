package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/lmittmann/tint"

	"github.com/ic-n/redio-contract/config"
	"github.com/ic-n/redio-contract/sdk/redio"
)

func main() {
	solanaEnv := flag.String("solana-env", config.EnvDevnet, "Solana environment (mainnet-beta, devnet, localnet)")
	programID := flag.String("program-id", "", "Redio program ID override")
	keypairPath := flag.String("keypair", "", "Path to the signer keypair (required for submit commands)")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.StampMilli,
	}))

	netCfg, err := config.NetworkConfigForEnv(*solanaEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid --solana-env %q: %v\n", *solanaEnv, err)
		os.Exit(1)
	}

	pid := netCfg.RedioProgramID
	if *programID != "" {
		pid = solana.MustPublicKeyFromBase58(*programID)
	}

	var signer *solana.PrivateKey
	if *keypairPath != "" {
		keypair, err := solana.PrivateKeyFromSolanaKeygenFile(*keypairPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to load keypair: %v\n", err)
			os.Exit(1)
		}
		signer = &keypair
	}

	rpcClient := solanarpc.New(netCfg.SolanaRPCURL)
	client := redio.New(log, rpcClient, signer, pid)
	ctx := context.Background()

	switch args[0] {
	case "pool":
		err = cmdPool(ctx, client, pid, args[1:])
	case "affiliate":
		err = cmdAffiliate(ctx, client, args[1:])
	case "affiliates":
		err = cmdAffiliates(ctx, client)
	case "derive":
		err = cmdDerive(pid, args[1:])
	case "init-pool":
		err = cmdInitPool(ctx, client, signer, args[1:])
	case "add-affiliate":
		err = cmdAddAffiliate(ctx, client, signer, args[1:])
	case "process-sale":
		err = cmdProcessSale(ctx, client, signer, args[1:])
	case "remove-affiliate":
		err = cmdRemoveAffiliate(ctx, client, signer, args[1:])
	case "deposit":
		err = cmdDeposit(ctx, client, signer, args[1:])
	case "withdraw":
		err = cmdWithdraw(ctx, client, signer, args[1:])
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: redio-cli [flags] <command> [args]

Inspection commands:
  pool <merchant>                          Show a merchant's pool
  affiliate <merchant> <wallet>            Show one affiliate in a merchant's pool
  affiliates                               List all affiliate accounts for the program
  derive <merchant> [wallet]               Print derived addresses for a merchant

Submit commands (require --keypair):
  init-pool <mint> <rate_bps> <deposit>    Create the signer's pool
  add-affiliate <wallet> <ref_id>          Register an affiliate in the signer's pool
  process-sale <merchant> <wallet> <mint> <amount>
                                           Record a sale and pay commission
  remove-affiliate <wallet>                Deactivate an affiliate in the signer's pool
  deposit <mint> <amount>                  Move tokens into the signer's escrow
  withdraw <mint> <amount>                 Move tokens out of the signer's escrow

Amounts are in base token units. Rates are in basis points (500 = 5%%).

Flags:
`)
	flag.PrintDefaults()
}

func requireSigner(signer *solana.PrivateKey) (solana.PublicKey, error) {
	if signer == nil {
		return solana.PublicKey{}, fmt.Errorf("this command requires --keypair")
	}
	return signer.PublicKey(), nil
}

func parseAmount(arg string) (uint64, error) {
	amount, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", arg, err)
	}
	return amount, nil
}

func cmdPool(ctx context.Context, client *redio.Client, programID solana.PublicKey, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: pool <merchant>")
	}
	merchant := solana.MustPublicKeyFromBase58(args[0])

	pool, err := client.GetPool(ctx, merchant)
	if err != nil {
		return err
	}

	addr, _, _ := redio.DerivePoolPDA(programID, merchant)

	fmt.Printf("Merchant Pool (%s)\n", addr)
	fmt.Printf("%-30s %s\n", "Merchant:", pool.Merchant)
	fmt.Printf("%-30s %s\n", "Pool ID:", pool.PoolID)
	fmt.Printf("%-30s %s\n", "Mint:", pool.Mint)
	fmt.Printf("%-30s %s\n", "Commission Rate:", formatRate(pool.CommissionRate))
	fmt.Printf("%-30s %d\n", "Total Volume:", pool.TotalVolume)
	fmt.Printf("%-30s %d\n", "Total Commissions Paid:", pool.TotalCommissionsPaid)
	fmt.Printf("%-30s %v\n", "Active:", pool.IsActive)
	fmt.Printf("%-30s %s\n", "Created At:", time.Unix(pool.CreatedAt, 0).UTC().Format(time.RFC3339))

	return nil
}

func cmdAffiliate(ctx context.Context, client *redio.Client, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: affiliate <merchant> <wallet>")
	}
	merchant := solana.MustPublicKeyFromBase58(args[0])
	wallet := solana.MustPublicKeyFromBase58(args[1])

	affiliate, err := client.GetAffiliate(ctx, merchant, wallet)
	if err != nil {
		return err
	}

	fmt.Printf("Affiliate (%s)\n", affiliate.Wallet)
	fmt.Printf("%-30s %s\n", "Pool:", affiliate.Pool)
	fmt.Printf("%-30s %s\n", "Ref ID:", affiliate.RefID)
	fmt.Printf("%-30s %d\n", "Total Earned:", affiliate.TotalEarned)
	fmt.Printf("%-30s %d\n", "Sales Count:", affiliate.SalesCount)
	fmt.Printf("%-30s %v\n", "Active:", affiliate.IsActive)
	fmt.Printf("%-30s %s\n", "Created At:", time.Unix(affiliate.CreatedAt, 0).UTC().Format(time.RFC3339))

	return nil
}

func cmdAffiliates(ctx context.Context, client *redio.Client) error {
	affiliates, err := client.GetAffiliates(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Affiliates (%d total)\n\n", len(affiliates))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "WALLET\tPOOL\tREF ID\tEARNED\tSALES\tACTIVE\n")
	fmt.Fprintf(w, "------\t----\t------\t------\t-----\t------\n")
	for _, a := range affiliates {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%v\n", a.Wallet, a.Pool, a.RefID, a.TotalEarned, a.SalesCount, a.IsActive)
	}
	w.Flush()

	return nil
}

func cmdDerive(programID solana.PublicKey, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: derive <merchant> [wallet]")
	}
	merchant := solana.MustPublicKeyFromBase58(args[0])

	pool, poolBump, err := redio.DerivePoolPDA(programID, merchant)
	if err != nil {
		return err
	}
	escrowAuthority, escrowBump, err := redio.DeriveEscrowAuthorityPDA(programID, pool)
	if err != nil {
		return err
	}

	fmt.Printf("%-30s %s (bump %d)\n", "Pool:", pool, poolBump)
	fmt.Printf("%-30s %s (bump %d)\n", "Escrow Authority:", escrowAuthority, escrowBump)

	if len(args) == 2 {
		wallet := solana.MustPublicKeyFromBase58(args[1])
		affiliate, affiliateBump, err := redio.DeriveAffiliatePDA(programID, pool, wallet)
		if err != nil {
			return err
		}
		fmt.Printf("%-30s %s (bump %d)\n", "Affiliate:", affiliate, affiliateBump)
	}

	return nil
}

func cmdInitPool(ctx context.Context, client *redio.Client, signer *solana.PrivateKey, args []string) error {
	merchant, err := requireSigner(signer)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("usage: init-pool <mint> <rate_bps> <deposit>")
	}
	mint := solana.MustPublicKeyFromBase58(args[0])
	rate, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		return fmt.Errorf("invalid commission rate %q: %w", args[1], err)
	}
	deposit, err := parseAmount(args[2])
	if err != nil {
		return err
	}

	sig, _, err := client.InitializePool(ctx, redio.InitializePoolInstructionConfig{
		Merchant:       merchant,
		Mint:           mint,
		CommissionRate: uint16(rate),
		InitialDeposit: deposit,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Pool initialized: %s\n", sig)
	return nil
}

func cmdAddAffiliate(ctx context.Context, client *redio.Client, signer *solana.PrivateKey, args []string) error {
	merchant, err := requireSigner(signer)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: add-affiliate <wallet> <ref_id>")
	}

	sig, _, err := client.AddAffiliate(ctx, redio.AddAffiliateInstructionConfig{
		Merchant:        merchant,
		AffiliateWallet: solana.MustPublicKeyFromBase58(args[0]),
		RefID:           args[1],
	})
	if err != nil {
		return err
	}
	fmt.Printf("Affiliate added: %s\n", sig)
	return nil
}

func cmdProcessSale(ctx context.Context, client *redio.Client, signer *solana.PrivateKey, args []string) error {
	authority, err := requireSigner(signer)
	if err != nil {
		return err
	}
	if len(args) != 4 {
		return fmt.Errorf("usage: process-sale <merchant> <wallet> <mint> <amount>")
	}
	amount, err := parseAmount(args[3])
	if err != nil {
		return err
	}

	sig, _, err := client.ProcessSale(ctx, redio.ProcessSaleInstructionConfig{
		Authority:       authority,
		Merchant:        solana.MustPublicKeyFromBase58(args[0]),
		AffiliateWallet: solana.MustPublicKeyFromBase58(args[1]),
		Mint:            solana.MustPublicKeyFromBase58(args[2]),
		SaleAmount:      amount,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Sale processed: %s\n", sig)
	return nil
}

func cmdRemoveAffiliate(ctx context.Context, client *redio.Client, signer *solana.PrivateKey, args []string) error {
	merchant, err := requireSigner(signer)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: remove-affiliate <wallet>")
	}

	sig, _, err := client.RemoveAffiliate(ctx, redio.RemoveAffiliateInstructionConfig{
		Merchant:        merchant,
		AffiliateWallet: solana.MustPublicKeyFromBase58(args[0]),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Affiliate removed: %s\n", sig)
	return nil
}

func cmdDeposit(ctx context.Context, client *redio.Client, signer *solana.PrivateKey, args []string) error {
	merchant, err := requireSigner(signer)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: deposit <mint> <amount>")
	}
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	sig, _, err := client.DepositEscrow(ctx, redio.DepositEscrowInstructionConfig{
		Merchant: merchant,
		Mint:     solana.MustPublicKeyFromBase58(args[0]),
		Amount:   amount,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Escrow deposit submitted: %s\n", sig)
	return nil
}

func cmdWithdraw(ctx context.Context, client *redio.Client, signer *solana.PrivateKey, args []string) error {
	merchant, err := requireSigner(signer)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: withdraw <mint> <amount>")
	}
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	sig, _, err := client.WithdrawEscrow(ctx, redio.WithdrawEscrowInstructionConfig{
		Merchant: merchant,
		Mint:     solana.MustPublicKeyFromBase58(args[0]),
		Amount:   amount,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Escrow withdrawal submitted: %s\n", sig)
	return nil
}

func formatRate(bps uint16) string {
	pct := float64(bps) / 100
	return fmt.Sprintf("%.2f%% (%d/%d)", pct, bps, redio.CommissionRateDenominator)
}
