package redio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
)

var (
	// ErrNoPrivateKey is returned when a submit operation is attempted on a
	// client constructed without a signer.
	ErrNoPrivateKey = errors.New("no private key configured")

	// ErrNoProgramID is returned when a submit operation is attempted without
	// a program ID.
	ErrNoProgramID = errors.New("no program ID configured")
)

const (
	defaultAcceptanceTimeout = 3 * time.Second
	acceptancePollInterval   = 250 * time.Millisecond
	finalizationPollInterval = 1 * time.Second
)

// submitter owns the write path. It wraps one instruction in a transaction
// paid for and signed by the configured key, sends it, and watches the
// signature until the cluster finalizes it. Everything up to Submit is pure;
// this is the only type in the package that does I/O.
type submitter struct {
	log               *slog.Logger
	rpc               RPCClient
	signer            *solana.PrivateKey
	programID         solana.PublicKey
	acceptanceTimeout time.Duration
}

type SubmitterOption func(*submitter)

// WithAcceptanceTimeout bounds how long Submit waits for the cluster to
// report the signature at all before treating the transaction as dropped.
func WithAcceptanceTimeout(timeout time.Duration) SubmitterOption {
	return func(s *submitter) {
		s.acceptanceTimeout = timeout
	}
}

func NewSubmitter(log *slog.Logger, rpc RPCClient, signer *solana.PrivateKey, programID solana.PublicKey, opts ...SubmitterOption) *submitter {
	s := &submitter{
		log:               log,
		rpc:               rpc,
		signer:            signer,
		programID:         programID,
		acceptanceTimeout: defaultAcceptanceTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type SubmitOptions struct {
	// SkipPreflight sends without simulation. Operations that create token
	// accounts inside the transaction need this: simulation runs against
	// current state, where those accounts do not exist yet.
	SkipPreflight bool
}

// Submit signs and sends a single instruction, then blocks until the
// transaction is finalized and its metadata is available. On-chain
// rejections come back as errors carrying the transport's diagnostic text;
// nothing is retried, since the instruction bytes are deterministic and a
// resend would just fail the same way.
func (s *submitter) Submit(ctx context.Context, instruction solana.Instruction, opts *SubmitOptions) (solana.Signature, *solanarpc.GetTransactionResult, error) {
	if opts == nil {
		opts = &SubmitOptions{}
	}

	if s.signer == nil {
		return solana.Signature{}, nil, ErrNoPrivateKey
	}
	if s.programID.IsZero() {
		return solana.Signature{}, nil, ErrNoProgramID
	}

	blockhash, err := s.rpc.GetLatestBlockhash(ctx, solanarpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to get latest blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(
		[]solana.Instruction{instruction},
		blockhash.Value.Blockhash,
		solana.TransactionPayer(s.signer.PublicKey()),
	)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to build transaction: %w", err)
	}

	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(s.signer.PublicKey()) {
			return s.signer
		}
		return nil
	}); err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	sig, err := s.rpc.SendTransactionWithOpts(ctx, tx, solanarpc.TransactionOpts{
		SkipPreflight: opts.SkipPreflight,
	})
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to send transaction: %w", err)
	}
	s.log.Debug("sent transaction", "sig", sig, "skipPreflight", opts.SkipPreflight)

	if err := s.waitAccepted(ctx, sig); err != nil {
		return solana.Signature{}, nil, fmt.Errorf("transaction %s was dropped before the cluster saw it (check the payer balance): %w", sig, err)
	}

	res, err := s.waitFinalized(ctx, sig)
	if err != nil {
		return solana.Signature{}, nil, fmt.Errorf("failed to confirm transaction %s: %w", sig, err)
	}
	return sig, res, nil
}

// waitAccepted polls until the cluster reports the signature at all. With
// preflight skipped an underfunded payer produces no error on send; the
// transaction just never shows up, so absence within the window is the only
// signal.
func (s *submitter) waitAccepted(ctx context.Context, sig solana.Signature) error {
	ctx, cancel := context.WithTimeout(ctx, s.acceptanceTimeout)
	defer cancel()

	ticker := time.NewTicker(acceptancePollInterval)
	defer ticker.Stop()

	for {
		resp, err := s.rpc.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			return err
		}
		if len(resp.Value) > 0 && resp.Value[0] != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return errors.New("signature not seen before timeout")
		case <-ticker.C:
		}
	}
}

// waitFinalized blocks until the signature reaches finalized commitment,
// then fetches the full transaction so callers can inspect its meta.
func (s *submitter) waitFinalized(ctx context.Context, sig solana.Signature) (*solanarpc.GetTransactionResult, error) {
	start := time.Now()
	ticker := time.NewTicker(finalizationPollInterval)
	defer ticker.Stop()

	for {
		resp, err := s.rpc.GetSignatureStatuses(ctx, true, sig)
		if err != nil {
			return nil, err
		}
		if len(resp.Value) == 0 {
			return nil, errors.New("transaction not found")
		}
		status := resp.Value[0]
		if status != nil && status.ConfirmationStatus == solanarpc.ConfirmationStatusFinalized {
			s.log.Debug("transaction finalized", "sig", sig, "took", time.Since(start))
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			s.log.Debug("waiting for finalization", "sig", sig, "elapsed", time.Since(start))
		}
	}

	tx, err := s.rpc.GetTransaction(ctx, sig, &solanarpc.GetTransactionOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: solanarpc.CommitmentFinalized,
	})
	if err != nil {
		return nil, err
	}
	if tx == nil || tx.Meta == nil {
		return nil, errors.New("finalized transaction has no metadata")
	}
	return tx, nil
}
