package redio

import (
	"crypto/sha256"
	"fmt"
	"io"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// accountDiscriminator returns the Anchor account discriminator,
// sha256("account:<name>")[:8].
func accountDiscriminator(name string) [8]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var d [8]byte
	copy(d[:], sum[:8])
	return d
}

var (
	merchantPoolDiscriminator     = accountDiscriminator("MerchantPool")
	affiliateAccountDiscriminator = accountDiscriminator("AffiliateAccount")
)

// MerchantPool mirrors the on-chain pool account.
type MerchantPool struct {
	Merchant             solana.PublicKey // 32 bytes
	PoolID               string           // 4-byte length prefix + UTF-8 bytes
	Mint                 solana.PublicKey // 32 bytes
	CommissionRate       uint16           // 2 bytes LE, basis points
	TotalVolume          uint64           // 8 bytes LE
	TotalCommissionsPaid uint64           // 8 bytes LE
	IsActive             bool             // 1 byte
	Bump                 uint8            // 1 byte
	EscrowBump           uint8            // 1 byte
	CreatedAt            int64            // 8 bytes LE, unix timestamp
}

func (p *MerchantPool) Serialize(w io.Writer) error {
	enc := bin.NewBorshEncoder(w)
	if err := enc.Encode(merchantPoolDiscriminator); err != nil {
		return err
	}
	if err := enc.Encode(p.Merchant); err != nil {
		return err
	}
	if err := enc.Encode(p.PoolID); err != nil {
		return err
	}
	if err := enc.Encode(p.Mint); err != nil {
		return err
	}
	if err := enc.Encode(p.CommissionRate); err != nil {
		return err
	}
	if err := enc.Encode(p.TotalVolume); err != nil {
		return err
	}
	if err := enc.Encode(p.TotalCommissionsPaid); err != nil {
		return err
	}
	if err := enc.Encode(p.IsActive); err != nil {
		return err
	}
	if err := enc.Encode(p.Bump); err != nil {
		return err
	}
	if err := enc.Encode(p.EscrowBump); err != nil {
		return err
	}
	if err := enc.Encode(p.CreatedAt); err != nil {
		return err
	}
	return nil
}

func (p *MerchantPool) Deserialize(data []byte) error {
	dec := bin.NewBorshDecoder(data)
	var disc [8]byte
	if err := dec.Decode(&disc); err != nil {
		return err
	}
	if disc != merchantPoolDiscriminator {
		return fmt.Errorf("unexpected account discriminator: got %v, want %v", disc, merchantPoolDiscriminator)
	}
	if err := dec.Decode(&p.Merchant); err != nil {
		return err
	}
	if err := dec.Decode(&p.PoolID); err != nil {
		return err
	}
	if len(p.PoolID) > MaxPoolIDLength {
		return fmt.Errorf("pool ID length %d exceeds max allowed length %d", len(p.PoolID), MaxPoolIDLength)
	}
	if err := dec.Decode(&p.Mint); err != nil {
		return err
	}
	if err := dec.Decode(&p.CommissionRate); err != nil {
		return err
	}
	if err := dec.Decode(&p.TotalVolume); err != nil {
		return err
	}
	if err := dec.Decode(&p.TotalCommissionsPaid); err != nil {
		return err
	}
	if err := dec.Decode(&p.IsActive); err != nil {
		return err
	}
	if err := dec.Decode(&p.Bump); err != nil {
		return err
	}
	if err := dec.Decode(&p.EscrowBump); err != nil {
		return err
	}
	if err := dec.Decode(&p.CreatedAt); err != nil {
		return err
	}
	return nil
}

// AffiliateAccount mirrors the on-chain affiliate account.
type AffiliateAccount struct {
	Pool        solana.PublicKey // 32 bytes
	Wallet      solana.PublicKey // 32 bytes
	RefID       string           // 4-byte length prefix + UTF-8 bytes
	TotalEarned uint64           // 8 bytes LE
	SalesCount  uint64           // 8 bytes LE
	IsActive    bool             // 1 byte
	Bump        uint8            // 1 byte
	CreatedAt   int64            // 8 bytes LE, unix timestamp
}

func (a *AffiliateAccount) Serialize(w io.Writer) error {
	enc := bin.NewBorshEncoder(w)
	if err := enc.Encode(affiliateAccountDiscriminator); err != nil {
		return err
	}
	if err := enc.Encode(a.Pool); err != nil {
		return err
	}
	if err := enc.Encode(a.Wallet); err != nil {
		return err
	}
	if err := enc.Encode(a.RefID); err != nil {
		return err
	}
	if err := enc.Encode(a.TotalEarned); err != nil {
		return err
	}
	if err := enc.Encode(a.SalesCount); err != nil {
		return err
	}
	if err := enc.Encode(a.IsActive); err != nil {
		return err
	}
	if err := enc.Encode(a.Bump); err != nil {
		return err
	}
	if err := enc.Encode(a.CreatedAt); err != nil {
		return err
	}
	return nil
}

func (a *AffiliateAccount) Deserialize(data []byte) error {
	dec := bin.NewBorshDecoder(data)
	var disc [8]byte
	if err := dec.Decode(&disc); err != nil {
		return err
	}
	if disc != affiliateAccountDiscriminator {
		return fmt.Errorf("unexpected account discriminator: got %v, want %v", disc, affiliateAccountDiscriminator)
	}
	if err := dec.Decode(&a.Pool); err != nil {
		return err
	}
	if err := dec.Decode(&a.Wallet); err != nil {
		return err
	}
	if err := dec.Decode(&a.RefID); err != nil {
		return err
	}
	if len(a.RefID) > MaxRefIDLength {
		return fmt.Errorf("ref ID length %d exceeds max allowed length %d", len(a.RefID), MaxRefIDLength)
	}
	if err := dec.Decode(&a.TotalEarned); err != nil {
		return err
	}
	if err := dec.Decode(&a.SalesCount); err != nil {
		return err
	}
	if err := dec.Decode(&a.IsActive); err != nil {
		return err
	}
	if err := dec.Decode(&a.Bump); err != nil {
		return err
	}
	if err := dec.Decode(&a.CreatedAt); err != nil {
		return err
	}
	return nil
}
