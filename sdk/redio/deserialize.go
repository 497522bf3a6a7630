package redio

import (
	"bytes"
	"fmt"
)

// DeserializeMerchantPool deserializes binary account data into a
// MerchantPool. It validates the Anchor account discriminator before
// decoding the fields.
func DeserializeMerchantPool(data []byte) (*MerchantPool, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("account data too short: %d bytes", len(data))
	}
	if !bytes.Equal(data[:8], merchantPoolDiscriminator[:]) {
		return nil, fmt.Errorf("unexpected account discriminator: not a MerchantPool account")
	}

	var pool MerchantPool
	if err := pool.Deserialize(data); err != nil {
		return nil, fmt.Errorf("failed to deserialize merchant pool: %w", err)
	}
	return &pool, nil
}

// DeserializeAffiliateAccount deserializes binary account data into an
// AffiliateAccount. It validates the Anchor account discriminator before
// decoding the fields.
func DeserializeAffiliateAccount(data []byte) (*AffiliateAccount, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("account data too short: %d bytes", len(data))
	}
	if !bytes.Equal(data[:8], affiliateAccountDiscriminator[:]) {
		return nil, fmt.Errorf("unexpected account discriminator: not an AffiliateAccount account")
	}

	var affiliate AffiliateAccount
	if err := affiliate.Deserialize(data); err != nil {
		return nil, fmt.Errorf("failed to deserialize affiliate account: %w", err)
	}
	return &affiliate, nil
}
