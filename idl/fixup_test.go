package idl_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ic-n/redio-contract/idl"
)

func TestIDL_FixAccount_StringPassesThrough(t *testing.T) {
	t.Parallel()

	require.Equal(t, "merchant", idl.FixAccount("merchant"))
}

func TestIDL_FixAccount_FiltersUnknownFields(t *testing.T) {
	t.Parallel()

	account := map[string]any{
		"name":      "merchant_pool",
		"writable":  true,
		"docs":      []any{"the pool account"},
		"relations": []any{"merchant"},
	}

	got, ok := idl.FixAccount(account).(map[string]any)
	require.True(t, ok)
	require.Equal(t, "merchant_pool", got["name"])
	require.Equal(t, true, got["writable"])
	require.NotContains(t, got, "docs")
	require.NotContains(t, got, "relations")
}

func TestIDL_FixAccount_DefaultsFlagsToFalse(t *testing.T) {
	t.Parallel()

	got, ok := idl.FixAccount(map[string]any{"name": "usdc_mint"}).(map[string]any)
	require.True(t, ok)
	require.Equal(t, false, got["writable"])
	require.Equal(t, false, got["signer"])
}

func TestIDL_FixAccount_PreservesExplicitFlags(t *testing.T) {
	t.Parallel()

	got, ok := idl.FixAccount(map[string]any{
		"name":     "merchant",
		"writable": true,
		"signer":   true,
	}).(map[string]any)
	require.True(t, ok)
	require.Equal(t, true, got["writable"])
	require.Equal(t, true, got["signer"])
}

func TestIDL_FixAccount_TruncatesDottedSeedPaths(t *testing.T) {
	t.Parallel()

	account := map[string]any{
		"name": "affiliate_account",
		"pda": map[string]any{
			"seeds": []any{
				map[string]any{"kind": "const", "value": []any{97.0, 102.0, 102.0}},
				map[string]any{
					"kind":    "account",
					"path":    "merchant_pool.merchant",
					"account": map[string]any{"name": "MerchantPool"},
				},
			},
		},
	}

	got, ok := idl.FixAccount(account).(map[string]any)
	require.True(t, ok)

	pda, ok := got["pda"].(map[string]any)
	require.True(t, ok)
	seeds, ok := pda["seeds"].([]any)
	require.True(t, ok)
	require.Len(t, seeds, 2)

	accountSeed, ok := seeds[1].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "merchant_pool", accountSeed["path"])
	require.NotContains(t, accountSeed, "account")

	// Const seeds pass through untouched.
	constSeed, ok := seeds[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "const", constSeed["kind"])
}

func TestIDL_FixAccount_DropsMalformedProgramOverride(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		program any
		kept    bool
	}{
		{
			name:    "valid override",
			program: map[string]any{"kind": "const", "value": []any{1.0, 2.0}},
			kept:    true,
		},
		{
			name:    "missing value",
			program: map[string]any{"kind": "const"},
			kept:    false,
		},
		{
			name:    "missing kind",
			program: map[string]any{"value": []any{1.0}},
			kept:    false,
		},
		{
			name:    "not an object",
			program: "redio_contract",
			kept:    false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			account := map[string]any{
				"name": "escrow_usdc",
				"pda": map[string]any{
					"seeds":   []any{},
					"program": tt.program,
				},
			}

			got, ok := idl.FixAccount(account).(map[string]any)
			require.True(t, ok)
			pda, ok := got["pda"].(map[string]any)
			require.True(t, ok)
			if tt.kept {
				require.Contains(t, pda, "program")
			} else {
				require.NotContains(t, pda, "program")
			}
		})
	}
}

func TestIDL_Fix_RewritesAllInstructions(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"address":  "CFQoHeX28aKhpgsLCSGM2zpou6RkRrwRoHVToWS2B6tQ",
		"metadata": map[string]any{"name": "redio_contract"},
		"instructions": []any{
			map[string]any{
				"name": "initialize_pool",
				"accounts": []any{
					map[string]any{"name": "merchant_pool", "writable": true, "docs": []any{"x"}},
					map[string]any{"name": "merchant", "writable": true, "signer": true},
					map[string]any{"name": "system_program"},
				},
			},
			map[string]any{
				"name": "remove_affiliate",
				"accounts": []any{
					map[string]any{"name": "merchant", "signer": true},
				},
			},
		},
	}

	got := idl.Fix(doc)

	// Untouched top-level fields survive.
	require.Equal(t, "CFQoHeX28aKhpgsLCSGM2zpou6RkRrwRoHVToWS2B6tQ", got["address"])

	instructions := got["instructions"].([]any)
	first := instructions[0].(map[string]any)
	accounts := first["accounts"].([]any)

	pool := accounts[0].(map[string]any)
	require.NotContains(t, pool, "docs")
	require.Equal(t, false, pool["signer"])

	sys := accounts[2].(map[string]any)
	require.Equal(t, false, sys["writable"])
	require.Equal(t, false, sys["signer"])
}

func TestIDL_FixFile_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "redio_contract.json")
	outPath := filepath.Join(dir, "contract.json")

	in := `{
		"instructions": [
			{
				"name": "add_affiliate",
				"accounts": [
					{"name": "merchant_pool", "unexpected": {"nested": true}},
					{"name": "merchant", "writable": true, "signer": true}
				]
			}
		]
	}`
	require.NoError(t, os.WriteFile(inPath, []byte(in), 0o644))

	require.NoError(t, idl.FixFile(inPath, outPath))

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	accounts := doc["instructions"].([]any)[0].(map[string]any)["accounts"].([]any)
	pool := accounts[0].(map[string]any)
	require.NotContains(t, pool, "unexpected")
	require.Equal(t, false, pool["writable"])
	require.Equal(t, false, pool["signer"])
}

func TestIDL_FixFile_MissingInput(t *testing.T) {
	t.Parallel()

	err := idl.FixFile(filepath.Join(t.TempDir(), "missing.json"), filepath.Join(t.TempDir(), "out.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read IDL")
}
