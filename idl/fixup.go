// Package idl rewrites an Anchor IDL document so a strict consumer only sees
// the account fields it recognizes. The transform is a one-shot pipeline over
// a parsed document: filter to known fields, apply flag defaults, normalize
// seed paths, validate program overrides. Each step is a separate function so
// it can be tested on its own.
package idl

import (
	"encoding/json"
	"fmt"
	"os"
)

// allowedAccountFields is the allow-list of account fields a strict IDL
// consumer recognizes. Everything else is stripped.
var allowedAccountFields = map[string]bool{
	"name":     true,
	"writable": true,
	"signer":   true,
	"pda":      true,
	"address":  true,
}

// Fix rewrites all instruction account lists in the document.
func Fix(doc map[string]any) map[string]any {
	instructions, ok := doc["instructions"].([]any)
	if !ok {
		return doc
	}
	for _, instr := range instructions {
		instrMap, ok := instr.(map[string]any)
		if !ok {
			continue
		}
		accounts, ok := instrMap["accounts"].([]any)
		if !ok {
			continue
		}
		fixed := make([]any, 0, len(accounts))
		for _, acc := range accounts {
			fixed = append(fixed, FixAccount(acc))
		}
		instrMap["accounts"] = fixed
	}
	return doc
}

// FixAccount normalizes a single account entry. String entries (plain
// references) pass through unchanged.
func FixAccount(account any) any {
	accMap, ok := account.(map[string]any)
	if !ok {
		return account
	}

	accMap = filterKnownFields(accMap)
	applyFlagDefaults(accMap)

	if pda, ok := accMap["pda"].(map[string]any); ok {
		normalizeSeedPaths(pda)
		validateProgramOverride(pda)
	}

	return accMap
}

// filterKnownFields keeps only the allow-listed account fields.
func filterKnownFields(account map[string]any) map[string]any {
	filtered := make(map[string]any, len(account))
	for k, v := range account {
		if allowedAccountFields[k] {
			filtered[k] = v
		}
	}
	return filtered
}

// applyFlagDefaults makes the writable and signer flags explicit. A strict
// consumer treats a missing flag as an error, so absent means false.
func applyFlagDefaults(account map[string]any) {
	if _, ok := account["writable"]; !ok {
		account["writable"] = false
	}
	if _, ok := account["signer"]; !ok {
		account["signer"] = false
	}
}

// normalizeSeedPaths truncates dotted account-path references in derivation
// seeds to their first component and strips nested account fields.
func normalizeSeedPaths(pda map[string]any) {
	seeds, ok := pda["seeds"].([]any)
	if !ok {
		return
	}
	for _, seed := range seeds {
		seedMap, ok := seed.(map[string]any)
		if !ok {
			continue
		}
		if seedMap["kind"] == "account" {
			if path, ok := seedMap["path"].(string); ok {
				seedMap["path"] = firstPathComponent(path)
			}
		}
		delete(seedMap, "account")
	}
}

// validateProgramOverride drops a derivation's program override unless it
// has both a kind and a value.
func validateProgramOverride(pda map[string]any) {
	prog, ok := pda["program"].(map[string]any)
	if !ok {
		delete(pda, "program")
		return
	}
	_, hasKind := prog["kind"]
	_, hasValue := prog["value"]
	if !hasKind || !hasValue {
		delete(pda, "program")
	}
}

func firstPathComponent(path string) string {
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}

// FixFile reads an IDL document from inPath, applies the transform, and
// writes the result to outPath.
func FixFile(inPath, outPath string) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read IDL: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse IDL: %w", err)
	}

	fixed := Fix(doc)

	out, err := json.MarshalIndent(fixed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal IDL: %w", err)
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write IDL: %w", err)
	}
	return nil
}
