package common

import "github.com/nspcc-dev/neo-go/pkg/interop/util"

// BytesEqual compares two slices of bytes by wrapped STDLIB equals opcodes.
func BytesEqual(a []byte, b []byte) bool {
	return util.Equals(string(a), string(b))
}

// WalletToScriptHash strips the version prefix and the checksum from a
// base58-decoded wallet and returns the raw account script hash.
func WalletToScriptHash(wallet []byte) []byte {
	// V2 format
	return wallet[1 : len(wallet)-4]
}
