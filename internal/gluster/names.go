package gluster

import (
	"crypto/md5"
	"math/big"
	"strings"
)

const (
	tenantPrefix = "op_"
	derivedIDLen = 16
)

// DerivedID maps an external identifier to a deterministic internal
// name: md5 of the input, rendered as hex with leading zeros dropped,
// filtered to alphanumerics, first 16 characters. The algorithm is
// fixed; the same input must produce the same name on every node.
func DerivedID(input string) string {
	sum := md5.Sum([]byte(input))
	hex := new(big.Int).SetBytes(sum[:]).Text(16)

	var b strings.Builder
	for _, r := range hex {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	id := b.String()
	if len(id) > derivedIDLen {
		id = id[:derivedIDLen]
	}
	return id
}

// TenantName derives the cluster project name of an instance. Dashes
// are normalized to underscores before hashing; usernames derived for
// bindings hash the binding id as-is.
func TenantName(instanceID string) string {
	return tenantPrefix + DerivedID(strings.ReplaceAll(instanceID, "-", "_"))
}
