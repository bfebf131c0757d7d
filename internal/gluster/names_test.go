package gluster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedID_Deterministic(t *testing.T) {
	first := DerivedID("abc-123")
	second := DerivedID("abc-123")

	assert.Equal(t, first, second)
	assert.Len(t, first, 16)
}

func TestDerivedID_DistinctInputs(t *testing.T) {
	assert.NotEqual(t, DerivedID("abc-123"), DerivedID("abc-124"))
	assert.NotEqual(t, DerivedID("binding-1"), DerivedID("binding-2"))
}

func TestDerivedID_Charset(t *testing.T) {
	id := DerivedID("some-binding-id")
	for _, r := range id {
		isHex := (r >= 'a' && r <= 'f') || (r >= '0' && r <= '9')
		assert.True(t, isHex, "unexpected character %q in derived id %s", r, id)
	}
}

func TestTenantName_PrefixAndLength(t *testing.T) {
	name := TenantName("abc-123")

	assert.True(t, strings.HasPrefix(name, "op_"))
	assert.Len(t, name, len("op_")+16)
}

func TestTenantName_NormalizesDashes(t *testing.T) {
	// Tenant names hash the dash-normalized id, usernames hash the raw
	// id; the two derivations must differ for the same input.
	assert.Equal(t, TenantName("abc-123"), TenantName("abc_123"))
	assert.Equal(t, "op_"+DerivedID("abc_123"), TenantName("abc-123"))
	assert.NotEqual(t, "op_"+DerivedID("abc-123"), TenantName("abc-123"))
}
