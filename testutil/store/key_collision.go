package store

import (
	"bytes"
	"sort"
	"testing"

	"cosmossdk.io/collections"
)

// prefixBytes resolves a raw or collections prefix into its bytes.
func prefixBytes(t *testing.T, name string, key interface{}) []byte {
	t.Helper()
	var bz []byte
	switch k := key.(type) {
	case []byte:
		bz = k
	case collections.Prefix:
		bz = k.Bytes()
	default:
		t.Fatalf("unknown key type for %s: %T", name, key)
	}
	if len(bz) == 0 {
		t.Fatalf("key %s is empty", name)
	}
	return bz
}

func sortedNames(keys map[string]interface{}) []string {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckKeyCollisions fails the test if two store prefixes are identical.
func CheckKeyCollisions(t *testing.T, keys map[string]interface{}) {
	t.Helper()
	seen := make(map[string]string, len(keys))
	for _, name := range sortedNames(keys) {
		bz := string(prefixBytes(t, name, keys[name]))
		if other, ok := seen[bz]; ok {
			t.Fatalf("KEY COLLISION: %s and %s share prefix 0x%x", other, name, bz)
		}
		seen[bz] = name
	}
}

// CheckPrefixCollisions fails the test if a store prefix starts with another
// one, which would let their key spaces overlap.
func CheckPrefixCollisions(t *testing.T, keys map[string]interface{}) {
	t.Helper()
	names := sortedNames(keys)
	for i, a := range names {
		for _, b := range names[i+1:] {
			ka, kb := prefixBytes(t, a, keys[a]), prefixBytes(t, b, keys[b])
			if bytes.HasPrefix(ka, kb) || bytes.HasPrefix(kb, ka) {
				t.Fatalf("PREFIX COLLISION: %s (0x%x) and %s (0x%x)", a, ka, b, kb)
			}
		}
	}
}
