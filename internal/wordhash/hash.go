// Package wordhash provides the fixed, deterministic string hash used to
// key the delete index. Collisions are tolerated by every caller: each
// bucket is re-verified with an exact distance check before a candidate
// is accepted.
package wordhash

// Hash returns the FNV-1a hash of s.
func Hash(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}
