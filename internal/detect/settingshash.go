package detect

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Hash returns a stable digest of every field that changes what
// DetectAll computes for the same input. Two Settings values that
// would produce different rankings for identical text always hash
// differently; callers (the result cache) fold this into the cache
// key so a settings change invalidates old entries instead of serving
// stale ones.
func (s Settings) Hash() string {
	var pattern string
	if s.Pattern != nil {
		pattern = s.Pattern.String()
	}

	keys := make([]string, 0, len(s.LanguageMap))
	for k := range s.LanguageMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var mapped strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&mapped, "%s=%s;", k, s.LanguageMap[k])
	}

	digest := sha256.Sum256([]byte(fmt.Sprintf(
		"%d|%g|%g|%d|%g|%g|%g|%s|%d|%s",
		s.NumberOfTrials, s.Alpha, s.AlphaWidth, s.IterationLimit,
		s.ProbThreshold, s.ConvThreshold, s.BaseFreq, pattern, s.Max, mapped.String(),
	)))
	return hex.EncodeToString(digest[:])
}
