package emoji

import "sync"

// resetRuntimeCaches clears the process-wide memoized availability state
// so tests can exercise different platform descriptors. Production code
// has no reset path: the running platform cannot change mid-process.
func resetRuntimeCaches() {
	unavailableOnce = sync.Once{}
	unavailableIndex = nil
	standardMu.Lock()
	standardCache = map[string][]Emoji{}
	standardMu.Unlock()
}
