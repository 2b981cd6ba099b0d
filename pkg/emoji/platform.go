package emoji

import "sync/atomic"

// UnboundedVersion is the sentinel used when a platform threshold or
// version bound is not constrained. It is larger than any real version
// number.
const UnboundedVersion = 1000.0

// Platform describes the running host as four comparable version numbers,
// one per supported target platform. Availability decisions compare these
// against the per-release thresholds of the version registry, which keeps
// the decision logic independent of any host API and deterministic under
// test.
type Platform struct {
	// IOS is the running iOS version, or a sentinel when not applicable.
	IOS float64

	// MacOS is the running macOS version.
	MacOS float64

	// TVOS is the running tvOS version.
	TVOS float64

	// WatchOS is the running watchOS version.
	WatchOS float64
}

// UnboundedPlatform returns a descriptor that satisfies every known
// release threshold.
func UnboundedPlatform() Platform {
	return Platform{
		IOS:     UnboundedVersion,
		MacOS:   UnboundedVersion,
		TVOS:    UnboundedVersion,
		WatchOS: UnboundedVersion,
	}
}

// Supports reports whether the platform satisfies all four minimum
// thresholds of the given release.
func (p Platform) Supports(v Version) bool {
	return p.IOS >= v.IOS && p.MacOS >= v.MacOS &&
		p.TVOS >= v.TVOS && p.WatchOS >= v.WatchOS
}

// hostPlatform holds the process-wide platform descriptor. Hosts with a
// constrained emoji repertoire inject their descriptor at startup; the
// default assumes the full curated set is renderable, which is the right
// call for hosts where glyph availability is a font concern rather than an
// OS-version one.
var hostPlatform atomic.Pointer[Platform]

func init() {
	p := UnboundedPlatform()
	hostPlatform.Store(&p)
}

// HostPlatform returns the process-wide platform descriptor.
func HostPlatform() Platform {
	return *hostPlatform.Load()
}

// SetHostPlatform injects the process-wide platform descriptor. Call it
// once during host startup, before any availability query: the
// current-unavailable index is memoized on first use for the life of the
// process and is not recomputed when the descriptor changes.
func SetHostPlatform(p Platform) {
	hostPlatform.Store(&p)
}
