package emoji

import "sync"

// Version is one curated emoji release: an ordered numeric identifier, the
// minimum platform versions the release shipped with, and the ordered
// emoji it introduced. The set of all releases is fixed, hand-curated
// static data, initialized once and never mutated.
type Version struct {
	// Version is the release identifier. Releases form a strict total
	// order by this value.
	Version float64

	// IOS, MacOS, TVOS and WatchOS are the minimum platform versions in
	// which the release became available.
	IOS     float64
	MacOS   float64
	TVOS    float64
	WatchOS float64

	// Comment is optional free-text about the release.
	Comment string

	// chars holds the introduced emoji as a literal string, skin-tone
	// base glyphs only; variants are expanded on query.
	chars string
}

// Emojis returns the ordered emoji introduced in this release, with
// skin-tone variants expanded after their base glyph.
func (v Version) Emojis() []Emoji {
	base := Parse(v.chars)
	result := make([]Emoji, 0, len(base))
	for _, e := range base {
		result = append(result, e)
		result = append(result, e.SkinToneVariants()...)
	}
	return result
}

// LaterVersions returns the releases with a strictly greater identifier,
// in ascending order.
func (v Version) LaterVersions() []Version {
	var later []Version
	for _, other := range AllVersions() {
		if other.Version > v.Version {
			later = append(later, other)
		}
	}
	return later
}

// UnavailableEmojis returns the union of emoji introduced by all releases
// newer than this one: the emoji a runtime pinned to this release cannot
// present.
func (v Version) UnavailableEmojis() []Emoji {
	var result []Emoji
	for _, later := range v.LaterVersions() {
		result = append(result, later.Emojis()...)
	}
	return result
}

// VersionBound narrows AllVersionsAvailableIn.
type VersionBound func(*versionBounds)

type versionBounds struct {
	version, ios, macOS, tvOS, watchOS float64
}

// MaxVersion bounds the release identifier.
func MaxVersion(v float64) VersionBound { return func(b *versionBounds) { b.version = v } }

// MaxIOS bounds the iOS threshold.
func MaxIOS(v float64) VersionBound { return func(b *versionBounds) { b.ios = v } }

// MaxMacOS bounds the macOS threshold.
func MaxMacOS(v float64) VersionBound { return func(b *versionBounds) { b.macOS = v } }

// MaxTVOS bounds the tvOS threshold.
func MaxTVOS(v float64) VersionBound { return func(b *versionBounds) { b.tvOS = v } }

// MaxWatchOS bounds the watchOS threshold.
func MaxWatchOS(v float64) VersionBound { return func(b *versionBounds) { b.watchOS = v } }

// AllVersionsAvailableIn filters the curated release list to entries whose
// identifier and platform thresholds all lie within the given bounds.
// Omitted bounds are unbounded. The result preserves the registry's
// ascending order, oldest first.
func AllVersionsAvailableIn(bounds ...VersionBound) []Version {
	b := versionBounds{
		version: UnboundedVersion,
		ios:     UnboundedVersion,
		macOS:   UnboundedVersion,
		tvOS:    UnboundedVersion,
		watchOS: UnboundedVersion,
	}
	for _, apply := range bounds {
		apply(&b)
	}
	var result []Version
	for _, v := range AllVersions() {
		if v.Version <= b.version && v.IOS <= b.ios && v.MacOS <= b.macOS &&
			v.TVOS <= b.tvOS && v.WatchOS <= b.watchOS {
			result = append(result, v)
		}
	}
	return result
}

// CurrentVersion returns the newest release whose thresholds are all
// satisfied by the given platform descriptor. When none match it falls
// back to the oldest defined release: a runtime we know nothing about is
// assumed to have the least capability, which only ever hides emoji, never
// shows unrenderable ones.
func CurrentVersion(p Platform) Version {
	all := AllVersions()
	for i := len(all) - 1; i >= 0; i-- {
		if p.Supports(all[i]) {
			return all[i]
		}
	}
	return all[0]
}

// HostVersion returns the current release for the process-wide host
// platform descriptor.
func HostVersion() Version {
	return CurrentVersion(HostPlatform())
}

// VersionForIOS returns the latest release available on the given iOS
// version. ok is false when no release qualifies.
func VersionForIOS(v float64) (Version, bool) {
	return latestWhere(func(r Version) float64 { return r.IOS }, v)
}

// VersionForMacOS returns the latest release available on the given macOS
// version.
func VersionForMacOS(v float64) (Version, bool) {
	return latestWhere(func(r Version) float64 { return r.MacOS }, v)
}

// VersionForTVOS returns the latest release available on the given tvOS
// version.
func VersionForTVOS(v float64) (Version, bool) {
	return latestWhere(func(r Version) float64 { return r.TVOS }, v)
}

// VersionForWatchOS returns the latest release available on the given
// watchOS version.
func VersionForWatchOS(v float64) (Version, bool) {
	return latestWhere(func(r Version) float64 { return r.WatchOS }, v)
}

func latestWhere(threshold func(Version) float64, v float64) (Version, bool) {
	all := AllVersions()
	for i := len(all) - 1; i >= 0; i-- {
		if threshold(all[i]) <= v {
			return all[i], true
		}
	}
	return Version{}, false
}

var (
	unavailableOnce  sync.Once
	unavailableIndex map[string]struct{}
)

// currentUnavailableIndex is the process-wide index of emoji unavailable
// on the host runtime, keyed by normalized character sequence. It is
// computed at most once per process: the running platform's version cannot
// change while the process lives, so there is no refresh path. Safe for
// concurrent readers.
func currentUnavailableIndex() map[string]struct{} {
	unavailableOnce.Do(func() {
		unavailable := HostVersion().UnavailableEmojis()
		unavailableIndex = make(map[string]struct{}, len(unavailable))
		for _, e := range unavailable {
			unavailableIndex[normalizeChar(e.Char)] = struct{}{}
		}
	})
	return unavailableIndex
}

// CurrentUnavailableEmojis returns the emoji the host runtime cannot
// present, in registry order.
func CurrentUnavailableEmojis() []Emoji {
	return HostVersion().UnavailableEmojis()
}

// IsAvailable reports whether the emoji can be presented on the host
// runtime. O(1) against the memoized unavailable index.
func (e Emoji) IsAvailable() bool {
	_, unavailable := currentUnavailableIndex()[normalizeChar(e.Char)]
	return !unavailable
}

// IsUnavailable reports whether the emoji cannot be presented on the host
// runtime.
func (e Emoji) IsUnavailable() bool {
	return !e.IsAvailable()
}
