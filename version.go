package texteditor

import (
	_ "embed"
	"regexp"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version is the release number from VERSION, without the leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a SemVer 2.0.0 version.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// shortRevision is how much of a VCS revision String prints.
const shortRevision = 12

// BuildInfo describes the running binary.
type BuildInfo struct {
	Tag       string
	Revision  string // empty when the toolchain did not stamp one
	Modified  bool
	GoVersion string
}

// ReadBuildInfo combines the embedded release with what the Go toolchain
// stamped into the binary.
func ReadBuildInfo() BuildInfo {
	info := BuildInfo{Tag: VersionTag()}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String is the tag, followed by the short revision when one is known.
func (b BuildInfo) String() string {
	if b.Revision == "" {
		return b.Tag
	}
	rev := b.Revision
	if len(rev) > shortRevision {
		rev = rev[:shortRevision]
	}
	if b.Modified {
		rev += "-dirty"
	}
	return b.Tag + " (" + rev + ")"
}
