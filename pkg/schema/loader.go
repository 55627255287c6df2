package schema

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrRemoteLocation is returned for schema locations that are URLs. Loading
// them is left to a Loader that knows how to fetch them.
var ErrRemoteLocation = errors.New("remote schema location not supported")

// Loader opens schema documents by location. Implementations do their own
// retrying, if any.
type Loader interface {
	Open(location string) (io.ReadCloser, error)
}

// LoadError reports a schema document that could not be read or parsed.
type LoadError struct {
	Location string
	Message  string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Location, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// FSLoader loads schema documents from a file system. Locations are
// slash-separated paths relative to the root of the file system.
type FSLoader struct {
	fsys fs.FS
}

// NewFSLoader creates a loader reading from fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// Open opens the document at location.
func (l *FSLoader) Open(location string) (io.ReadCloser, error) {
	if isURL(location) {
		return nil, fmt.Errorf("%w: %s", ErrRemoteLocation, location)
	}
	return l.fsys.Open(cleanLocation(location))
}

// Glob returns the locations matching pattern, sorted. Patterns support **
// for recursive matching.
func (l *FSLoader) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(l.fsys, cleanLocation(pattern))
	if err != nil {
		return nil, fmt.Errorf("expanding glob pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// ResolveLocation resolves ref relative to the document at parent.
func ResolveLocation(parent, ref string) string {
	if isURL(ref) {
		return ref
	}
	if isURL(parent) {
		base, err := url.Parse(parent)
		if err == nil {
			if u, err := base.Parse(ref); err == nil {
				return u.String()
			}
		}
		return ref
	}
	if strings.HasPrefix(ref, "/") {
		return cleanLocation(ref)
	}
	return cleanLocation(path.Join(path.Dir(parent), ref))
}

// TargetFor derives the bundle path of a location. Paths that would leave
// the bundle root and URLs fall back to their base name.
func TargetFor(location string) string {
	if isURL(location) {
		u, err := url.Parse(location)
		if err == nil {
			return path.Base(u.Path)
		}
		return path.Base(location)
	}
	p := cleanLocation(location)
	if p == ".." || strings.HasPrefix(p, "../") {
		return path.Base(p)
	}
	return p
}

func cleanLocation(location string) string {
	p := path.Clean(strings.ReplaceAll(location, "\\", "/"))
	return strings.TrimPrefix(p, "/")
}

func isURL(s string) bool {
	i := strings.Index(s, "://")
	return i > 0 && !strings.ContainsAny(s[:i], "/.")
}
