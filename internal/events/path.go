package events

import "strings"

// PathPattern matches document paths such as "orders/O1" against a trigger
// pattern such as "orders/{orderId}" and captures the wildcard segments.
type PathPattern struct {
	raw      string
	segments []string
}

func NewPathPattern(pattern string) PathPattern {
	return PathPattern{
		raw:      pattern,
		segments: splitPath(pattern),
	}
}

func (p PathPattern) String() string {
	return p.raw
}

// Match returns the captured params, or false when path does not match.
func (p PathPattern) Match(path string) (map[string]string, bool) {
	parts := splitPath(path)
	if len(parts) != len(p.segments) || len(parts) == 0 {
		return nil, false
	}

	params := make(map[string]string)
	for i, seg := range p.segments {
		if name, ok := wildcard(seg); ok {
			if parts[i] == "" {
				return nil, false
			}
			params[name] = parts[i]
			continue
		}
		if seg != parts[i] {
			return nil, false
		}
	}
	return params, true
}

// DocumentPath trims a full resource name
// ("projects/p/databases/(default)/documents/orders/O1") down to the path
// relative to the database root ("orders/O1"). Relative paths pass through.
func DocumentPath(name string) string {
	if i := strings.Index(name, "/documents/"); i >= 0 {
		return name[i+len("/documents/"):]
	}
	return strings.TrimPrefix(name, "documents/")
}

func wildcard(seg string) (string, bool) {
	if len(seg) > 2 && strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
