package usagekey

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUsageKey indicates the usage key string is malformed.
var ErrInvalidUsageKey = errors.New("invalid usage key")

const (
	scheme      = "block-v1:"
	typeMarker  = "type@"
	blockMarker = "block@"
)

// UsageKey identifies a unit of learning content, e.g.
// block-v1:OrgX+CS101+2026+type@html+block@introduction.
type UsageKey struct {
	Org       string
	Course    string
	Run       string
	BlockType string
	BlockID   string
}

// Parse splits a serialized usage key into its components.
func Parse(s string) (UsageKey, error) {
	if !strings.HasPrefix(s, scheme) {
		return UsageKey{}, fmt.Errorf("%w: %q", ErrInvalidUsageKey, s)
	}

	parts := strings.Split(strings.TrimPrefix(s, scheme), "+")
	if len(parts) != 5 {
		return UsageKey{}, fmt.Errorf("%w: %q", ErrInvalidUsageKey, s)
	}

	key := UsageKey{Org: parts[0], Course: parts[1], Run: parts[2]}
	if key.Org == "" || key.Course == "" || key.Run == "" {
		return UsageKey{}, fmt.Errorf("%w: %q", ErrInvalidUsageKey, s)
	}

	key.BlockType = strings.TrimPrefix(parts[3], typeMarker)
	key.BlockID = strings.TrimPrefix(parts[4], blockMarker)
	if !strings.HasPrefix(parts[3], typeMarker) || !strings.HasPrefix(parts[4], blockMarker) ||
		key.BlockType == "" || key.BlockID == "" {
		return UsageKey{}, fmt.Errorf("%w: %q", ErrInvalidUsageKey, s)
	}

	return key, nil
}

// String reassembles the serialized form of the key.
func (k UsageKey) String() string {
	return fmt.Sprintf("%s%s+%s+%s+%s%s+%s%s", scheme, k.Org, k.Course, k.Run, typeMarker, k.BlockType, blockMarker, k.BlockID)
}
