package usagekey

import (
	"errors"
	"testing"
)

func TestParseValidKey(t *testing.T) {
	key, err := Parse("block-v1:OrgX+CS101+2026_T1+type@html+block@introduction")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if key.Org != "OrgX" || key.Course != "CS101" || key.Run != "2026_T1" {
		t.Fatalf("unexpected course triple: %+v", key)
	}
	if key.BlockType != "html" {
		t.Fatalf("expected block type html, got %q", key.BlockType)
	}
	if key.BlockID != "introduction" {
		t.Fatalf("expected block id introduction, got %q", key.BlockID)
	}
}

func TestParseRoundTrip(t *testing.T) {
	raw := "block-v1:OrgX+CS101+2026_T1+type@video+block@lecture_1"
	key, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if key.String() != raw {
		t.Fatalf("expected round trip %q, got %q", raw, key.String())
	}
}

func TestParseRejectsMalformedKeys(t *testing.T) {
	cases := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"wrong scheme", "course-v1:OrgX+CS101+2026+type@html+block@intro"},
		{"missing parts", "block-v1:OrgX+CS101+type@html+block@intro"},
		{"empty org", "block-v1:+CS101+2026+type@html+block@intro"},
		{"missing type marker", "block-v1:OrgX+CS101+2026+html+block@intro"},
		{"missing block marker", "block-v1:OrgX+CS101+2026+type@html+intro"},
		{"empty block id", "block-v1:OrgX+CS101+2026+type@html+block@"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.key); !errors.Is(err, ErrInvalidUsageKey) {
				t.Fatalf("expected ErrInvalidUsageKey, got %v", err)
			}
		})
	}
}
