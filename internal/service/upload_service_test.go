package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/linque-cms/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Upload.MaxSize = 10 << 20
	return cfg
}

func TestAssetKeyShape(t *testing.T) {
	now := time.UnixMilli(1719848400000)
	key := AssetKey("Future of HR!", "Team Photo (1).png", ".png", now)
	want := "posts/future-of-hr/1719848400000-team-photo-1.png"
	if key != want {
		t.Fatalf("expected %q, got %q", want, key)
	}

	// A name already stripped of its extension produces the same key.
	if stripped := AssetKey("Future of HR!", "Team Photo (1)", ".png", now); stripped != want {
		t.Fatalf("expected %q, got %q", want, stripped)
	}
}

func TestAssetKeyEmptySegments(t *testing.T) {
	now := time.UnixMilli(1000)
	key := AssetKey("???", "***", ".svg", now)
	if key != "posts/untitled/1000-untitled.svg" {
		t.Fatalf("unexpected key %q", key)
	}
	if strings.Contains(key, "//") {
		t.Fatalf("key contains empty segment: %q", key)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":      "hello-world",
		"  spaced  out  ":  "spaced-out",
		"Ünïcode Dash—Mix": "n-code-dash-mix",
		"already-slugged":  "already-slugged",
		"UPPER_case.file":  "upper-case-file",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSaveAssetWithoutBucketFailsClosed(t *testing.T) {
	svc := NewUploadService(testConfig(), nil)
	_, err := svc.SaveAsset(context.Background(), nil, "any-post")
	if !errors.Is(err, ErrStorageNotConfigured) {
		t.Fatalf("expected ErrStorageNotConfigured, got %v", err)
	}
}
