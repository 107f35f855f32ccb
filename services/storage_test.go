package services

import "testing"

func TestParseStorageKeyPassthrough(t *testing.T) {
	key, err := ParseStorageKey("beautybook/abc123")
	if err != nil {
		t.Fatalf("ParseStorageKey failed: %v", err)
	}
	if key != "beautybook/abc123" {
		t.Errorf("Expected key unchanged, got %q", key)
	}
}

func TestParseStorageKeyFromURL(t *testing.T) {
	raw := "https://res.cloudinary.com/demo/image/upload/v1712345678/beautybook/abc123.jpg"

	key, err := ParseStorageKey(raw)
	if err != nil {
		t.Fatalf("ParseStorageKey failed: %v", err)
	}
	if key != "beautybook/abc123" {
		t.Errorf("Expected beautybook/abc123, got %q", key)
	}
}

func TestParseStorageKeyFromURLWithoutVersion(t *testing.T) {
	raw := "https://res.cloudinary.com/demo/image/upload/beautybook/abc123.png"

	key, err := ParseStorageKey(raw)
	if err != nil {
		t.Fatalf("ParseStorageKey failed: %v", err)
	}
	if key != "beautybook/abc123" {
		t.Errorf("Expected beautybook/abc123, got %q", key)
	}
}

func TestParseStorageKeyMalformed(t *testing.T) {
	cases := []string{
		"",
		"https://res.cloudinary.com/demo/video/list/abc.jpg",
		"https://example.com/no-upload-segment.jpg",
	}
	for _, raw := range cases {
		if _, err := ParseStorageKey(raw); err == nil {
			t.Errorf("Expected error for %q", raw)
		}
	}
}
