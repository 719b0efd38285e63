package config

import (
	"errors"
	"testing"
)

func TestFileSetGetDelete(t *testing.T) {
	c := NewConfigFileWithDir(t.TempDir(), "config.yaml")

	// Get against a missing file should report the key as missing.
	var val string
	err := c.Get("region", &val)
	if !errors.As(err, &KeyNotFoundError{}) {
		t.Fatalf("expected KeyNotFoundError, got %v", err)
	}

	if err := c.Set("region", "us-central1"); err != nil {
		t.Fatalf("unexpected error setting key: %v", err)
	}
	if err := c.Get("region", &val); err != nil {
		t.Fatalf("unexpected error getting key: %v", err)
	}
	if val != "us-central1" {
		t.Fatalf("got %q; expected %q", val, "us-central1")
	}

	// A fresh File over the same path must see persisted data.
	c2 := NewConfigFileWithDir(c.Dirname, c.FileName)
	if err := c2.Get("region", &val); err != nil {
		t.Fatalf("unexpected error reading persisted key: %v", err)
	}

	if err := c2.Delete("region"); err != nil {
		t.Fatalf("unexpected error deleting key: %v", err)
	}
	if err := c2.Get("region", &val); err == nil {
		t.Fatal("expected an error fetching a deleted key")
	}
}
