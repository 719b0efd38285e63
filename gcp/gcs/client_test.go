package gcs

import (
	"context"
	"errors"
	"testing"
)

func TestMove(t *testing.T) {
	ctx := context.Background()
	m := NewMockBasicClient()
	m.Objects["synthea/patients.csv"] = []byte("id,name\n1,Alice\n")
	c := NewClientFromBasic(m)

	if err := c.Move(ctx, "synthea/patients.csv", "landing/patients.csv"); err != nil {
		t.Fatalf("unexpected error moving object: %v", err)
	}
	if _, ok := m.Objects["synthea/patients.csv"]; ok {
		t.Fatal("source object should have been deleted after move")
	}
	if string(m.Objects["landing/patients.csv"]) != "id,name\n1,Alice\n" {
		t.Fatal("target object content does not match the source")
	}
}

func TestMoveMissingSource(t *testing.T) {
	c := NewClientFromBasic(NewMockBasicClient())
	err := c.Move(context.Background(), "nope.csv", "landing/nope.csv")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}
