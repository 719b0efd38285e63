package helper

import (
	"strings"
	"testing"
)

type mockValidationConfig struct {
	Name     string `errorTxt:"name" mandatory:"yes"`
	Optional string `errorTxt:"optional"`
	Count    int    `errorTxt:"count" mandatory:"yes"`
	Files    []string
	Factory  func() error
	hidden   string
}

func TestValidateStructIsPopulated(t *testing.T) {
	cfg := &mockValidationConfig{hidden: "x"}
	err := ValidateStructIsPopulated(cfg)
	if err == nil {
		t.Fatal("expected an error for unset mandatory fields")
	}
	for _, want := range []string{"name", "count"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in error %q", want, err.Error())
		}
	}
	if strings.Contains(err.Error(), "optional") {
		t.Fatalf("non-mandatory field reported in error %q", err.Error())
	}

	cfg.Name = "abc"
	cfg.Count = 1
	if err := ValidateStructIsPopulated(cfg); err != nil {
		t.Fatal("unexpected error: ", err)
	}
}
