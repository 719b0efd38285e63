package helper

import "testing"

func TestFlagNameToEnvVar(t *testing.T) {
	if got := FlagNameToEnvVar("discovery-wait"); got != "LP_DISCOVERY_WAIT" {
		t.Fatalf("got %q", got)
	}
}

func TestGetGcpProject(t *testing.T) {
	if got := GetGcpProject("explicit"); got != "explicit" {
		t.Fatalf("got %q; the supplied project must win", got)
	}
	t.Setenv("GOOGLE_CLOUD_PROJECT", "env-project")
	if got := GetGcpProject(""); got != "env-project" {
		t.Fatalf("got %q; expected the env fallback", got)
	}
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	if got := GetGcpProject(""); got != "" {
		t.Fatalf("got %q; expected empty when nothing is set", got)
	}
}

func TestReadValueFromEnvWithDefault(t *testing.T) {
	if got := ReadValueFromEnvWithDefault("LP_TEST_UNSET_VAR", "fallback"); got != "fallback" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("LP_TEST_SET_VAR", "set")
	if got := ReadValueFromEnvWithDefault("LP_TEST_SET_VAR", "fallback"); got != "set" {
		t.Fatalf("got %q", got)
	}
}
