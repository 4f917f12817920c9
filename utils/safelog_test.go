package utils

import (
	"strings"
	"testing"
)

func TestMaskString(t *testing.T) {
	orig := IsProduction
	defer func() { IsProduction = orig }()

	IsProduction = false
	if got := MaskString("code JU7K9X42 for juan@example.com"); !strings.Contains(got, "JU7K9X42") {
		t.Errorf("expected no masking outside production, got %q", got)
	}

	IsProduction = true
	got := MaskString("code JU7K9X42 for juan@example.com id 0eac703a-40f3-4318-ae96-f28e026a23c6")
	if strings.Contains(got, "JU7K9X42") {
		t.Errorf("invitation code not masked: %q", got)
	}
	if strings.Contains(got, "juan@example.com") {
		t.Errorf("email not masked: %q", got)
	}
	if strings.Contains(got, "0eac703a-40f3-4318-ae96-f28e026a23c6") {
		t.Errorf("uuid not masked: %q", got)
	}
	if !strings.Contains(got, "0eac703a...") {
		t.Errorf("uuid should keep its prefix: %q", got)
	}
}

func TestMaskCode(t *testing.T) {
	orig := IsProduction
	defer func() { IsProduction = orig }()

	IsProduction = true
	if got := MaskCode("JU7K9X42"); got != "JU******" {
		t.Errorf("expected JU******, got %q", got)
	}

	IsProduction = false
	if got := MaskCode("JU7K9X42"); got != "JU7K9X42" {
		t.Errorf("expected code unmasked outside production, got %q", got)
	}
}
