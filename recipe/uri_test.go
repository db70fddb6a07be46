package recipe

import "testing"

func TestSafeLocal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Italian", "Italian"},
		{" Italian ", "Italian"},
		{"Beef Stew", "Beef_Stew"},
		{"Miso Chicken Ramen", "Miso_Chicken_Ramen"},
		{"Côte", "C%C3%B4te"},
		{"a/b", "a%2Fb"},
		{"", ""},
		{"   ", ""},
		// Tabs are not spaces: they survive to the encoding step.
		{"a\tb", "a%09b"},
	}
	for _, tt := range tests {
		if got := SafeLocal(tt.in); got != tt.want {
			t.Errorf("SafeLocal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSafeLocalDeterminism(t *testing.T) {
	if SafeLocal("Beef Stew") != SafeLocal("Beef Stew") {
		t.Error("SafeLocal is not deterministic")
	}
}

func TestSafeLocalPreservesCase(t *testing.T) {
	// Labels differing only in case stay distinct entities.
	if SafeLocal("Italian") == SafeLocal("italian") {
		t.Error("case folding is not part of the normalization contract")
	}
}
