package model

import (
	"errors"
	"testing"
)

func TestStatement_Negate(t *testing.T) {
	intent := Prop("intent")
	if !intent.Positive {
		t.Error("expected Prop to build a positive statement")
	}

	neg := intent.Negate()
	if neg.Positive {
		t.Error("expected negation to flip polarity")
	}
	if neg == intent {
		t.Error("expected a statement and its negation to differ")
	}
	if neg.Negate() != intent {
		t.Error("expected double negation to restore the statement")
	}
}

func TestStatement_StringAndParse(t *testing.T) {
	cases := []struct {
		stmt Statement
		text string
	}{
		{Prop("intent"), "intent"},
		{Prop("intent").Negate(), "-intent"},
	}
	for _, tc := range cases {
		if got := tc.stmt.String(); got != tc.text {
			t.Errorf("String() = %q, want %q", got, tc.text)
		}
		if got := ParseStatement(tc.text); got != tc.stmt {
			t.Errorf("ParseStatement(%q) = %v, want %v", tc.text, got, tc.stmt)
		}
	}
}

func TestNewArgument_Valid(t *testing.T) {
	arg, err := NewArgument("arg1", Prop("murder"),
		[]Statement{Prop("kill"), Prop("intent")}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arg.ID != "arg1" {
		t.Errorf("expected ID arg1, got %q", arg.ID)
	}
}

func TestNewArgument_ConclusionAmongPremises(t *testing.T) {
	groups := []struct {
		name                            string
		premises, assumptions, excepted []Statement
	}{
		{"premises", []Statement{Prop("murder")}, nil, nil},
		{"assumptions", nil, []Statement{Prop("murder")}, nil},
		{"exceptions", nil, nil, []Statement{Prop("murder")}},
	}
	for _, tc := range groups {
		_, err := NewArgument("bad", Prop("murder"), tc.premises, tc.assumptions, tc.excepted)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: expected ConfigError, got %v", tc.name, err)
		}
	}
}

func TestNewArgument_NegatedConclusionAllowed(t *testing.T) {
	// Only the literal conclusion is banned from the premises; its negation
	// is a legitimate premise shape (it makes the argument inapplicable in
	// practice, not malformed).
	if _, err := NewArgument("ok", Prop("p"), []Statement{Prop("p").Negate()}, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestArgument_String(t *testing.T) {
	arg, err := NewArgument("arg2", Prop("intent"),
		[]Statement{Prop("witness1")}, nil, []Statement{Prop("unreliable1")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[witness1], ~[unreliable1] => intent"
	if got := arg.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAudience_WeightDefaults(t *testing.T) {
	audience, err := NewAudience(nil, map[string]float64{"arg1": 0.8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w := audience.Weight("arg1"); w != 0.8 {
		t.Errorf("expected weight 0.8, got %v", w)
	}
	if w := audience.Weight("unlisted"); w != DefaultWeight {
		t.Errorf("expected default weight %v for unlisted argument, got %v", DefaultWeight, w)
	}
}

func TestAudience_ContradictoryAssumptionsRejected(t *testing.T) {
	// Assuming a statement and its negation would make both accepted.
	_, err := NewAudience([]Statement{Prop("p"), Prop("p").Negate()}, nil)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigError for contradictory assumptions, got %v", err)
	}
}

func TestAudience_NegativeWeightRejected(t *testing.T) {
	_, err := NewAudience(nil, map[string]float64{"arg1": -0.1})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigError for negative weight, got %v", err)
	}
}

func TestAudience_Assumes(t *testing.T) {
	audience, err := NewAudience([]Statement{Prop("kill"), Prop("intent").Negate()}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !audience.Assumes(Prop("kill")) {
		t.Error("expected kill to be assumed")
	}
	if audience.Assumes(Prop("intent")) {
		t.Error("intent itself is not assumed, only its negation")
	}
	if !audience.Assumes(Prop("intent").Negate()) {
		t.Error("expected -intent to be assumed")
	}
}

func TestAudience_Fingerprint(t *testing.T) {
	a1, _ := NewAudience([]Statement{Prop("kill"), Prop("witness1")}, map[string]float64{"arg1": 0.8})
	a2, _ := NewAudience([]Statement{Prop("witness1"), Prop("kill")}, map[string]float64{"arg1": 0.8})
	a3, _ := NewAudience([]Statement{Prop("kill")}, map[string]float64{"arg1": 0.8})

	if a1.Fingerprint() != a2.Fingerprint() {
		t.Error("expected identical audiences to share a fingerprint")
	}
	if a1.Fingerprint() == a3.Fingerprint() {
		t.Error("expected different assumption sets to change the fingerprint")
	}
}
