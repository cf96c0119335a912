package domain

import "testing"

func TestFrequencyToggleAppendsInSelectionOrder(t *testing.T) {
	var f Frequency
	f = f.Toggle(Wednesday)
	f = f.Toggle(Monday)
	f = f.Toggle(Friday)

	if got := f.String(); got != "Wed,Mon,Fri" {
		t.Fatalf("expected selection order preserved, got %q", got)
	}
}

func TestFrequencyToggleRemovesWithoutReordering(t *testing.T) {
	var f Frequency
	f = f.Toggle(Monday)
	f = f.Toggle(Wednesday)
	f = f.Toggle(Friday)
	f = f.Toggle(Wednesday)

	if got := f.String(); got != "Mon,Fri" {
		t.Fatalf("expected %q, got %q", "Mon,Fri", got)
	}
}

func TestFrequencyToggleTwiceIsIdentity(t *testing.T) {
	var f Frequency
	f = f.Toggle(Monday)
	f = f.Toggle(Tuesday)

	before := f.String()
	f = f.Toggle(Sunday)
	f = f.Toggle(Sunday)

	if got := f.String(); got != before {
		t.Fatalf("double toggle changed selection: %q -> %q", before, got)
	}
}

func TestFrequencyToggleDoesNotMutateReceiver(t *testing.T) {
	original := Frequency{Monday, Tuesday}
	_ = original.Toggle(Tuesday)
	_ = original.Toggle(Friday)

	if got := original.String(); got != "Mon,Tue" {
		t.Fatalf("receiver mutated: %q", got)
	}
}

func TestFrequencyValidate(t *testing.T) {
	if err := (Frequency{}).Validate(); err == nil {
		t.Fatal("empty frequency should be invalid")
	}
	if err := (Frequency{Monday, Monday}).Validate(); err == nil {
		t.Fatal("duplicate day should be invalid")
	}
	if err := (Frequency{Weekday("mon")}).Validate(); err == nil {
		t.Fatal("non-canonical token should be invalid")
	}
	if err := (Frequency{Monday, Sunday}).Validate(); err != nil {
		t.Fatalf("valid frequency rejected: %v", err)
	}
}

func TestParseFrequencyRoundTrip(t *testing.T) {
	f, err := ParseFrequency("Wed,Mon,Sun")
	if err != nil {
		t.Fatalf("ParseFrequency returned error: %v", err)
	}
	if got := f.String(); got != "Wed,Mon,Sun" {
		t.Fatalf("round trip lost order: %q", got)
	}
}

func TestParseFrequencyErrors(t *testing.T) {
	if _, err := ParseFrequency("Mon,Funday"); err == nil {
		t.Fatal("expected error for unknown token")
	}
	if _, err := ParseFrequency("Mon,Mon"); err == nil {
		t.Fatal("expected error for duplicate token")
	}
	got, err := ParseFrequency("")
	if err != nil || len(got) != 0 {
		t.Fatalf("empty string should parse to empty selection, got %v / %v", got, err)
	}
}

func TestFrequencyClone(t *testing.T) {
	f := Frequency{Monday, Wednesday}
	clone := f.Clone()
	clone[0] = Sunday
	if f[0] != Monday {
		t.Fatal("Clone must not share backing storage")
	}
}
