package request

import (
	"errors"
	"reflect"
	"testing"
)

func TestAddServicesRequest_Normalized(t *testing.T) {
	r := AddServicesRequest{ServiceIDs: []string{" svc-1 ", "", "   ", "svc-2"}}

	got := r.Normalized()

	if !reflect.DeepEqual(got, []string{"svc-1", "svc-2"}) {
		t.Fatalf("unexpected ids: %v", got)
	}
	if len((AddServicesRequest{ServiceIDs: []string{" "}}).Normalized()) != 0 {
		t.Fatalf("expected blanks to be dropped")
	}
}

func TestParseDays(t *testing.T) {
	if d, err := ParseDays(""); err != nil || d != 30 {
		t.Fatalf("expected default 30, got %d, %v", d, err)
	}
	if d, err := ParseDays(" 7 "); err != nil || d != 7 {
		t.Fatalf("expected 7, got %d, %v", d, err)
	}
	// Range checks belong to the use case; parsing only rejects non-integers.
	if d, err := ParseDays("0"); err != nil || d != 0 {
		t.Fatalf("expected 0, got %d, %v", d, err)
	}
	if _, err := ParseDays("week"); !errors.Is(err, ErrInvalidDays) {
		t.Fatalf("expected ErrInvalidDays, got %v", err)
	}
}
