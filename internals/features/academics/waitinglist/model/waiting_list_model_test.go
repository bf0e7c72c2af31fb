package model

import "testing"

func TestAcceptanceStatusValid(t *testing.T) {
	for _, s := range []AcceptanceStatus{StatusPending, StatusAccepted, StatusRejected} {
		if !s.Valid() {
			t.Fatalf("%s must be valid", s)
		}
	}
	if AcceptanceStatus("WAITING").Valid() {
		t.Fatalf("unknown status must be invalid")
	}
}

func TestAcceptanceStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() {
		t.Fatalf("PENDING is not terminal")
	}
	if !StatusAccepted.Terminal() || !StatusRejected.Terminal() {
		t.Fatalf("ACCEPTED and REJECTED are terminal")
	}
}
