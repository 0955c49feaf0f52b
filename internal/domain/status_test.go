package domain

import "testing"

func TestParseBookingStatus(t *testing.T) {
	cases := []struct {
		in   string
		want BookingStatus
		ok   bool
	}{
		{"pending", BookingPending, true},
		{"confirmed", BookingConfirmed, true},
		{"cancelled", BookingCancelled, true},
		{"archived", "", false},
		{"Pending", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseBookingStatus(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseBookingStatus(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseQuoteStatus(t *testing.T) {
	cases := []struct {
		in   string
		want QuoteStatus
		ok   bool
	}{
		{"pending", QuotePending, true},
		{"reviewed", QuoteReviewed, true},
		{"contacted", QuoteContacted, true},
		{"confirmed", "", false},
		{"archived", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseQuoteStatus(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseQuoteStatus(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
