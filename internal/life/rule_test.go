package life

import "testing"

func TestConwayNext(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Conway.Next(true, n); got != wantAlive {
			t.Errorf("alive with %d neighbors: got %v, expected %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := Conway.Next(false, n); got != wantBorn {
			t.Errorf("dead with %d neighbors: got %v, expected %v", n, got, wantBorn)
		}
	}
}

func TestRuleNextOutOfRange(t *testing.T) {
	if Conway.Next(true, -1) || Conway.Next(false, 9) {
		t.Error("out-of-range neighbor counts should yield dead")
	}
}

func TestRuleString(t *testing.T) {
	if s := Conway.String(); s != "B3/S23" {
		t.Errorf("Conway.String() = %q, expected %q", s, "B3/S23")
	}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"B3/S23", "B3/S23", false},
		{"b3/s23", "B3/S23", false},
		{"S23/B3", "B3/S23", false},
		{"B36/S23", "B36/S23", false},
		{"B/S", "B/S", false},
		{" B2/S ", "B2/S", false},
		{"B3", "", true},
		{"B3/S23/X", "", true},
		{"B3/B2", "", true},
		{"X3/S23", "", true},
		{"B9/S23", "", true},
		{"/S23", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			r, err := ParseRule(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseRule(%q) expected error, got %v", tc.input, r)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRule(%q) unexpected error: %v", tc.input, err)
			}
			if r.String() != tc.expected {
				t.Errorf("ParseRule(%q) = %q, expected %q", tc.input, r.String(), tc.expected)
			}
		})
	}
}

func TestParseRuleConwayEqualsDefault(t *testing.T) {
	r, err := ParseRule("B3/S23")
	if err != nil {
		t.Fatal(err)
	}
	if r != Conway {
		t.Error("parsed B3/S23 should equal Conway")
	}
}
