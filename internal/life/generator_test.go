package life

import "testing"

func TestGenerateFromSeedDeterministic(t *testing.T) {
	a := GenerateFromSeed(5, 5, 42, 0.5)
	b := GenerateFromSeed(5, 5, 42, 0.5)

	if a.String() != b.String() {
		t.Errorf("same seed produced different maps:\n%s\n---\n%s", a, b)
	}
}

func TestGenerateFromSeedDifferentSeeds(t *testing.T) {
	a := GenerateFromSeed(20, 20, 1, 0.5)
	b := GenerateFromSeed(20, 20, 2, 0.5)

	if a.String() == b.String() {
		t.Error("different seeds produced identical 20x20 maps")
	}
}

func TestGenerateFromSeedProbabilityExtremes(t *testing.T) {
	tests := []struct {
		name     string
		p        float64
		expected int
	}{
		{"zero", 0, 0},
		{"negative", -0.5, 0},
		{"one", 1, 48},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := GenerateFromSeed(8, 6, 123, tc.p)
			if n := g.CountLiving(); n != tc.expected {
				t.Errorf("p=%v: %d living, expected %d", tc.p, n, tc.expected)
			}
		})
	}
}

func TestGenerateFromSeedDensity(t *testing.T) {
	g := GenerateFromSeed(100, 100, 99, 0.3)
	n := g.CountLiving()
	// 10000 draws at p=0.3; allow a generous band.
	if n < 2500 || n > 3500 {
		t.Errorf("expected roughly 3000 living cells, got %d", n)
	}
}

func TestGenerateMapWithoutSeedIsBlank(t *testing.T) {
	g := GenerateMap(10, 10, NoSeed, 1)
	if n := g.CountLiving(); n != 0 {
		t.Errorf("map without seed should be blank, got %d living", n)
	}

	seeded := GenerateMap(10, 10, SeedOf(5), 1)
	if n := seeded.CountLiving(); n != 100 {
		t.Errorf("seeded map at p=1 should be full, got %d living", n)
	}
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		input    string
		expected Seed
	}{
		{"42", SeedOf(42)},
		{" -17 ", SeedOf(-17)},
		{"0", SeedOf(0)},
		{"", NoSeed},
		{"abc", NoSeed},
		{"12x", NoSeed},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseSeed(tc.input); got != tc.expected {
				t.Errorf("ParseSeed(%q) = %+v, expected %+v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestSeedString(t *testing.T) {
	if s := NoSeed.String(); s != "none" {
		t.Errorf("NoSeed.String() = %q, expected %q", s, "none")
	}
	if s := SeedOf(-3).String(); s != "-3" {
		t.Errorf("SeedOf(-3).String() = %q, expected %q", s, "-3")
	}
}

func TestRandomSeedInInt32Range(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := RandomSeed()
		if s < -1<<31 || s > 1<<31-1 {
			t.Fatalf("RandomSeed() = %d outside int32 range", s)
		}
	}
}
