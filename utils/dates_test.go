package utils

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"12:00", 720},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := ParseClock(c.in)
		if err != nil {
			t.Errorf("ParseClock(%q) failed: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, in := range []string{"24:00", "12:60", "noon", "-1:00", ""} {
		if _, err := ParseClock(in); err == nil {
			t.Errorf("ParseClock(%q) should fail", in)
		}
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 570, 720, 1439} {
		s := FormatClock(minutes)
		got, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q) failed: %v", s, err)
		}
		if got != minutes {
			t.Errorf("Round trip of %d gave %d via %q", minutes, got, s)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Glow Studio", "glow-studio"},
		{"  Chez  Marie!  ", "chez-marie"},
		{"Salon #1", "salon-1"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
		if got := Slugify(c.in); !ValidateSlug(got) {
			t.Errorf("Slugify(%q) produced invalid slug %q", c.in, got)
		}
	}
}

func TestValidateSlug(t *testing.T) {
	valid := []string{"glow-studio", "salon1", "a"}
	invalid := []string{"", "Glow-Studio", "-leading", "trailing-", "two--dashes", "with space"}

	for _, s := range valid {
		if !ValidateSlug(s) {
			t.Errorf("Expected %q to be valid", s)
		}
	}
	for _, s := range invalid {
		if ValidateSlug(s) {
			t.Errorf("Expected %q to be invalid", s)
		}
	}
}
