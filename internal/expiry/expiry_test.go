package expiry

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Date
		ok   bool
	}{
		{"01/2030", Date{time.January, 2030}, true},
		{"11/2021", Date{time.November, 2021}, true},
		{" 9/2019 ", Date{time.September, 2019}, true},
		{"12/9999", Date{time.December, 9999}, true},
		{"", Date{}, false},
		{"13/2030", Date{}, false},
		{"00/2030", Date{}, false},
		{"01-2030", Date{}, false},
		{"01/30", Date{}, false},
		{"ab/2030", Date{}, false},
		{"01/20x0", Date{}, false},
		{"001/2030", Date{}, false},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if (err == nil) != c.ok {
			t.Fatalf("Parse(%q) ok=%v got err=%v", c.in, c.ok, err)
		}
		if err != nil {
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("Parse(%q) err %v is not ErrFormat", c.in, err)
			}
			continue
		}
		if got != c.want {
			t.Fatalf("Parse(%q) got %v want %v", c.in, got, c.want)
		}
	}
}

func TestExpiredAt(t *testing.T) {
	now := time.Date(2021, time.October, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		d       Date
		expired bool
	}{
		{Date{time.September, 2019}, true},
		{Date{time.September, 2021}, true},
		// Current month is still good.
		{Date{time.October, 2021}, false},
		{Date{time.November, 2021}, false},
		{Date{time.January, 2022}, false},
		{Date{time.December, 2020}, true},
	}
	for _, c := range cases {
		if got := c.d.ExpiredAt(now); got != c.expired {
			t.Fatalf("%v.ExpiredAt(%v) = %v want %v", c.d, now, got, c.expired)
		}
	}
}

func TestExpiredAt_LastInstantOfMonth(t *testing.T) {
	d := Date{time.February, 2030}
	end := d.EndOfMonth(time.UTC)
	want := time.Date(2030, time.February, 28, 23, 59, 59, 999999999, time.UTC)
	if !end.Equal(want) {
		t.Fatalf("EndOfMonth got %v want %v", end, want)
	}
	if d.ExpiredAt(end) {
		t.Fatalf("expected not expired at end of month %v", end)
	}
	if !d.ExpiredAt(end.Add(time.Nanosecond)) {
		t.Fatalf("expected expired after %v", end)
	}
}

func TestCardFace(t *testing.T) {
	issue := time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC)
	if got := CardFace(issue, 3); got != "02/2031" {
		t.Fatalf("CardFace got %s want %s", got, "02/2031")
	}
	d, err := Parse(CardFace(issue, 3))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d != (Date{time.February, 2031}) {
		t.Fatalf("round trip got %v", d)
	}
}
