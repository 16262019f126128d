package monetary

import (
	"errors"
	"testing"
)

func TestCurrency_ZeroValue(t *testing.T) {
	var got Currency
	if got != XXX {
		t.Errorf("Currency(0) = %v, want %v", got, XXX)
	}
}

func TestParseCurr(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"999", XXX},
			{"xxx", XXX},
			{"XXX", XXX},
			{"392", JPY},
			{"jpy", JPY},
			{"JPY", JPY},
			{"756", CHF},
			{"chf", CHF},
			{"CHF", CHF},
			{"840", USD},
			{"usd", USD},
			{"USD", USD},
			{"512", OMR},
			{"omr", OMR},
			{"OMR", OMR},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "000", "test", "xbt", "$", "AU$", "BTC", "Usd", " USD", "10.50",
		}
		for _, tt := range tests {
			_, err := ParseCurr(tt)
			if err == nil {
				t.Errorf("ParseCurr(%q) did not fail", tt)
				continue
			}
			if !errors.Is(err, errInvalidCurrency) {
				t.Errorf("ParseCurr(%q) failed with %v, want %v", tt, err, errInvalidCurrency)
			}
		}
	})
}

func TestMustParseCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseCurr(\"UUU\") did not panic")
			}
		}()
		MustParseCurr("UUU")
	})
}

func TestCurrency_Scale(t *testing.T) {
	tests := []struct {
		curr Currency
		want int
	}{
		{XXX, 0},
		{JPY, 0},
		{AED, 2},
		{CHF, 2},
		{EUR, 2},
		{USD, 2},
		{OMR, 3},
		{IQD, 3},
		{Currency(255), 0},
	}
	for _, tt := range tests {
		got := tt.curr.Scale()
		if got != tt.want {
			t.Errorf("%v.Scale() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Num(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "999"},
		{AUD, "036"},
		{JPY, "392"},
		{USD, "840"},
		{OMR, "512"},
	}
	for _, tt := range tests {
		got := tt.curr.Num()
		if got != tt.want {
			t.Errorf("%v.Num() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Code(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "XXX"},
		{CHF, "CHF"},
		{JPY, "JPY"},
		{USD, "USD"},
		{OMR, "OMR"},
		{Currency(255), "XXX"},
	}
	for _, tt := range tests {
		got := tt.curr.Code()
		if got != tt.want {
			t.Errorf("%v.Code() = %v, want %v", tt.curr, got, tt.want)
		}
		if s := tt.curr.String(); s != tt.want {
			t.Errorf("%v.String() = %v, want %v", tt.curr, s, tt.want)
		}
	}
}

func TestCurrency_Text(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for _, c := range []Currency{XXX, CHF, JPY, USD} {
			text, err := c.MarshalText()
			if err != nil {
				t.Errorf("%v.MarshalText() failed: %v", c, err)
				continue
			}
			var got Currency
			if err := got.UnmarshalText(text); err != nil {
				t.Errorf("UnmarshalText(%q) failed: %v", text, err)
				continue
			}
			if got != c {
				t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, c)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		var c Currency
		if err := c.UnmarshalText([]byte("UUU")); err == nil {
			t.Errorf("UnmarshalText(\"UUU\") did not fail")
		}
	})
}
