package money

import "testing"

func TestToCents(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"zero", 0.0, 0},
		{"whole dollars", 10.0, 1000},
		{"exact cents", 9.99, 999},
		{"binary float trap", 19.99, 1999}, // 19.99*100 = 1998.9999999999998
		{"tenth of a dollar", 0.1, 10},
		{"tie rounds up", 12.345, 1235},
		{"tie rounds up again", 2.675, 268},
		{"sub-cent tie", 0.005, 1},
		{"large amount", 1999.999, 200000},
		{"sub-cent rounds down", 5.554, 555},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToCents(tt.amount); got != tt.want {
				t.Errorf("ToCents(%v) = %d, want %d", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFromCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  float64
	}{
		{0, 0},
		{1000, 10.00},
		{5997, 59.97},
		{6097, 60.97},
		{1, 0.01},
	}

	for _, tt := range tests {
		if got := FromCents(tt.cents); got != tt.want {
			t.Errorf("FromCents(%d) = %v, want %v", tt.cents, got, tt.want)
		}
	}
}

// Summing per-line cents must be exact where summing float64 line totals is not.
func TestCentsArithmeticIsExact(t *testing.T) {
	lines := []struct {
		price float64
		qty   int64
	}{
		{19.99, 3},
		{0.1, 10},
	}

	var subtotalCents int64
	for _, l := range lines {
		subtotalCents += ToCents(l.price) * l.qty
	}

	if subtotalCents != 6097 {
		t.Fatalf("subtotal cents = %d, want 6097", subtotalCents)
	}
	if got := FromCents(subtotalCents); got != 60.97 {
		t.Errorf("subtotal = %v, want exactly 60.97", got)
	}
}
