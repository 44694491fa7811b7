package components

import "testing"

func TestLayoutRowSumsExactly(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{80, 3},
		{7, 2},
	}
	for _, c := range cases {
		widths := LayoutRow(c.total, c.n)
		if len(widths) != c.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", c.total, c.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != c.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", c.total, c.n, sum)
		}
		// No width differs from another by more than 1.
		for _, w := range widths {
			if w < widths[c.n-1]-1 || w > widths[0]+1 {
				t.Errorf("LayoutRow(%d, %d) uneven: %v", c.total, c.n, widths)
			}
		}
	}
}

func TestLayoutRowDegenerate(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestCardInnerWidthFloor(t *testing.T) {
	if got := CardInnerWidth(40); got != 36 {
		t.Errorf("CardInnerWidth(40) = %d, want 36", got)
	}
	if got := CardInnerWidth(5); got != 10 {
		t.Errorf("CardInnerWidth(5) = %d, want floor of 10", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey('z') = %d, want -1", got)
	}
}
