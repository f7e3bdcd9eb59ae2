package generator

import "testing"

func TestParseMarketValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{in: "€487.2m", want: 487_200_000},
		{in: "€12.5m", want: 12_500_000},
		{in: "€850k", want: 850_000},
		{in: "£1.5M", want: 1_500_000},
		{in: "$300", want: 300},
		{in: " €6.2m ", want: 6_200_000},
		{in: "", want: 0},
		{in: "-", want: 0},
		{in: "N/A", want: 0},
		{in: "€ 6.2 m", want: 6_200_000},
		{in: "€abcm", want: 0},
		{in: "€1,5m", want: 0},
		{in: "€1,200k", want: 0},
		{in: "€1.2bn", want: 0},
	}

	for _, tc := range cases {
		if got := ParseMarketValue(tc.in); got != tc.want {
			t.Fatalf("ParseMarketValue(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
