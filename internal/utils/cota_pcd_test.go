package utils

/*

go test -run 'TestCalcCotaPCD' -v ./internal/utils -count=1

*/

import "testing"

func TestCalcCotaPCD(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0}, {99, 0}, {100, 2}, {150, 3}, {200, 4},
		{201, 7}, {500, 15}, {501, 21}, {1000, 40}, {1001, 51},
	}
	for _, tc := range cases {
		if got := CalcCotaPCD(tc.n); got.Minimo != tc.want || got.Quadro != tc.n {
			t.Fatalf("n=%d want=%d got=%+v", tc.n, tc.want, got)
		}
	}
}
