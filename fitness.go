package genetic_queens

// Fitness is the count of valid queens. A queen is valid when it attacks,
// and is attacked by, no other queen. The row-per-index encoding rules out
// shared rows, so the only attacks possible are shared columns and shared
// diagonals. A full board of valid queens (fitness == size) is a solution.

// Attacks reports whether the queens in rows r1 and r2 threaten each other.
func Attacks(r1, c1, r2, c2 int) bool {
	if c1 == c2 {
		return true
	}
	return abs(r1-r2) == abs(c1-c2)
}

// CountValidQueens evaluates a layout and returns the number of queens
// with no attacker. Pure; O(n^2) over the layout.
func CountValidQueens(positions []int) int {
	valid := 0
	for r1, c1 := range positions {
		attacked := false
		for r2, c2 := range positions {
			if r1 == r2 {
				continue
			}
			if Attacks(r1, c1, r2, c2) {
				attacked = true
				break
			}
		}
		if !attacked {
			valid++
		}
	}
	return valid
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
