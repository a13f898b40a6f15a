package board

// Square returns the index of the square on file f and rank r (both 0-7).
func Square(file, rank int) int {
	return rank*8 + file
}
