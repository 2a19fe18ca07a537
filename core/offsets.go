package core

// LineFileOffsets returns, for each line, its 0-based starting byte
// offset in the document, assuming every line (including the last) is
// followed by exactly one newline character (§4.9 step 1, §6 "byte-exact
// file offsets consistent with a newline separator of one character").
func LineFileOffsets(lines []Line) []int {
	offsets := make([]int, len(lines))
	pos := 0
	for i, l := range lines {
		offsets[i] = pos
		pos += len(l.Text) + 1
	}
	return offsets
}
