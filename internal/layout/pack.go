package layout

import "github.com/mattn/go-runewidth"

// Pack groups words greedily into lines no wider than width cells when joined
// with delim. A word wider than width on its own gets a group to itself.
// Order is preserved; an empty input yields no groups.
func Pack(words []string, width int, delim string) [][]string {
	if len(words) == 0 {
		return nil
	}

	delimWidth := runewidth.StringWidth(delim)

	var groups [][]string
	var group []string
	cur := 0
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if len(group) > 0 && cur+ww > width {
			groups = append(groups, group)
			group = nil
			cur = 0
		}
		group = append(group, w)
		cur += ww + delimWidth
	}
	return append(groups, group)
}

// GroupWidth is the rendered cell width of a packed group.
func GroupWidth(group []string, delim string) int {
	if len(group) == 0 {
		return 0
	}
	w := runewidth.StringWidth(delim) * (len(group) - 1)
	for _, s := range group {
		w += runewidth.StringWidth(s)
	}
	return w
}
