package editor

import "testing"

func TestWrap(t *testing.T) {
	tt := []struct {
		name       string
		markup     Markup
		text       string
		start, end int
		want       Edit
	}{
		{"bold selection", Bold, "a word here", 2, 6, Edit{"a **word** here", 10}},
		{"italic selection", Italic, "word", 0, 4, Edit{"*word*", 6}},
		{"code selection", Code, "run make", 4, 8, Edit{"run `make`", 10}},
		{"link selection", Link, "see site", 4, 8, Edit{"see [site](url)", 15}},
		{"empty bold", Bold, "ab", 1, 1, Edit{"a****b", 3}},
		{"empty italic", Italic, "", 0, 0, Edit{"**", 1}},
		{"empty code", Code, "x", 1, 1, Edit{"x``", 2}},
		{"empty link", Link, "x ", 2, 2, Edit{"x [text](url)", 13}},
		{"reversed selection", Bold, "abc", 3, 1, Edit{"a**bc**", 7}},
		{"out of range", Italic, "abc", -4, 99, Edit{"*abc*", 5}},
	}

	for _, v := range tt {
		t.Run(v.name, func(t *testing.T) {
			if got := Wrap(v.markup, v.text, v.start, v.end); got != v.want {
				t.Errorf("expected %+v; got %+v", v.want, got)
			}
		})
	}
}

func TestInsertion(t *testing.T) {
	for m, want := range map[Markup]struct {
		text string
		back int
	}{
		Bold:   {"****", 2},
		Italic: {"**", 1},
		Code:   {"``", 1},
		Link:   {"[text](url)", 0},
	} {
		text, back := Insertion(m)
		if text != want.text || back != want.back {
			t.Errorf("Insertion(%v) = %q, %d; expected %q, %d", m, text, back, want.text, want.back)
		}
	}
}

func TestPosition(t *testing.T) {
	text := "first\nsécond line\n\nlast"
	tt := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{5, 1, 6},
		{6, 2, 1},
		{9, 2, 3},
		{19, 3, 1},
		{len(text), 4, 5},
		{1000, 4, 5},
	}

	for _, v := range tt {
		line, col := Position(text, v.offset)
		if line != v.line || col != v.col {
			t.Errorf("Position(%d) = %d:%d; expected %d:%d", v.offset, line, col, v.line, v.col)
		}
	}
}
