package textflow

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestColumns_Combined(t *testing.T) {
	a := NewColumn("This is a load of text that should go on the left").SetWidth(10)
	b := NewColumn("Here's some more strings that should be formatted to the right. " +
		"It's longer so there should be blanks on the left").SetWidth(12)

	layout := Combine(a, NewSpacer(4), b)

	want := []string{
		"This is a     Here's some",
		"load of       more strings",
		"text that     that should",
		"should go     be formatted",
		"on the        to the",
		"left          right. It's",
		"              longer so",
		"              there should",
		"              be blanks on",
		"              the left",
	}
	if diff := cmp.Diff(want, slices.Collect(layout.Lines())); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if got := layout.String(); got != strings.Join(want, "\n") {
		t.Errorf("String() = %q", got)
	}
	if got := layout.Height(); got != len(want) {
		t.Errorf("Height() = %d, want %d", got, len(want))
	}
	if got := layout.Width(); got != 26 {
		t.Errorf("Width() = %d, want 26", got)
	}
}

func TestColumns_ShorterRightColumn(t *testing.T) {
	left := NewColumn("one two three four").SetWidth(6)
	right := NewColumn("x").SetWidth(3)

	want := []string{
		"one    x",
		"two",
		"three",
		"four",
	}
	got := slices.Collect(Combine(left, NewSpacer(1), right).Lines())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestColumns_PaddingPreservesAlignment(t *testing.T) {
	short := NewColumn("a b").SetWidth(2)
	tall := NewColumn("1 2 3 4").SetWidth(2)

	layout := Combine(short, NewSpacer(4), tall)
	rows := slices.Collect(layout.Lines())
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4: %q", len(rows), rows)
	}
	for i, row := range rows {
		if idx := strings.IndexAny(row, "1234"); idx != 6 {
			t.Errorf("row %d %q: right column starts at %d, want 6", i, row, idx)
		}
	}
}

func TestColumns_Flattening(t *testing.T) {
	a := NewColumn("a").SetWidth(3)
	b := NewColumn("b").SetWidth(3)
	c := NewColumn("c").SetWidth(3)

	nested := Combine(Combine(a, NewSpacer(1)), Combine(b, NewSpacer(1), c))
	blocks := nested.Blocks()
	if len(blocks) != 5 {
		t.Fatalf("len(Blocks()) = %d, want 5", len(blocks))
	}
	for i, b := range blocks {
		if _, ok := b.(*Columns); ok {
			t.Errorf("block %d is a nested *Columns", i)
		}
	}

	added := Combine(a).Add(NewSpacer(1)).Add(Combine(b, c))
	if got := len(added.Blocks()); got != 4 {
		t.Errorf("len(Blocks()) after Add = %d, want 4", got)
	}
	if got, want := added.String(), "a   b  c"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestColumns_CopiesColumns(t *testing.T) {
	col := NewColumn("alpha beta").SetWidth(20)
	layout := Combine(col, NewSpacer(2), NewColumn("x").SetWidth(1))

	col.SetWidth(5)
	if got, want := layout.String(), "alpha beta            x"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestColumns_Empty(t *testing.T) {
	layout := Combine()
	if !layout.Iterator().Done() {
		t.Error("empty layout has rows")
	}
	if got := layout.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
	if got := layout.Height(); got != 0 {
		t.Errorf("Height() = %d, want 0", got)
	}
}

func TestRowIterator_LineAfterDonePanics(t *testing.T) {
	it := Combine(NewColumn("a").SetWidth(3), NewSpacer(1), NewColumn("b").SetWidth(3)).Iterator()
	if got := it.Line(); got != "a   b" {
		t.Errorf("Line() = %q, want %q", got, "a   b")
	}
	it.Next()
	if !it.Done() {
		t.Fatal("Done() = false after last row")
	}

	msg := recoverString(func() { it.Line() })
	if !strings.Contains(msg, "finished iterator") {
		t.Errorf("panic = %q, want finished iterator message", msg)
	}

	// Next on a finished iterator is a no-op.
	it.Next()
	if !it.Done() {
		t.Error("Done() = false after extra Next")
	}
}

func TestLineIterator_LineAfterDonePanics(t *testing.T) {
	it := NewColumn("a").Iterator()
	it.Next()
	it.Next()
	if !it.Done() {
		t.Fatal("Done() = false after last line")
	}
	msg := recoverString(func() { it.Line() })
	if !strings.Contains(msg, "finished iterator") {
		t.Errorf("panic = %q, want finished iterator message", msg)
	}
}

func TestColumns_SpacerOnly(t *testing.T) {
	layout := Combine(NewSpacer(5))
	if got := layout.Height(); got != 1 {
		t.Errorf("Height() = %d, want 1", got)
	}
	if got := layout.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestColumns_Validate(t *testing.T) {
	good := NewColumn("ok").SetWidth(5)
	bad := NewColumn("bad").SetWidth(4).SetIndent(4)

	if err := Combine(good, NewSpacer(1), good).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	err := Combine(good, bad, NewColumn("x").SetWidth(0)).Validate()
	if !errors.Is(err, ErrIndentTooWide) || !errors.Is(err, ErrZeroWidth) {
		t.Errorf("Validate() = %v, want both indent and width errors", err)
	}

	msg := recoverString(func() { _ = Combine(good, bad).String() })
	if !strings.Contains(msg, ErrIndentTooWide.Error()) {
		t.Errorf("panic = %q, want it to mention %q", msg, ErrIndentTooWide)
	}
}

func TestColumns_WriteToMatchesString(t *testing.T) {
	layout := Combine(
		NewColumn(civilWar).SetWidth(30),
		NewSpacer(3),
		NewColumn(quickFox).SetWidth(12).SetIndent(2),
	)

	var b strings.Builder
	n, err := layout.WriteTo(&b)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if int(n) != b.Len() {
		t.Errorf("WriteTo() = %d bytes, wrote %d", n, b.Len())
	}
	if b.String() != layout.String() {
		t.Error("WriteTo and String disagree")
	}
	if b.String() != strings.Join(slices.Collect(layout.Lines()), "\n") {
		t.Error("WriteTo and joined Lines disagree")
	}
}

func TestSpacer(t *testing.T) {
	s := NewSpacer(4)
	if s.Width() != 4 || s.Height() != 1 || s.String() != "" {
		t.Errorf("Spacer = width %d height %d string %q", s.Width(), s.Height(), s.String())
	}
	if got := slices.Collect(s.Lines()); len(got) != 1 || got[0] != "" {
		t.Errorf("Lines() = %q, want one empty line", got)
	}

	if msg := recoverString(func() { NewSpacer(-1) }); msg == "" {
		t.Error("NewSpacer(-1) did not panic")
	}
	if z := NewSpacer(0); z.Width() != 0 {
		t.Errorf("NewSpacer(0).Width() = %d", z.Width())
	}
}
