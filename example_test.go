package textflow_test

import (
	"fmt"
	"os"

	textflow "github.com/grindlemire/go-textflow"
)

func ExampleColumn() {
	col := textflow.NewColumn("The quick brown fox jumped over the lazy dog").SetWidth(12)
	fmt.Println(col)
	// Output:
	// The quick
	// brown fox
	// jumped over
	// the lazy dog
}

func ExampleColumn_indent() {
	col := textflow.NewColumn("unbreakable words get hyphenated",
		textflow.WithWidth(10),
		textflow.WithInitialIndent(0),
		textflow.WithIndent(2),
	)
	for line := range col.Lines() {
		fmt.Printf("%q\n", line)
	}
	// Output:
	// "unbreakab-"
	// "  le words"
	// "  get"
	// "  hyphena-"
	// "  ted"
}

func ExampleCombine() {
	left := textflow.NewColumn("This is a load of text that should go on the left").SetWidth(10)
	right := textflow.NewColumn("Here's some more strings for the right").SetWidth(12)

	textflow.Combine(left, textflow.NewSpacer(4), right).WriteTo(os.Stdout)
	// Output:
	// This is a     Here's some
	// load of       more strings
	// text that     for the
	// should go     right
	// on the
	// left
}
