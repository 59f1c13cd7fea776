package dataset_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/reoring/dataset"
	"github.com/reoring/dataset/codec"
)

func Example() {
	d, err := dataset.Read(strings.NewReader("# word\ttag\nAlice\tNNP\nBob\t-"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d, d.Len())

	lower, err := d.Convert(map[string]dataset.Converter{"word": codec.Lower()}, false)
	if err != nil {
		fmt.Println(err)
		return
	}
	for r := range lower.Rows() {
		fmt.Println(r)
	}
	if err := lower.Write(os.Stdout); err != nil {
		fmt.Println(err)
	}
	// Output:
	// Dataset(word, tag) 2
	// {word: alice, tag: NNP}
	// {word: bob, tag: <nil>}
	// # word	tag
	// alice	NNP
	// bob	-
}

func ExampleNew_lengthMismatch() {
	_, err := dataset.New(
		dataset.Column{Name: "a", Values: []any{1, 2, 3}},
		dataset.Column{Name: "b", Values: []any{1, 2}},
	)
	fmt.Println(err)
	// Output:
	// dataset: field_length_mismatch: field a has length 3 but field b has length 2
}
