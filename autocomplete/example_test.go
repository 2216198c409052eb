package autocomplete_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-netkit/autocomplete"
)

func ExampleTrie_Complete() {
	tr, err := autocomplete.Build([]string{"abc", "abazacy", "dbcef", "xzz", "gdbc", "abazacy", "xyz", "abazacy", "dbcef", "xyz", "xxx", "xzz"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, prefix := range []string{"ab", "a", "dbcef", "dbcefz", "ba", "x", "xy", ""} {
		got, err := tr.Complete(prefix)
		if errors.Is(err, autocomplete.ErrNotFound) {
			fmt.Printf("%q -> not found\n", prefix)
			continue
		}
		fmt.Printf("%q -> %q\n", prefix, got)
	}
	// Output:
	// "ab" -> "abazacy"
	// "a" -> "abazacy"
	// "dbcef" -> "dbcef"
	// "dbcefz" -> not found
	// "ba" -> not found
	// "x" -> "xyz"
	// "xy" -> "xyz"
	// "" -> "abazacy"
}

func ExampleTrie_Frequency() {
	tr, _ := autocomplete.Build([]string{"ab", "ab", "ac"})
	f, _ := tr.Frequency("ab")
	fmt.Println(f, tr.Len())
	// Output: 2 3
}
