package str_test

import (
	"fmt"

	"github.com/pavanmanishd/corekit/str"
)

func ExampleView_Around() {
	before, after := str.ViewOf("user@example.org").Around('@')
	fmt.Println(before, after)

	// Output:
	// user example.org
}

func ExampleString_CString() {
	s := str.From("abc")
	defer s.Release()
	fmt.Printf("%q %d\n", s.CString(), s.Len())

	// Output:
	// "abc\x00" 3
}
