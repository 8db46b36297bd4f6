package bmh_test

import (
	"fmt"

	"github.com/coregx/substr/bmh"
)

func ExampleSearch() {
	pattern := []byte("then")
	shifts := bmh.BuildShifts(pattern)

	fmt.Println(bmh.Search(pattern, []byte("the dog is very dead then"), shifts))
	fmt.Println(bmh.Search(pattern, []byte("now and again"), shifts))
	// Output:
	// 21
	// -1
}

func ExampleBuildShifts() {
	shifts := bmh.BuildShifts([]byte("abca"))
	fmt.Println(shifts['a'], shifts['b'], shifts['c'], shifts['z'])
	// Output: 0 2 1 4
}
