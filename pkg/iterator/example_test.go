package iterator_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"csvfileiterator/api/rows"
	"csvfileiterator/pkg/iterator"
)

// ExampleFileIterator_UseFirstRowAsHeader demonstrates header-derived
// column names with a rename.
func ExampleFileIterator_UseFirstRowAsHeader() {
	// prepare a CSV on disk
	data := "a,b,c\n1,2,3\n4,5,6\n"
	path := filepath.Join(os.TempDir(), "example_header.csv")
	_ = os.WriteFile(path, []byte(data), 0o644)
	defer os.Remove(path)

	it, _ := iterator.New(path)
	defer it.Close()

	it.UseFirstRowAsHeader(map[string]string{"b": "beta"})
	fmt.Println(it.GetColumnNames())

	for !it.AtEnd() {
		row := it.Current()
		fmt.Println(row["a"], row["beta"], row["c"])
		it.Advance()
	}
	// Output:
	// [a beta c]
	// 1 2 3
	// 4 5 6
}

// ExampleFileIterator_SetValueFilter demonstrates per-value
// transformation during materialization.
func ExampleFileIterator_SetValueFilter() {
	data := "name,city\n ada , london \n"
	path := filepath.Join(os.TempDir(), "example_filter.csv")
	_ = os.WriteFile(path, []byte(data), 0o644)
	defer os.Remove(path)

	it, _ := iterator.New(path)
	defer it.Close()

	it.UseFirstRowAsHeader(nil)
	it.SetValueFilter(func(v string, _ rows.FilterContext) string {
		return strings.TrimSpace(v)
	})

	row := it.Current()
	fmt.Println(row["name"], row["city"])
	// Output:
	// ada london
}
