package jsonc_test

import (
	"fmt"

	"github.com/mschirtzinger/jce/internal/jsonc"
)

func ExampleCanonicalize() {
	src := `{
  // seconds
  "timeout": 30,
  "endpoint": "https://example.com/api", /* production */
  "retries": 3
}`

	out, err := jsonc.Canonicalize(src)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(string(out))
	// Output:
	// {
	//   "endpoint": "https://example.com/api",
	//   "retries": 3,
	//   "timeout": 30
	// }
}
