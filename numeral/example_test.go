package numeral_test

import (
	"fmt"

	"github.com/katalvlaran/cellref/numeral"
)

// ExampleAppendLower shows the bijective width change: no letter stands for
// zero, so 25 is the last single-letter value and 26 the first double.
func ExampleAppendLower() {
	for _, v := range []uint8{0, 25, 26, 255} {
		fmt.Printf("%d -> %s\n", v, numeral.AppendLower(nil, v))
	}
	// Output:
	// 0 -> a
	// 25 -> z
	// 26 -> aa
	// 255 -> iv
}

// ExampleParseDecimal demonstrates the 1-indexed offset and the dedicated
// leading-zero rejection.
func ExampleParseDecimal() {
	v, _ := numeral.ParseDecimal([]byte("10"))
	fmt.Println("\"10\" decodes to", v)

	_, err := numeral.ParseDecimal([]byte("07"))
	fmt.Println("\"07\" fails:", err)
	// Output:
	// "10" decodes to 9
	// "07" fails: numeral: decimal segment starts with zero
}
