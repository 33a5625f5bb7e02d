package xseed_test

import (
	"fmt"

	"github.com/omeyang/xshift/pkg/random/xseed"
	"github.com/omeyang/xshift/pkg/random/xshift"
)

func ExampleParse() {
	seed, err := xseed.Parse([]string{"4094795843", "75119171", "1064088777", "3185678737"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(xshift.Generate(seed))
	// Output:
	// 3297453526
}

func ExampleHex() {
	seed, _ := xseed.ParseHex("f411a043047a3a433f6cb4c9bde19991")
	fmt.Println(seed)
	fmt.Println(xseed.Hex(seed))
	// Output:
	// [4094795843 75119171 1064088777 3185678737]
	// f411a043047a3a433f6cb4c9bde19991
}

func ExampleFromKey() {
	// 同一个 key 总是得到同一个种子
	a := xseed.FromKey("order-1001")
	b := xseed.FromKey("order-1001")
	fmt.Println(a == b)
	// Output:
	// true
}

func ExampleSecureSeed() {
	seed, err := xseed.SecureSeed()
	if err != nil {
		fmt.Println(err)
		return
	}
	v, err := xshift.FloatSeed(seed, 0, 1)
	fmt.Println(err == nil && v >= 0 && v <= 1)
	// Output:
	// true
}
