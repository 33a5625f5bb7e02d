package xshift_test

import (
	"errors"
	"fmt"

	"github.com/omeyang/xshift/pkg/random/xshift"
)

func ExampleGenerate() {
	seed := xshift.Seed{4094795843, 75119171, 1064088777, 3185678737}

	// 同一个种子永远得到同一个值
	fmt.Println(xshift.Generate(seed))
	fmt.Println(xshift.Generate(seed))
	// Output:
	// 3297453526
	// 3297453526
}

func ExampleNext() {
	seed := xshift.Seed{4094795843, 75119171, 1064088777, 3185678737}

	for range 3 {
		var v uint32
		v, seed = xshift.Next(seed)
		fmt.Println(v)
	}
	// Output:
	// 3297453526
	// 301381414
	// 1265009453
}

func ExampleFloat() {
	seed := []uint32{4094795843, 75119171, 1064088777, 3185678737}

	v, err := xshift.Float(seed, 0, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output:
	// 0.7677482270560573
}

func ExampleInt() {
	v, err := xshift.Int([]int64{4094795843, 75119171, 1064088777, 3185678737}, 1, 21)
	fmt.Println(v, err)

	_, err = xshift.Int([]int{0, 123, -1, 2}, 1, 21)
	fmt.Println(errors.Is(err, xshift.ErrInvalidSeed))
	fmt.Println(err)
	// Output:
	// 16 <nil>
	// true
	// Seed must be an array of four integers between [0, 4294967295]
}

func ExampleStream() {
	s := xshift.NewStream(xshift.Seed{4094795843, 75119171, 1064088777, 3185678737})

	for v := range s.Values(2) {
		fmt.Println(v)
	}
	fmt.Println(s.Seed())
	// Output:
	// 3297453526
	// 301381414
	// [1064088777 3185678737 3297453526 301381414]
}
