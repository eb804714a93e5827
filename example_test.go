// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattices_test

import (
	"fmt"
	"log"

	"github.com/nlpodyssey/lattices"
)

func ExampleStructure2d_View() {
	s := lattices.MustStructureOf2d(lattices.MustExtent2d(100, 200), lattices.ThreeChannels)

	r := lattices.MustRange2d(lattices.Index2d{Row: 0, Col: 4}, lattices.MustExtent2d(34, 32))
	v, err := s.View(lattices.RangeView2d(r).AndThen(lattices.ChannelView2d(1)))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(v.Extent())
	fmt.Println(v.Offset(lattices.Index2d{Row: 0, Col: 0}))
	fmt.Println(v.Offset(lattices.Index2d{Row: 1, Col: 1}))

	// Output:
	// [34, 32]
	// 13
	// 616
}

func ExampleStructure2d_Project() {
	s := lattices.MustStructureOf2d(lattices.MustExtent2d(3, 4), lattices.OneChannel)

	col, err := s.Project(lattices.ColProjection2d(2))
	if err != nil {
		log.Fatal(err)
	}
	for i := range lattices.Forward1d(lattices.RangeOf1d(col.Extent())) {
		fmt.Print(col.Offset(i), " ")
	}
	fmt.Println()

	// Output:
	// 2 6 10
}

func ExampleRowMajor2d() {
	r := lattices.RangeOf2d(lattices.MustExtent2d(2, 2))
	for i := range lattices.RowMajor2d(r) {
		fmt.Println(i)
	}

	// Output:
	// (0, 0)
	// (0, 1)
	// (1, 0)
	// (1, 1)
}

func ExamplePermuteViewNd() {
	s := lattices.MustStructureOfNd(lattices.MustExtentNd(2, 3, 4), lattices.OneChannel)

	p, err := s.View(lattices.PermuteViewNd(2, 0, 1))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(p.Extent())
	fmt.Println(p.Layout().Stride())

	// Output:
	// [4, 2, 3]
	// Stride[1, 12, 4]
}
