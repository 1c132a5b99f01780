package main

import (
	"fmt"

	"github.com/henderiw/span/pkg/span"
	"github.com/henderiw/span/pkg/vlantable"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

func main() {
	d := span.Integers[uint16]()

	a := span.ClosedOpen(d, 0, 3)
	b := span.AtLeast(d, 2)
	fmt.Println("intersects", span.Intersects(d, a, b))
	if overlap, ok := span.Intersection(d, a, b); ok {
		fmt.Println("intersection", overlap)
	}
	below, above := span.SetMinus(d, span.LessThan(d, 100), span.Closed[uint16](25, 75))
	fmt.Println("setminus", below, above)

	vt, err := vlantable.New()
	if err != nil {
		panic(err)
	}
	if err := vt.ClaimRange(1000, 2000, map[string]string{"range": "test"}); err != nil {
		panic(err)
	}

	// 1000 sits in the claimed range, 100 is free and gets claimed
	handleId(vt, 1000)
	handleId(vt, 100)
	if !vt.Has(100) {
		panic(fmt.Errorf("entry should exist: 100"))
	}

	ls, err := GetLabelSelector(map[string]string{"range": "test"})
	if err != nil {
		panic(err)
	}
	for _, e := range vt.GetByLabel(ls) {
		fmt.Println("entries by label", e.Span.String(), e.Labels)
	}
}

func handleId(vt vlantable.VLANTable, id uint16) {
	e, err := vt.Get(id)
	if err != nil {
		fmt.Println(err)
		if err := vt.Claim(id, nil); err != nil {
			panic(err)
		}
		return
	}
	fmt.Println("claimed", id, e)
}

func GetLabelSelector(l map[string]string) (labels.Selector, error) {
	fullselector := labels.NewSelector()
	for k, v := range l {
		req, err := labels.NewRequirement(k, selection.Equals, []string{v})
		if err != nil {
			return nil, err
		}
		fullselector = fullselector.Add(*req)
	}
	return fullselector, nil
}
