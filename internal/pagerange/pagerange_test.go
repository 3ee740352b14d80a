// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pagerange

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		expr      string
		pageCount int
		want      []int
	}{
		{
			name:      "empty expression selects all pages",
			expr:      "",
			pageCount: 4,
			want:      []int{0, 1, 2, 3},
		},
		{
			name:      "whitespace-only expression selects all pages",
			expr:      "  \t ",
			pageCount: 2,
			want:      []int{0, 1},
		},
		{
			name:      "simple range",
			expr:      "2-4",
			pageCount: 10,
			want:      []int{1, 2, 3},
		},
		{
			name:      "single pages",
			expr:      "1,3,5",
			pageCount: 10,
			want:      []int{0, 2, 4},
		},
		{
			name:      "range start clamped to first page",
			expr:      "0-2",
			pageCount: 10,
			want:      []int{0, 1},
		},
		{
			name:      "range end clamped to page count",
			expr:      "9-100",
			pageCount: 10,
			want:      []int{8, 9},
		},
		{
			name:      "non-numeric token drops out",
			expr:      "abc",
			pageCount: 5,
			want:      []int{},
		},
		{
			name:      "overlapping ranges deduplicate",
			expr:      "1-3,2-5",
			pageCount: 10,
			want:      []int{0, 1, 2, 3, 4},
		},
		{
			name:      "mixed singles and ranges with spaces",
			expr:      " 1 , 4-5 ,2",
			pageCount: 10,
			want:      []int{0, 1, 3, 4},
		},
		{
			name:      "out-of-range single page drops out",
			expr:      "12",
			pageCount: 10,
			want:      []int{},
		},
		{
			name:      "zero single page drops out",
			expr:      "0",
			pageCount: 10,
			want:      []int{},
		},
		{
			name:      "malformed range with three parts drops out",
			expr:      "1-2-3",
			pageCount: 10,
			want:      []int{},
		},
		{
			name:      "range with non-numeric bound drops out",
			expr:      "a-3",
			pageCount: 10,
			want:      []int{},
		},
		{
			name:      "malformed tokens do not poison valid ones",
			expr:      "abc,2,x-y,4-5",
			pageCount: 10,
			want:      []int{1, 3, 4},
		},
		{
			name:      "inverted range contributes nothing",
			expr:      "5-2",
			pageCount: 10,
			want:      []int{},
		},
		{
			name:      "zero page count with empty expression",
			expr:      "",
			pageCount: 0,
			want:      []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.expr, tt.pageCount)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q, %d) = %v, want %v", tt.expr, tt.pageCount, got, tt.want)
			}
		})
	}
}

func TestParse_SortedAndUnique(t *testing.T) {
	exprs := []string{"5,1,3,1", "3-6,1-4", "10,1-10,5", "2-2,2"}
	for _, expr := range exprs {
		got := Parse(expr, 10)
		for i := 1; i < len(got); i++ {
			if got[i] <= got[i-1] {
				t.Errorf("Parse(%q, 10) = %v: not strictly ascending at %d", expr, got, i)
			}
		}
	}
}
