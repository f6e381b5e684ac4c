package chapters

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{
			name: "english and hindi with out-of-range",
			text: "Chapter 3 and Chapter 19 and अध्याय 7",
			want: []int{3, 7},
		},
		{
			name: "no mention",
			text: "no mention here",
			want: nil,
		},
		{
			name: "case insensitive",
			text: "In CHAPTER 2, Krishna explains... see also chapter 12.",
			want: []int{2, 12},
		},
		{
			name: "duplicates collapse",
			text: "Chapter 4, again Chapter 4, and अध्याय 4",
			want: []int{4},
		},
		{
			name: "zero excluded",
			text: "Chapter 0 is not a thing",
			want: nil,
		},
		{
			name: "long number excluded",
			text: "Chapter 123",
			want: nil,
		},
		{
			name: "no whitespace before digits",
			text: "see Chapter18 for the conclusion",
			want: []int{18},
		},
		{
			name: "keyword without number",
			text: "the next chapter discusses devotion",
			want: nil,
		},
		{
			name: "all matches in one scan",
			text: "Chapter 1, Chapter 2, Chapter 3, Chapter 4, Chapter 5",
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "sorted regardless of order",
			text: "अध्याय 12 then Chapter 2",
			want: []int{2, 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	text := "Chapter 9, अध्याय 3, Chapter 15, Chapter 9"
	first := Extract(text)
	for i := 0; i < 10; i++ {
		if got := Extract(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: Extract = %v, want %v", i, got, first)
		}
	}
}
