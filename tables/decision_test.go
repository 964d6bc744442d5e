package tables

import "testing"

func fragment(columns int, headers []string, start, end bool) Fragment {
	return Fragment{
		HasHeader:      headers != nil,
		IsComplete:     headers != nil,
		AtContentStart: start,
		AtContentEnd:   end,
		ColumnCount:    columns,
		Headers:        headers,
		DataRows:       [][]string{make([]string, columns)},
	}
}

func TestExplain(t *testing.T) {
	header := []string{"A", "B"}

	tests := []struct {
		name       string
		first      Fragment
		second     Fragment
		wantMerge  bool
		wantReason Reason
	}{
		{
			name:       "headerless continuation",
			first:      fragment(2, header, true, true),
			second:     fragment(2, nil, true, false),
			wantMerge:  true,
			wantReason: ReasonContinuation,
		},
		{
			name:       "repeated header",
			first:      fragment(2, header, false, true),
			second:     fragment(2, []string{"A", "B"}, true, true),
			wantMerge:  true,
			wantReason: ReasonRepeatedHeader,
		},
		{
			name:       "different header",
			first:      fragment(2, header, true, true),
			second:     fragment(2, []string{"X", "Y"}, true, true),
			wantReason: ReasonHeaderMismatch,
		},
		{
			name:       "header on second only",
			first:      fragment(2, nil, true, true),
			second:     fragment(2, header, true, true),
			wantReason: ReasonHeaderMismatch,
		},
		{
			name:       "header differs in case",
			first:      fragment(2, header, true, true),
			second:     fragment(2, []string{"a", "b"}, true, true),
			wantReason: ReasonHeaderMismatch,
		},
		{
			name:       "first not at end",
			first:      fragment(2, header, true, false),
			second:     fragment(2, nil, true, true),
			wantReason: ReasonNotAtEnd,
		},
		{
			name:       "second not at start",
			first:      fragment(2, header, true, true),
			second:     fragment(2, nil, false, true),
			wantReason: ReasonNotAtStart,
		},
		{
			name:       "position checked before columns",
			first:      fragment(2, header, true, false),
			second:     fragment(3, nil, true, true),
			wantReason: ReasonNotAtEnd,
		},
		{
			name:       "column mismatch",
			first:      fragment(2, header, true, true),
			second:     fragment(3, nil, true, true),
			wantReason: ReasonColumnMismatch,
		},
		{
			name:       "zero columns never blocks",
			first:      fragment(2, header, true, true),
			second:     fragment(0, nil, true, true),
			wantMerge:  true,
			wantReason: ReasonContinuation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Explain(tt.first, tt.second)
			if got.Merge != tt.wantMerge || got.Reason != tt.wantReason {
				t.Errorf("Explain() = {%v, %v}, want {%v, %v}",
					got.Merge, got.Reason, tt.wantMerge, tt.wantReason)
			}
			if CanMerge(tt.first, tt.second) != tt.wantMerge {
				t.Errorf("CanMerge() = %v, want %v", !tt.wantMerge, tt.wantMerge)
			}
		})
	}
}

func TestCanMerge_DetectedFragments(t *testing.T) {
	page1 := "| A | B |\n| --- | --- |\n| 1 | 2 |"
	page2 := "| 3 | 4 |\n| 5 | 6 |"

	first := DetectFragments(page1)[0]
	second := DetectFragments(page2)[0]
	if !CanMerge(first, second) {
		t.Error("CanMerge() = false, want true for a headerless continuation")
	}
	if CanMerge(second, first) {
		t.Error("CanMerge() = true for reversed order, want false")
	}
}

func TestReasonString(t *testing.T) {
	tests := []struct {
		reason Reason
		want   string
	}{
		{ReasonNotAtEnd, "not at end of page"},
		{ReasonNotAtStart, "not at start of page"},
		{ReasonColumnMismatch, "column count mismatch"},
		{ReasonHeaderMismatch, "header mismatch"},
		{ReasonContinuation, "headerless continuation"},
		{ReasonRepeatedHeader, "repeated header"},
		{Reason(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("Reason(%d).String() = %q, want %q", tt.reason, got, tt.want)
		}
	}
}
