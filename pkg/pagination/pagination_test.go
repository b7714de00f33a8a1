package pagination

import (
	"net/url"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{name: "defaults", in: Params{}, want: Params{Page: 0, Size: DefaultSize}},
		{name: "negative page", in: Params{Page: -3, Size: 20}, want: Params{Page: 0, Size: 20}},
		{name: "oversized", in: Params{Page: 1, Size: 5000}, want: Params{Page: 1, Size: MaxSize}},
		{name: "in range", in: Params{Page: 2, Size: 50}, want: Params{Page: 2, Size: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Fatalf("expected %+v got %+v", tt.want, got)
			}
		})
	}
}

func TestFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("size", "25")
	if got := FromQuery(values); got.Page != 3 || got.Size != 25 {
		t.Fatalf("unexpected params %+v", got)
	}

	values = url.Values{}
	values.Set("page", "junk")
	if got := FromQuery(values); got.Page != 0 || got.Size != DefaultSize {
		t.Fatalf("malformed page should fall back to defaults, got %+v", got)
	}
}
