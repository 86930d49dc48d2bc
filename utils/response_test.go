package utils

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		total       int64
		page, limit int
		totalPages  int
		hasNext     bool
		hasPrev     bool
	}{
		{0, 1, 12, 0, false, false},
		{1, 1, 12, 1, false, false},
		{12, 1, 12, 1, false, false},
		{13, 1, 12, 2, true, false},
		{15, 2, 12, 2, false, true},
		{100, 5, 10, 10, true, true},
	}

	for _, tc := range cases {
		p := NewPagination(tc.total, tc.page, tc.limit)
		if p.TotalPages != tc.totalPages {
			t.Fatalf("total=%d limit=%d: totalPages got %d, want %d", tc.total, tc.limit, p.TotalPages, tc.totalPages)
		}
		if p.HasNextPage != tc.hasNext {
			t.Fatalf("total=%d page=%d: hasNextPage got %v, want %v", tc.total, tc.page, p.HasNextPage, tc.hasNext)
		}
		if p.HasPrevPage != tc.hasPrev {
			t.Fatalf("total=%d page=%d: hasPrevPage got %v, want %v", tc.total, tc.page, p.HasPrevPage, tc.hasPrev)
		}
	}
}

func TestNewPaginationZeroLimit(t *testing.T) {
	p := NewPagination(10, 1, 0)
	if p.TotalPages != 0 {
		t.Fatalf("zero limit must not divide: got %d", p.TotalPages)
	}
}

func TestNewOffsetPagination(t *testing.T) {
	p := NewOffsetPagination(25, 0, 20, 20)
	if !p.HasMore {
		t.Fatalf("20 of 25 returned, hasMore must be true")
	}

	p = NewOffsetPagination(25, 20, 20, 5)
	if p.HasMore {
		t.Fatalf("all 25 consumed, hasMore must be false")
	}

	p = NewOffsetPagination(0, 0, 20, 0)
	if p.HasMore {
		t.Fatalf("empty result has no more rows")
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b+c@sub.domain.org"}
	invalid := []string{"", "user", "user@", "@example.com", "user example.com"}

	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestIsValidRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		if !IsValidRating(rating) {
			t.Fatalf("rating %d should be valid", rating)
		}
	}
	for _, rating := range []int{0, 6, -1} {
		if IsValidRating(rating) {
			t.Fatalf("rating %d should be invalid", rating)
		}
	}
}
