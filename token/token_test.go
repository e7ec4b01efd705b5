package token

import "testing"

func TestOrderingWithinIndex(t *testing.T) {
	link := New(false, 5, 100)
	query := New(true, 5, 1)
	if !link.Less(query) {
		t.Fatalf("link token at same index must sort before query token")
	}
}

func TestOrderingAcrossIndex(t *testing.T) {
	a := New(true, 3, 999)
	b := New(false, 4, 0)
	if !a.Less(b) {
		t.Fatalf("token at lower index must sort first regardless of query flag")
	}
}

func TestSentinelsBoundEverything(t *testing.T) {
	min, max := AscMin(), AscMax()
	samples := []Token{New(false, 0, 0), New(true, 1000, 5), New(false, 1<<40, 1<<40)}
	for _, s := range samples {
		if max.Less(s) {
			t.Fatalf("AscMax should not be less than %v", s)
		}
		if s.Less(min) {
			t.Fatalf("%v should not be less than AscMin", s)
		}
	}
}

func TestDescendingInvertsOrder(t *testing.T) {
	a := New(false, 1, 0)
	b := New(false, 2, 0)
	asc, desc := Ascending(), Descending()
	if !asc.Less(a, b) {
		t.Fatalf("expected a < b ascending")
	}
	if !desc.Less(b, a) {
		t.Fatalf("expected b < a descending")
	}
}

func TestCompressedRoundTrip(t *testing.T) {
	cases := []Token{
		New(false, 0, 0),
		New(true, 12345, 67890),
		New(false, (1<<47)-1, (1<<47)-1),
	}
	for _, tok := range cases {
		got := Compress(tok).Decompress()
		if !got.Equal(tok) {
			t.Fatalf("round trip mismatch: got %v want %v", got, tok)
		}
	}
}
