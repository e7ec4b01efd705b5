// Package token implements the TFP token algebra: the 3-tuple
// (query, index, value) that drives the whole generation pipeline, plus
// the ascending/descending comparators an external sorter or priority
// queue needs (including sentinel min/max values).
package token

import "fmt"

// Token is "(false, i, v)" (a link: write v at edge-list position i) or
// "(true, i, v)" (a query: resolve the link at position i, answer at
// position v). Encoding follows spec.md §3: encodedIndex = (index<<1)|query,
// and the natural Go ordering of Token mirrors the spec's lexicographic
// order on (encodedIndex, value).
type Token struct {
	Index uint64
	Value uint64
	Query bool
}

// New builds a token; index is the logical edge-list position, not the
// already-shifted encoded index.
func New(query bool, index, value uint64) Token {
	return Token{Index: index, Value: value, Query: query}
}

// EncodedIndex returns (index<<1)|query, the quantity comparators order on
// before falling back to Value.
func (t Token) EncodedIndex() uint64 {
	e := t.Index << 1
	if t.Query {
		e |= 1
	}
	return e
}

// Less reports whether t sorts strictly before o under the ascending,
// lexicographic (encodedIndex, value) order of spec.md §3. Link tokens at
// an index sort before query tokens at the same index.
func (t Token) Less(o Token) bool {
	te, oe := t.EncodedIndex(), o.EncodedIndex()
	if te != oe {
		return te < oe
	}
	return t.Value < o.Value
}

func (t Token) String() string {
	kind := "link"
	if t.Query {
		kind = "query"
	}
	return fmt.Sprintf("<Token %s idx:%d value:%d>", kind, t.Index, t.Value)
}

// Equal reports field-wise equality.
func (t Token) Equal(o Token) bool {
	return t.Index == o.Index && t.Value == o.Value && t.Query == o.Query
}

const maxU64 = ^uint64(0)

// AscMin and AscMax are the sentinels an ascending-ordered external sorter
// or priority queue uses to represent -infinity/+infinity, per spec.md §3.
func AscMin() Token { return Token{Query: false, Index: 0, Value: 0} }
func AscMax() Token { return Token{Query: true, Index: maxU64 >> 1, Value: maxU64} }

// DescMin and DescMax are the sentinels for a descending-ordered stream:
// the roles of Asc's min/max invert.
func DescMin() Token { return AscMax() }
func DescMax() Token { return AscMin() }

// Comparator is the ascending or descending ordering relation required by
// an external sorter/priority queue, parameterised by direction rather
// than expressed as a subtype hierarchy (spec.md §9 design note).
type Comparator struct {
	descending bool
}

func Ascending() Comparator  { return Comparator{descending: false} }
func Descending() Comparator { return Comparator{descending: true} }

// Less applies the comparator's direction.
func (c Comparator) Less(a, b Token) bool {
	if c.descending {
		return b.Less(a)
	}
	return a.Less(b)
}

// Min and Max return the sentinel tokens for this comparator's direction.
func (c Comparator) Min() Token {
	if c.descending {
		return DescMin()
	}
	return AscMin()
}

func (c Comparator) Max() Token {
	if c.descending {
		return DescMax()
	}
	return AscMax()
}
