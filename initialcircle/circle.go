// Package initialcircle emits the seed graph's link tokens: a cycle over
// n vertices starting at firstID, per spec.md §3/§4.6.
package initialcircle

import "github.com/tfp-graph/pagg/token"

// Circle is the InitialCircle stream: 2n link tokens forming a cycle on
// vertex IDs [firstID, firstID+n).
type Circle struct {
	numTokens uint64
	firstID   uint64
	nextIdx   uint64
	current   token.Token
	empty     bool
}

// New builds a seed cycle over numVertices vertices starting at firstID.
func New(numVertices, firstID uint64) *Circle {
	c := &Circle{numTokens: 2 * numVertices, firstID: firstID}
	c.advance()
	return c
}

// MaxVertexID is the highest vertex ID this generator will use.
func (c *Circle) MaxVertexID() uint64 {
	return c.firstID + c.numTokens/2 - 1
}

// NumberOfEdges is the total number of edges this generator produces.
func (c *Circle) NumberOfEdges() uint64 { return c.numTokens / 2 }

func (c *Circle) advance() {
	if c.nextIdx >= c.numTokens {
		c.empty = true
		return
	}
	k := c.nextIdx
	if k == c.numTokens-1 {
		c.current = token.New(false, k, c.firstID)
	} else {
		c.current = token.New(false, k, c.firstID+(k+1)/2)
	}
	c.nextIdx++
}

func (c *Circle) Empty() bool        { return c.empty }
func (c *Circle) Current() token.Token { return c.current }
func (c *Circle) Advance()           { c.advance() }
