package parse

import "sort"

// Stream holds the tokens of one parse. Tokens are never removed or reordered:
// taking a token marks it consumed, and the cursor of Next only moves forward.
type Stream struct {
	tokens   []string
	consumed map[int]struct{}
	pos      int
}

// NewStream copies tokens into a new Stream
func NewStream(tokens []string) *Stream {
	t := make([]string, len(tokens))
	copy(t, tokens)

	return &Stream{
		tokens:   t,
		consumed: make(map[int]struct{}, len(t)),
	}
}

// Len returns the number of tokens, consumed or not
func (s *Stream) Len() int {
	return len(s.tokens)
}

// At returns the token at index i, or "" when i is out of range
func (s *Stream) At(i int) string {
	if i < 0 || i >= len(s.tokens) {
		return ""
	}
	return s.tokens[i]
}

// Consume marks the token at index i as taken
func (s *Stream) Consume(i int) {
	if i < 0 || i >= len(s.tokens) {
		return
	}
	s.consumed[i] = struct{}{}
}

// IsConsumed reports whether the token at index i has been taken
func (s *Stream) IsConsumed(i int) bool {
	_, ok := s.consumed[i]
	return ok
}

// Next consumes and returns the first unconsumed token at or after the cursor
func (s *Stream) Next() (string, bool) {
	for ; s.pos < len(s.tokens); s.pos++ {
		if s.IsConsumed(s.pos) {
			continue
		}
		s.Consume(s.pos)
		tok := s.tokens[s.pos]
		s.pos++
		return tok, true
	}

	return "", false
}

// Rewind moves the cursor back to the first token
func (s *Stream) Rewind() {
	s.pos = 0
}

// Remaining returns the unconsumed tokens in their original order
func (s *Stream) Remaining() []string {
	rest := make([]string, 0, len(s.tokens)-len(s.consumed))
	for i, tok := range s.tokens {
		if !s.IsConsumed(i) {
			rest = append(rest, tok)
		}
	}
	return rest
}

// Consumed returns the indices of consumed tokens in ascending order
func (s *Stream) Consumed() []int {
	idx := make([]int, 0, len(s.consumed))
	for i := range s.consumed {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}
