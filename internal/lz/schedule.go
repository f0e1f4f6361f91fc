// Package lz implements the dictionary/code engine of the lzs codec and its
// inverse.
//
// The encoder and decoder are coupled state machines: they grow the
// dictionary and widen the code width at exactly the same points. Both
// directions drive the same schedule type so they cannot drift apart.
package lz

// Reserved codes.
const (
	codeNarrowLiteral   = 0 // next 8 bits hold a unit < 256
	codeExtendedLiteral = 1 // next 16 bits hold a unit
	codeEndOfStream     = 2
	firstDictCode       = 3
)

const (
	narrowLiteralBits   = 8
	extendedLiteralBits = 16
	selectorBits        = 2
)

// schedule is the width and dictionary-growth state shared by both directions.
type schedule struct {
	numBits   int // width of the next code
	enlargeIn int // codes left before numBits grows
	dictSize  int // next free dictionary code

	// onTick observes the state after every tick.
	onTick func(numBits, enlargeIn int)
}

func newSchedule() *schedule {
	return &schedule{
		numBits:   2,
		enlargeIn: 2,
		dictSize:  firstDictCode,
	}
}

// newDecodeSchedule returns the state right after the first literal of a
// stream: one dictionary code for the literal and the two ticks the encoder
// spends on it.
func newDecodeSchedule() *schedule {
	s := newSchedule()
	s.assign()
	s.tick()
	s.tick()

	return s
}

// tick accounts for one emitted or consumed code.
func (s *schedule) tick() {
	s.enlargeIn--
	if s.enlargeIn == 0 {
		s.enlargeIn = 1 << s.numBits
		s.numBits++
	}

	if s.onTick != nil {
		s.onTick(s.numBits, s.enlargeIn)
	}
}

// assign hands out the next dictionary code.
func (s *schedule) assign() int {
	code := s.dictSize
	s.dictSize++

	return code
}
