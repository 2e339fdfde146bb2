package hand_processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type detectCase struct {
	name   string
	detect Detector
	hand   string
	ok     bool
	want   string
}

func TestDetectors(t *testing.T) {
	cases := []detectCase{
		{"high card", DetectHighCard, "4a Ja 9b 2c Kd 6a", true, "high card: Kd Ja 9b 6a 4a"},
		{"pair", DetectPair, "Ka 2b Kc 9d 5a 3b", true, "pair: Ka Kc 9d 5a 3b"},
		{"no pair", DetectPair, "Aa Kb 9c 7d 5a", false, ""},
		{"two pair", DetectTwoPair, "Aa Ab Kc Kd 2a", true, "two pair: Aa Ab Kc Kd 2a"},
		{"two pair of three", DetectTwoPair, "Qa Qb 5c 5d 9a 9b 2c", true, "two pair: Qa Qb 9a 9b 5c"},
		{"two pair from quads alone", DetectTwoPair, "7a 7b 7c 7d Ka", false, ""},
		{"two pair with quads", DetectTwoPair, "7a 7b 7c 7d Ka Kb", true, "two pair: Ka Kb 7a 7b 7c"},
		{"one pair only", DetectTwoPair, "7a 7b 3c 4d Ka", false, ""},
		{"three of kind", DetectThreeOfKind, "4a Jb 4c 4d 2a 9c", true, "three of kind: 4a 4c 4d Jb 9c"},
		{"no three", DetectThreeOfKind, "4a Jb 4c Jd 2a", false, ""},
		{"straight", DetectStraight, "9a tb Jc Qd Ka 2b", true, "straight: Ka Qd Jc tb 9a"},
		{"highest run", DetectStraight, "4a 5b 6c 7d 8a 9b", true, "straight: 9b 8a 7d 6c 5b"},
		{"wheel", DetectStraight, "Aa 2b 3c 4d 5a", true, "straight: 5a 4d 3c 2b Aa"},
		{"six beats wheel", DetectStraight, "Aa 2b 3c 4d 5a 6b", true, "straight: 6b 5a 4d 3c 2b"},
		{"broadway", DetectStraight, "Ab Kb Qc Jd ta 9a", true, "straight: Ab Kb Qc Jd ta"},
		{"paired straight", DetectStraight, "5a 5b 6c 7d 8a 9b", true, "straight: 9b 8a 7d 6c 5a"},
		{"no wrap", DetectStraight, "Qa Kb Ac 2c 3d", false, ""},
		{"no straight", DetectStraight, "Aa Kb Qc Jd 9a", false, ""},
		{"flush", DetectFlush, "Aa 9a 7a 4a 2a Kb", true, "flush: Aa 9a 7a 4a 2a"},
		{"six suited", DetectFlush, "2a 9a Ka 4a 7a Qa 3b", true, "flush: Ka Qa 9a 7a 4a"},
		{"better of two suits", DetectFlush, "Ka 9a 7a 4a 2a Kb Qb Jb 9b 8b", true, "flush: Kb Qb Jb 9b 8b"},
		{"better of two suits ace", DetectFlush, "Aa 9a 7a 4a 2a Kb Qb Jb 9b 8b", true, "flush: Aa 9a 7a 4a 2a"},
		{"four suited", DetectFlush, "Aa 9a 7a 4a 2b", false, ""},
		{"full house", DetectFullHouse, "3a 3b 3c 9a 9b 2c 5d", true, "full house: 3a 3b 3c 9a 9b"},
		{"two triples", DetectFullHouse, "5a 5b 5c Ja Jb Jc 2d", true, "full house: Ja Jb Jc 5a 5b"},
		{"higher pair", DetectFullHouse, "5a 5b 5c Ja Jb 2c 2d", true, "full house: 5a 5b 5c Ja Jb"},
		{"triple only", DetectFullHouse, "5a 5b 5c Ja 2d", false, ""},
		{"four of kind", DetectFourOfKind, "8a 8b 8c 8d Ka 3b", true, "four of kind: 8a 8b 8c 8d Ka"},
		{"no four", DetectFourOfKind, "8a 8b 8c Kd Ka 3b", false, ""},
		{"straight flush", DetectStraightFlush, "9a ta Ja Qa Ka", true, "straight flush: Ka Qa Ja ta 9a"},
		{"steel wheel", DetectStraightFlush, "Ab 2b 3b 4b 5b 9c", true, "straight flush: 5b 4b 3b 2b Ab"},
		{"royal is not straight flush", DetectStraightFlush, "ta Ja Qa Ka Aa", false, ""},
		{"straight and flush apart", DetectStraightFlush, "2a 3a 4a 5a 7a 6b", false, ""},
		{"royal flush", DetectRoyalFlush, "ta Ja Qa Ka Aa 2b", true, "royal flush: Aa Ka Qa Ja ta"},
		{"king high is not royal", DetectRoyalFlush, "9a ta Ja Qa Ka", false, ""},
	}
	for _, c := range cases {
		got, ok := c.detect(mustCards(t, c.hand))
		assert.Equal(t, c.ok, ok, c.name)
		if c.ok && ok {
			assert.Equal(t, c.want, got.LongASCII(), c.name)
		}
	}
}

func TestDetectorFor(t *testing.T) {
	for r := HighCard; r <= RoyalFlush; r++ {
		d, ok := DetectorFor(r)
		assert.True(t, ok, r.String())
		assert.NotNil(t, d)
	}
	_, ok := DetectorFor(RoyalFlush + 1)
	assert.False(t, ok)
}
