package hand_processor

type HMatcher struct{}

// c1 > c2 return 1, c1 < c2 return -1, c1 == c2 return 0
func (hm *HMatcher) Cmp(c1, c2 Combo) int {
	return Compare(c1, c2)
}

// CmpHands detects both hands and compares the results.
func (hm *HMatcher) CmpHands(h1, h2 string) (int, Combo, Combo, error) {
	c1, err := HandStrToCombo(h1)
	if err != nil {
		return 0, Combo{}, Combo{}, err
	}
	c2, err := HandStrToCombo(h2)
	if err != nil {
		return 0, Combo{}, Combo{}, err
	}
	return hm.Cmp(c1, c2), c1, c2, nil
}
