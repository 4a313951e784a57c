package plate

// Candidate is one plate reading proposed by a recognition engine from
// one image variant. Candidates are immutable once collected.
type Candidate struct {
	Raw        string  // engine output before any cleaning
	Canonical  string  // Normalize(Raw)
	Confidence float64 // engine confidence in [0,1]
	Valid      bool    // ValidFormat(Canonical)
	Engine     string  // engine that produced the reading
	Variant    int     // index of the variant it was read from
}

// Selection is the winning reading for one detected plate region. A
// zero Selection means no usable text was extracted.
type Selection struct {
	Text       string
	Confidence float64
	Valid      bool
}

// Score weighs a candidate for selection. Longer, well-formed reads are
// statistically more trustworthy than short high-confidence fragments,
// so validity adds a flat bonus and every canonical character adds a
// small one.
func Score(c Candidate) float64 {
	s := c.Confidence + 0.01*float64(len(c.Canonical))
	if c.Valid {
		s += 0.5
	}
	return s
}

// Select picks the single best candidate from the set collected for one
// bounding box. Candidates must be passed in production order
// (engine, then variant, then fragment); that order is the tie-break
// substrate. The running best is replaced when a candidate scores
// strictly higher, or scores exactly equal with a strictly longer raw
// text. The raw (pre-normalization) length comparison is deliberate and
// must not be "fixed" to canonical length; registry matching was tuned
// around it.
func Select(candidates []Candidate) Selection {
	if len(candidates) == 0 {
		return Selection{}
	}

	best := candidates[0]
	bestScore := Score(best)
	for _, c := range candidates[1:] {
		s := Score(c)
		if s > bestScore || (s == bestScore && len(c.Raw) > len(best.Raw)) {
			best = c
			bestScore = s
		}
	}

	// The winner reports its raw engine confidence, not the composite score.
	return Selection{
		Text:       best.Canonical,
		Confidence: best.Confidence,
		Valid:      best.Valid,
	}
}
