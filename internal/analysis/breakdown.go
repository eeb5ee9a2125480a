package analysis

// ComputeBreakdown aggregates raw check results into the four-score
// credibility breakdown.
//
// The fact-check score is the mean confidence over fact checks that carry
// a score. The fallacy score inverts mean severity, so fewer and milder
// fallacies yield a higher score. The AI score is taken from the single
// AI check record; for the overall average it is inverted, since a high
// AI likelihood lowers credibility. The overall score weighs each present
// component equally and is nil when all three are absent.
//
// Entries missing their numeric field are excluded from the average, not
// treated as zero.
func ComputeBreakdown(factChecks []FactCheck, fallacies []Fallacy, aiCheck *AICheck) Breakdown {
	var out Breakdown

	if s, ok := meanFactScore(factChecks); ok {
		out.FactCheckScore = &s
	}
	if s, ok := meanSeverity(fallacies); ok {
		inv := 1.0 - s
		out.LogicalFallacyScore = &inv
	}
	if aiCheck != nil {
		// An AI check without a score counts as zero likelihood, matching
		// the stored-document shape where the field may be omitted.
		s := 0.0
		if aiCheck.Score != nil {
			s = *aiCheck.Score
		}
		out.AIGenerationScore = &s
	}

	var parts []float64
	if out.FactCheckScore != nil {
		parts = append(parts, *out.FactCheckScore)
	}
	if out.LogicalFallacyScore != nil {
		parts = append(parts, *out.LogicalFallacyScore)
	}
	if out.AIGenerationScore != nil {
		parts = append(parts, 1.0-*out.AIGenerationScore)
	}
	if len(parts) > 0 {
		sum := 0.0
		for _, p := range parts {
			sum += p
		}
		overall := sum / float64(len(parts))
		out.OverallCredibilityScore = &overall
	}

	return out
}

func meanFactScore(factChecks []FactCheck) (float64, bool) {
	sum, n := 0.0, 0
	for _, fc := range factChecks {
		if fc.Score == nil {
			continue
		}
		sum += *fc.Score
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func meanSeverity(fallacies []Fallacy) (float64, bool) {
	sum, n := 0.0, 0
	for _, f := range fallacies {
		if f.Severity == nil {
			continue
		}
		sum += *f.Severity
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
