package truth

// Each function below implements one row of spec.md §4.2's truth-function
// table, formulas pinned verbatim from
// original_source/NALInferenceRules.py (F_Revision, F_Deduction, ...,
// F_Eternalization, F_Projection).

// Revision combines two judgments about the same term into one, summing
// their evidence.
func Revision(t1, t2 TruthValue, k float64) TruthValue {
	wp1, w1 := EvidenceFromFreqConf(t1.F, t1.C, k)
	wp2, w2 := EvidenceFromFreqConf(t2.F, t2.C, k)
	return TruthFromEvidence(wp1+wp2, w1+w2, k)
}

// Deduction: (M --> P), (S --> M) |- (S --> P).
func Deduction(t1, t2 TruthValue) TruthValue {
	return TruthValue{F: t1.F * t2.F, C: t1.F * t2.F * t1.C * t2.C}
}

// Analogy: (M --> P), (S <-> M) |- (S --> P).
func Analogy(t1, t2 TruthValue) TruthValue {
	return TruthValue{F: t1.F * t2.F, C: t2.F * t1.C * t2.C}
}

// Resemblance: (M <-> P), (S <-> M) |- (S <-> P).
func Resemblance(t1, t2 TruthValue) TruthValue {
	f1, f2 := t1.F, t2.F
	return TruthValue{F: f1 * f2, C: (f1 + f2 - f1*f2) * t1.C * t2.C}
}

// Induction: (M --> P), (M --> S) |- (S --> P).
func Induction(t1, t2 TruthValue, k float64) TruthValue {
	f1, f2, c1, c2 := t1.F, t2.F, t1.C, t2.C
	wPlus := f1 * f2 * c1 * c2
	w := f2 * c1 * c2
	return TruthFromEvidence(wPlus, w, k)
}

// Abduction: (P --> M), (S --> M) |- (S --> P).
func Abduction(t1, t2 TruthValue, k float64) TruthValue {
	f1, f2, c1, c2 := t1.F, t2.F, t1.C, t2.C
	wPlus := f1 * f2 * c1 * c2
	w := f1 * c1 * c2
	return TruthFromEvidence(wPlus, w, k)
}

// Exemplification: (P --> M), (M --> S) |- (S --> P).
func Exemplification(t1, t2 TruthValue, k float64) TruthValue {
	f1, f2, c1, c2 := t1.F, t2.F, t1.C, t2.C
	w := f1 * f2 * c1 * c2
	return TruthFromEvidence(w, w, k)
}

// Comparison: (M --> P), (M --> S) |- (S <-> P).
func Comparison(t1, t2 TruthValue, k float64) TruthValue {
	f1, f2, c1, c2 := t1.F, t2.F, t1.C, t2.C
	wPlus := f1 * f2 * c1 * c2
	w := (f1 + f2 - f1*f2) * c1 * c2
	return TruthFromEvidence(wPlus, w, k)
}

// Intersection: (S --> M), (S --> P) |- (S --> (M & P)), extensional or
// intensional depending on which connector the dispatcher requests.
func Intersection(t1, t2 TruthValue) TruthValue {
	return TruthValue{F: t1.F * t2.F, C: t1.C * t2.C}
}

// Union: (S --> M), (S --> P) |- (S --> (M | P)).
func Union(t1, t2 TruthValue) TruthValue {
	return TruthValue{F: t1.F + t2.F - t1.F*t2.F, C: t1.C * t2.C}
}

// Difference: (S --> M), (S --> P) |- (S --> (M - P)).
func Difference(t1, t2 TruthValue) TruthValue {
	return TruthValue{F: t1.F * (1 - t2.F), C: t1.C * t2.C}
}

// Negation: (S --> P) |- (S --> (--,P)).
func Negation(t TruthValue) TruthValue {
	return TruthValue{F: 1 - t.F, C: t.C}
}

// Conversion: (P --> S) |- (S --> P), valid only when the copula is
// asymmetric and f > 0 (enforced by rules.Conversion, not here).
func Conversion(t TruthValue, k float64) TruthValue {
	wPlus := t.F * t.C
	return TruthFromEvidence(wPlus, wPlus, k)
}

// Contraposition: (S ==> P) |- ((--,P) ==> (--,S)), valid only when the
// copula is Implication and f < 1 (enforced by rules.Contraposition, not
// here).
func Contraposition(t TruthValue, k float64) TruthValue {
	w := (1 - t.F) * t.C
	return TruthFromEvidence(0, w, k)
}

// Eternalization converts a temporally-scoped judgment into an eternal one.
func Eternalization(t TruthValue, k float64) TruthValue {
	return TruthValue{F: t.F, C: 1 / (k + t.C)}
}

// Projection re-scopes an eternal (or differently-timed) judgment to
// occurrence time tT, evaluated as of the current time tNow. tB is the
// judgment's own occurrence time. When tB, tT and tNow all coincide the
// denominator is zero; the projection is then the identity (factor 1).
func Projection(t TruthValue, tB, tT, tNow float64) TruthValue {
	denom := abs(tB-tNow) + abs(tT-tNow)
	if denom == 0 {
		return t
	}
	factor := 1 - abs(tB-tT)/denom
	return TruthValue{F: t.F, C: factor * t.C}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
