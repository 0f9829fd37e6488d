package relay

import "regexp"

// Suffixes follow groq's older context-window naming (mixtral-8x7b-32768).
// Provider specific and likely stale; keep verbatim.
var variantSuffixes = []string{"-32768", "-8192", "-16384", "-instruct-v0.1"}

var suffixPattern = regexp.MustCompile(`(?i)-32768|-8192|-16384|-instruct-v0.1$`)

// ModelVariants lists the candidate names tried after a 404 for model, in
// order. Only the first suffix match is stripped in the last candidate.
func ModelVariants(model string) []string {
	out := make([]string, 0, len(variantSuffixes)+1)
	for _, s := range variantSuffixes {
		out = append(out, model+s)
	}
	return append(out, stripFirstSuffix(model))
}

func stripFirstSuffix(model string) string {
	loc := suffixPattern.FindStringIndex(model)
	if loc == nil {
		return model
	}
	return model[:loc[0]] + model[loc[1]:]
}
