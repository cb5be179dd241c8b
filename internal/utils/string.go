package utils

import (
	"context"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// FindClosestString finds the closest string to s in candidates: the candidate
// with the smallest Levenshtein distance. Candidates that differ from s by more
// than maxDifferences are ignored; the third result is false if no candidate is
// close enough. ctx is allowed to be nil.
func FindClosestString(ctx context.Context, candidates []string, s string, maxDifferences int) (string, int, bool) {
	closest := ""
	minDistance := maxDifferences + 1

	for _, candidate := range candidates {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return "", -1, false
			default:
			}
		}

		distance := levenshtein.DistanceForStrings([]rune(candidate), []rune(s), levenshtein.DefaultOptions)
		if distance < minDistance {
			closest = candidate
			minDistance = distance
		}
	}

	if minDistance > maxDifferences {
		return "", -1, false
	}

	return closest, minDistance, true
}
