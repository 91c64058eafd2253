package sentiment

import "strconv"

const confidencePlaces = 4

// RoundConfidence rounds the exact binary value of score to four places,
// resolving exact ties to even.
func RoundConfidence(score float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(score, 'f', confidencePlaces, 64), 64)
	if err != nil {
		return score
	}
	return rounded
}
