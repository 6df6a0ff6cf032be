package utils

import "math/rand"

// RandomPayload returns a random string drawn from alphabet, with length
// chosen uniformly in [minLen, maxLen] inclusive.
func RandomPayload(r *rand.Rand, minLen, maxLen int, alphabet string) string {
	length := minLen + r.Intn(maxLen-minLen+1)

	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}

	return string(result)
}
