package util

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int32) int32 {
	return min + rand.Int31n(max-min+1)
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomSeriesID generates a random upper case series id
func RandomSeriesID() string {
	return strings.ToUpper(RandomString(6))
}

// RandomEmail generates a random email
func RandomEmail() string {
	return fmt.Sprintf("%s@email.com", RandomString(6))
}

// RandomRate generates a random short rate between 0 and 10%
func RandomRate() float64 {
	return rand.Float64() * 0.1
}

// RandomRates generates n business day dated random rates starting at start
func RandomRates(start time.Time, n int) ([]time.Time, []float64) {
	dates := NextBusinessDates(start, n, nil)
	rates := make([]float64, n)
	for i := range rates {
		rates[i] = RandomRate()
	}
	return dates, rates
}
