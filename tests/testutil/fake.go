// Package testutil provides testing utilities for the finance service.
package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

// Fake provides generators for fake test data.
var Fake = &fakeGenerator{}

type fakeGenerator struct {
	counter int64
}

// String generates a random string with the given prefix.
func (f *fakeGenerator) String(prefix string) string {
	f.counter++
	return fmt.Sprintf("%s_%d_%s", prefix, f.counter, f.randomHex(4))
}

// Email generates a fake email address.
func (f *fakeGenerator) Email() string {
	f.counter++
	return fmt.Sprintf("user%d_%s@example.com", f.counter, f.randomHex(4))
}

// Username generates a fake username.
func (f *fakeGenerator) Username() string {
	f.counter++
	return fmt.Sprintf("user_%d_%s", f.counter, f.randomHex(4))
}

// Name generates a fake category-style name.
func (f *fakeGenerator) Name() string {
	names := []string{"Groceries", "Rent", "Transport", "Dining", "Utilities", "Travel", "Health", "Hobbies"}
	return fmt.Sprintf("%s %s", f.randomChoice(names), f.randomHex(3))
}

// Hex generates a random hex string of the given byte length.
func (f *fakeGenerator) Hex(byteLength int) string {
	return f.randomHex(byteLength)
}

// AmountCents generates a positive amount in cents.
func (f *fakeGenerator) AmountCents() int64 {
	return f.randomInt64(1, 500_00)
}

// Duration generates a random duration between min and max.
func (f *fakeGenerator) Duration(min, max time.Duration) time.Duration {
	minNanos := min.Nanoseconds()
	maxNanos := max.Nanoseconds()
	deltaNanos := f.randomInt64(0, maxNanos-minNanos)
	return time.Duration(minNanos + deltaNanos)
}

// FutureTime generates a time in the future.
func (f *fakeGenerator) FutureTime(maxOffset time.Duration) time.Time {
	offset := f.Duration(time.Minute, maxOffset)
	return time.Now().Add(offset)
}

// PastTime generates a time in the past.
func (f *fakeGenerator) PastTime(maxOffset time.Duration) time.Time {
	offset := f.Duration(time.Minute, maxOffset)
	return time.Now().Add(-offset)
}

// Helpers

func (f *fakeGenerator) randomHex(byteLength int) string {
	bytes := make([]byte, byteLength)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func (f *fakeGenerator) randomChoice(choices []string) string {
	idx := f.randomInt(0, len(choices))
	return choices[idx]
}

func (f *fakeGenerator) randomInt(min, max int) int {
	if max <= min {
		return min
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	return min + int(n.Int64())
}

func (f *fakeGenerator) randomInt64(min, max int64) int64 {
	if max <= min {
		return min
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(max-min))
	return min + n.Int64()
}
