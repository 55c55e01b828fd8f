package rng

// Generator is the source of randomness for card draws
// Implementations need not be safe for concurrent use, the game only draws under its lock
type Generator interface {
	// Intn returns a uniform random number in [0, n)
	Intn(n int) int
}
