// Package dice provides the six-sided dice sources used by RollAndMove.
//
// Random is a seedable pseudo-random die for real games. Script and Cycle
// replay fixed values and are meant for tests and reproducible simulations.
package dice
