// Package lcm computes the least common multiple of a list of positive integers
// together with three step-by-step derivations of the same value: prime
// factorization, the division method and the list of multiples.
//
// Every function here is pure. The only error source is Parse (and the int64
// overflow guard in LCM); once a NumberList is accepted the derivations are
// total.
package lcm
