// Package noise produces synthetic height-fields: a seeded square of random
// RGB bytes, smoothed by a Gaussian blur, reduced to its red channel and
// normalized to [0,1].
//
// The blur sigma controls terrain roughness: 0 leaves white noise (mostly
// impassable at realistic height ranges), larger values give rolling hills.
package noise
