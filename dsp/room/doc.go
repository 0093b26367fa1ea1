// Package room describes the static 2-D room model used by the room reverb.
//
// A [Room] places two speakers, one listener and eight reflective surface
// points on a plane. [Room.Resolve] turns that geometry into the path lengths
// the reverb needs: the excess distance of every speaker → reflector →
// listener path over the direct path, the listener ↔ reflector round trip
// used for diffusion, and the longest path per side. [Samples] converts a
// distance into a delay length for a given sample rate.
//
// Reflectors 0-3 are associated with the left side of the room and 4-7 with
// the right side.
package room
