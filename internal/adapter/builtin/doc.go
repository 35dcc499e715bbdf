// Package builtin contains the reference adapters shipped with the Kivai
// runtime: echo, set_temperature, play_music and unlock_door.
//
// Each adapter performs only shallow validation of its own params and
// returns BAD_REQUEST on violation. None of them touch the network or keep
// state across calls.
package builtin
