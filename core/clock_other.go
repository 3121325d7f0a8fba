//go:build !(linux || darwin)

package core

func monotonicMicros() uint64 {
	return processMicros()
}
