// Package benchmark compares forestry with other Go loggers writing
// comparable single-line text output to a discarding writer.
//
// It is a separate module so the comparison libraries stay out of
// forestry's own go.mod. Run it with:
//
//	cd benchmark && go test -bench . -benchmem
package benchmark
