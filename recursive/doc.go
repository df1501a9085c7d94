// Package recursive implements the per-layer fold that distinguishes
// Ligerito from plain Ligero: at each layer, k rounds of sumcheck bind
// the row-index variables, a query set is drawn and opened against the
// current Ligero commitment, and the opened columns are concatenated
// into the next layer's (much smaller) polynomial.
//
// Every layer, including the initial one, operates over binaryfield.F128
// rather than switching field type partway through (the original
// embeds the first Ligero layer's F32 data into F128 once and folds in
// the extension field from then on; this module performs that
// embedding immediately, before the first commitment, so a single
// generic code path serves every layer instead of one path per field
// size). See DESIGN.md.
//
// The next layer's g vector is not the literal outer-product tensor a
// bit-exact reference would build; layer.go documents the simplified,
// self-consistent construction this module uses instead.
package recursive
