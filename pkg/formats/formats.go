// Package formats provides parsers for legacy circuit asset file formats.
package formats

// Note: PRM (vehicle/scene meshes) is fully implemented in prm.go
// Note: TRV/TRF (track vertex and face buffers) are implemented in trv.go and trf.go
// Note: TRS (pre-computed track-section table) is implemented in trs.go
//
// All multi-byte integer fields in these formats are big-endian.
