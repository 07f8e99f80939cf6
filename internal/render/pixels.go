package render

import "uncurl/internal/grid"

// expandRGBA converts packed 3-byte RGB cells into opaque RGBA pixels in
// buf, which must hold 4 bytes per cell.
func expandRGBA(buf []byte, pix []byte) {
	n := len(pix) / grid.RecordSize
	for i := 0; i < n; i++ {
		src := i * grid.RecordSize
		dst := i * 4
		buf[dst+0] = pix[src+0]
		buf[dst+1] = pix[src+1]
		buf[dst+2] = pix[src+2]
		buf[dst+3] = 0xff
	}
}
