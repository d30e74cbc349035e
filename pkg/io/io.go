package io

// Copy copies data from src to dst. If dst is not big enough, return an
// InsufficientBufferError.
func Copy(dst, src []byte) (n int, err error) {
	if len(dst) < len(src) {
		return 0, &InsufficientBufferError{len(src)}
	}

	return copy(dst, src), nil
}

// CopyRows copies rows rows of rowLen bytes from src to dst, advancing each
// side by its own pitch. Both buffers must already be known to hold the
// touched extent.
func CopyRows(dst []byte, dstPitch int, src []byte, srcPitch int, rows, rowLen int) {
	var d, s int
	for i := 0; i < rows; i++ {
		copy(dst[d:d+rowLen], src[s:s+rowLen])
		d += dstPitch
		s += srcPitch
	}
}

// Extent is the number of bytes touched by rows rows of rowLen bytes that
// start at offset and advance by pitch.
func Extent(offset, pitch, rows, rowLen int) int {
	if rows <= 0 || rowLen <= 0 {
		return offset
	}
	return offset + (rows-1)*pitch + rowLen
}
