package frame

// Studio swing code values (ITU-R BT.601/709).
const (
	Black8        = 16
	White8        = 235
	ChromaOffset8 = 128

	Black10        = 64
	White10        = 940
	ChromaOffset10 = 512

	Max8  = 0xFF
	Max10 = 0x3FF
	Max12 = 0xFFF
	Max16 = 0xFFFF
)
