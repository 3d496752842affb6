package colors

const (
	Transparent = "0x00000000"
	Black1      = "0xff181926"
	White       = "0xffffffff"
	WhiteA40    = "0x66ffffff"
	WhiteA70    = "0xb3ffffff"
)
