package layout

import "strconv"

// circled returns the circled-digit form of n: ① for 1 up to ㊿ for 50.
// Numbers outside that range are written as "(n)".
func circled(n int) string {
	switch {
	case n >= 1 && n <= 20:
		return string(rune(0x2460 + n - 1)) // ①..⑳
	case n >= 21 && n <= 35:
		return string(rune(0x3251 + n - 21)) // ㉑..㉟
	case n >= 36 && n <= 50:
		return string(rune(0x32B1 + n - 36)) // ㊱..㊿
	default:
		return "(" + strconv.Itoa(n) + ")"
	}
}

// placeholderCaption is used when an image section has no caption to consume.
func placeholderCaption(n int) string {
	return "图" + circled(n)
}
