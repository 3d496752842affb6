package phrase

// Buckets is the number of five minute steps in an hour.
const Buckets = 12

// HalfPrefix is prepended to the hour name around the half hour.
const HalfPrefix = "halv "

//nolint:gochecknoglobals // read-only lookup tables
var (
	hourText = [Buckets]string{
		"tolv",
		"ett",
		"två",
		"tre",
		"fyra",
		"fem",
		"sex",
		"sju",
		"åtta",
		"nio",
		"tio",
		"elva",
	}

	linkText = [Buckets]string{
		"",
		"över",
		"över",
		"över",
		"över",
		"i",
		"",
		"över",
		"i",
		"i",
		"i",
		"i",
	}

	minuteText = [Buckets]string{
		"",
		"fem",
		"tio",
		"kvart",
		"tjugo",
		"fem",
		"",
		"fem",
		"tjugo",
		"kvart",
		"tio",
		"fem",
	}
)

// HourName returns the name of hour index h, where 0 is twelve.
func HourName(h int) string {
	return hourText[mod(h, Buckets)]
}

// Link returns the connector word of bucket m.
func Link(m int) string {
	return linkText[mod(m, Buckets)]
}

// Minute returns the minute phrase of bucket m.
func Minute(m int) string {
	return minuteText[mod(m, Buckets)]
}

// HourNames returns a copy of the hour table.
func HourNames() [Buckets]string {
	return hourText
}

func mod(v, n int) int {
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}
