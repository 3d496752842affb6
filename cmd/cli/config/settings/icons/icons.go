package icons

const (
	Clock = "􀐫"
	None  = ""
)
