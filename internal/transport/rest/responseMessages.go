package rest

const (
	invalidPairsMsg string = "pairs must be a positive integer"
	internalErrMsg  string = "internal server error"
	noPairsMsg      string = "No overlapping originals and generations. Run the generator first."
	statusOkMsg     string = "ok"
)
