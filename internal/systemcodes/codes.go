package systemcodes

const (
	ErrorCodeUsage   = 2
	ErrorCodeGeneric = 3
	// ErrorCodeRequest is used when the API answered outside the 2xx range.
	ErrorCodeRequest = 4
)
