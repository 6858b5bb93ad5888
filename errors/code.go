package errors

// ErrorCode identifies a class of application error
type ErrorCode int

const (
	ErrorCode_INTERNAL ErrorCode = iota
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_PERMISSION_DENIED
	ErrorCode_UNAUTHENTICATED
	ErrorCode_VALIDATION_FAILED
	ErrorCode_STORAGE_FAILED
	ErrorCode_EVENT_BUS_FAILED
	ErrorCode_AI_ANALYSIS_FAILED
	ErrorCode_AI_SERVICE_UNAVAILABLE
	ErrorCode_PREFERENCE_RESOLUTION
	ErrorCode_AUTH_INVALID_TOKEN
	ErrorCode_AUTH_TOKEN_EXPIRED
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:         "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:      "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:        "UNAUTHENTICATED",
	ErrorCode_VALIDATION_FAILED:      "VALIDATION_FAILED",
	ErrorCode_STORAGE_FAILED:         "STORAGE_FAILED",
	ErrorCode_EVENT_BUS_FAILED:       "EVENT_BUS_FAILED",
	ErrorCode_AI_ANALYSIS_FAILED:     "AI_ANALYSIS_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE: "AI_SERVICE_UNAVAILABLE",
	ErrorCode_PREFERENCE_RESOLUTION:  "PREFERENCE_RESOLUTION",
	ErrorCode_AUTH_INVALID_TOKEN:     "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:     "AUTH_TOKEN_EXPIRED",
}

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
