package errors

// Constructors for the failure origins of a call.

// StatusFailure builds the failure for a non-2xx response. An empty message falls back to DefaultMessage.
func StatusFailure(code int, message, statusText string) *Error {
	if message == "" {
		message = DefaultMessage
	}
	return &Error{
		Status: Status{
			Code:    code,
			Message: message,
			Hint:    statusText,
			Name:    NameStatus,
		},
	}
}

// DecodeFailure builds the failure for a response body that could not be decoded
func DecodeFailure(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Status: Status{
			Message: err.Error(),
			Name:    NameDecode,
		},
		cause: err,
	}
}

// TransportFailure builds the failure for an exchange that never produced a response
func TransportFailure(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Status: Status{
			Message: err.Error(),
			Name:    NameTransport,
		},
		cause: err,
	}
}

// ValidationFailure builds the failure for call arguments rejected before any
// request is sent. message is the call's error message, err the rule violation.
func ValidationFailure(message string, err error) *Error {
	if message == "" {
		message = DefaultMessage
	}
	return &Error{
		Status: Status{
			Message: message,
			Name:    NameValidation,
		},
		cause: err,
	}
}

// IsStatus reports whether err is a status failure with the given code
func IsStatus(err error, code int) bool {
	var ge *Error
	if As(err, &ge) {
		return ge.Name == NameStatus && ge.Code == code
	}
	return false
}

// IsDecode reports whether err originates from a body decode failure
func IsDecode(err error) bool {
	var ge *Error
	return As(err, &ge) && ge.Name == NameDecode
}

// IsValidation reports whether err is a rejected argument failure
func IsValidation(err error) bool {
	var ge *Error
	return As(err, &ge) && ge.Name == NameValidation
}

// IsTransport reports whether err originates from the transport
func IsTransport(err error) bool {
	var ge *Error
	return As(err, &ge) && ge.Name == NameTransport
}
