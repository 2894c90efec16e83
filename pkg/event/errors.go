package event

import "errors"

var (
	ErrTraceNotString = errors.New("trace value is not a string")
	ErrTraceEncoding  = errors.New("trace value is not valid base64")
)
