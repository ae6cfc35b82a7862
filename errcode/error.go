package errcode

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	NetworkErrorBase = iota * 1000
	ConsensusErrorBase
	ConfigErrorBase
)

type ProjectError struct {
	Module string
	Code   int
	Desc   string
}

func (e ProjectError) Error() string {
	return fmt.Sprintf("module: %s, global errcode: %v,  desc: %s", e.Module, e.Code, e.Desc)
}

func getCodeAndName(errCode fmt.Stringer) (int, string) {
	code := 0
	name := ""

	switch t := errCode.(type) {
	case NetworkErr:
		code = int(t)
		name = "network"
	case ConsensusErr:
		code = int(t)
		name = "consensus"
	case ConfigErr:
		code = int(t)
		name = "conf"
	default:
	}

	return code, name
}

// IsErrorCode reports whether err, or the cause it wraps, carries errCode.
func IsErrorCode(err error, errCode fmt.Stringer) bool {
	e, ok := errors.Cause(err).(ProjectError)
	icode, _ := getCodeAndName(errCode)
	return ok && icode == e.Code
}

func New(errCode fmt.Stringer) error {
	code, name := getCodeAndName(errCode)

	return ProjectError{
		Module: name,
		Code:   code,
		Desc:   errCode.String(),
	}
}

// NewWithDesc is New with extra detail appended to the code's description.
func NewWithDesc(errCode fmt.Stringer, detail string) error {
	code, name := getCodeAndName(errCode)

	return ProjectError{
		Module: name,
		Code:   code,
		Desc:   fmt.Sprintf("%s: %s", errCode.String(), detail),
	}
}
