package list

import (
	"strconv"

	"github.com/pkg/errors"
)

/**
 * @Author: wanglei
 * @File: errors
 * @Version: 1.0.0
 * @Description: 链表操作的状态码
 * @Date: 2023/08/21 10:15
 */

type Status int

const (
	Success          Status = 0
	InvalidArgument  Status = -1
	NodeCreateFailed Status = -2
	IndexOutOfBounds Status = -3
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case InvalidArgument:
		return "invalid argument"
	case NodeCreateFailed:
		return "node create failed"
	case IndexOutOfBounds:
		return "index out of bounds"
	}
	return "unknown status " + strconv.Itoa(int(s))
}

// 带状态码的错误
type StatusError struct {
	Code Status
}

func (e *StatusError) Error() string {
	return "linked list: " + e.Code.String()
}

var (
	ErrInvalidArgument  = &StatusError{Code: InvalidArgument}
	ErrNodeCreateFailed = &StatusError{Code: NodeCreateFailed}
	ErrIndexOutOfBounds = &StatusError{Code: IndexOutOfBounds}
)

// StatusOf 取出err对应的状态码, nil为Success
func StatusOf(err error) Status {
	if err == nil {
		return Success
	}
	if se, ok := errors.Cause(err).(*StatusError); ok {
		return se.Code
	}
	return InvalidArgument
}

func outOfBounds(index, size int) error {
	return errors.WithMessagef(ErrIndexOutOfBounds, "index %d, size %d", index, size)
}
