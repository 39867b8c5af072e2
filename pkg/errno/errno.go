package errno

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	SuccessCode       = 0
	ServiceErrCode    = 10001
	ParamErrCode      = 10002
	InvalidCursorCode = 10003
	DuplicateEdgeCode = 10004
	StorageErrCode    = 10005
	RequestErrCode    = 10006
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success    = NewErrNo(SuccessCode, "Success")
	ServiceErr = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr   = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	RequestErr = NewErrNo(RequestErrCode, "Bad Request")

	// InvalidCursorErr 游标无效: 调用方应丢弃游标从头重新扫描
	InvalidCursorErr = NewErrNo(InvalidCursorCode, "Invalid or mismatched cursor")
	// DuplicateEdgeErr 仅由Edge Store的原始Insert抛出, Mutator会将其吸收为幂等成功
	DuplicateEdgeErr = NewErrNo(DuplicateEdgeCode, "Follow edge already exists")
	// StorageErr 存储层不可用: 直接向上传播, 不在核心内部重试
	StorageErr = NewErrNo(StorageErrCode, "Storage unavailable")
)

// ConvertErr 将任意error归一化为ErrNo
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
