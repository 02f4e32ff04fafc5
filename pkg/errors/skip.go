package errors

import stderrors "errors"

// SkipMessageError 消费侧跳过语义：消息应当 ack 掉且不再重投
// 用于重复投递、过期消息这类"处理它没有意义"的场景
type SkipMessageError struct {
	Reason string
}

func (e *SkipMessageError) Error() string {
	return e.Reason
}

// IsSkipMessageError 判断错误链上是否存在跳过语义
func IsSkipMessageError(err error) bool {
	var skip *SkipMessageError
	return stderrors.As(err, &skip)
}
