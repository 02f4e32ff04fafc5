package family

import (
	"encoding/json"
	"time"
)

// Event 家庭频道上的变更事件
// 事件只携带"哪个子树变了"，订阅端收到后拉取快照整体替换本地状态
type Event struct {
	Code    string `json:"code"`
	Subtree string `json:"subtree"`
	At      string `json:"at"`
}

func NewEvent(code, subtree string) Event {
	return Event{
		Code:    code,
		Subtree: subtree,
		At:      time.Now().Format(time.RFC3339),
	}
}

func (e Event) Encode() []byte {
	data, _ := json.Marshal(e)
	return data
}
