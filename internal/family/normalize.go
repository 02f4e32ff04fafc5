package family

import (
	"encoding/json"
	"fmt"
	"sort"

	"CleanHome/internal/model"
)

// 远端家庭树的各个子树以 keyed map 形式存储（key 即对象 ID），
// 进入领域层之前统一归一化为按 key 升序、携带 ID 的切片
// 子树缺失或为 null 时归一化为空切片而非报错

// SubtreeFromStrings hash 读取结果（field -> json string）转为子树形态
func SubtreeFromStrings(fields map[string]string) map[string]json.RawMessage {
	raw := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		raw[k] = json.RawMessage(v)
	}
	return raw
}

func sortedKeys(raw map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeMembers members 子树 → 成员切片，key 写入 ID
func NormalizeMembers(raw map[string]json.RawMessage) ([]model.FamilyMember, error) {
	out := make([]model.FamilyMember, 0, len(raw))
	for _, key := range sortedKeys(raw) {
		var member model.FamilyMember
		if err := json.Unmarshal(raw[key], &member); err != nil {
			return nil, fmt.Errorf("normalize member %q: %w", key, err)
		}
		member.ID = key
		out = append(out, member)
	}
	return out, nil
}

// NormalizeAssignments assignments 子树 → 分配切片，key 写入 ID
func NormalizeAssignments(raw map[string]json.RawMessage) ([]model.TaskAssignment, error) {
	out := make([]model.TaskAssignment, 0, len(raw))
	for _, key := range sortedKeys(raw) {
		var assignment model.TaskAssignment
		if err := json.Unmarshal(raw[key], &assignment); err != nil {
			return nil, fmt.Errorf("normalize assignment %q: %w", key, err)
		}
		assignment.ID = key
		out = append(out, assignment)
	}
	return out, nil
}

// NormalizeComments comments 子树 → 评论切片，key 写入 ID
func NormalizeComments(raw map[string]json.RawMessage) ([]model.TaskComment, error) {
	out := make([]model.TaskComment, 0, len(raw))
	for _, key := range sortedKeys(raw) {
		var comment model.TaskComment
		if err := json.Unmarshal(raw[key], &comment); err != nil {
			return nil, fmt.Errorf("normalize comment %q: %w", key, err)
		}
		comment.ID = key
		out = append(out, comment)
	}
	return out, nil
}

// NormalizeHistory history 子树 → 完成事件切片
// 事件自带雪花 ID，key 仅决定遍历顺序
func NormalizeHistory(raw map[string]json.RawMessage) ([]model.CompletionEvent, error) {
	out := make([]model.CompletionEvent, 0, len(raw))
	for _, key := range sortedKeys(raw) {
		var event model.CompletionEvent
		if err := json.Unmarshal(raw[key], &event); err != nil {
			return nil, fmt.Errorf("normalize history entry %q: %w", key, err)
		}
		out = append(out, event)
	}
	return out, nil
}
