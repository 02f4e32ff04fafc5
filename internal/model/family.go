package model

// 家庭共享树：family:<CODE> 下的 members / history / assignments / comments 子树
// 远端存储以 keyed map 形式保存，进入聚合层前统一归一化为带 id 的切片

// FamilyMember 家庭成员
type FamilyMember struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Avatar string `json:"avatar"`
	Points int    `json:"points"`
}

// TaskAssignment 任务分配
type TaskAssignment struct {
	ID         string `json:"id"`
	TaskID     int64  `json:"task_id"`
	MemberID   string `json:"member_id"`
	AssignedAt string `json:"assigned_at"`
}

// TaskComment 任务评论
type TaskComment struct {
	ID        string `json:"id"`
	TaskID    int64  `json:"task_id"`
	MemberID  string `json:"member_id"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// FamilySnapshot 归一化之后的家庭树快照，远端通知到达时整体替换本地状态
type FamilySnapshot struct {
	Code        string            `json:"code"`
	CreatedAt   string            `json:"created_at"`
	Members     []FamilyMember    `json:"members"`
	History     []CompletionEvent `json:"history"`
	Assignments []TaskAssignment  `json:"assignments"`
	Comments    []TaskComment     `json:"comments"`
}
