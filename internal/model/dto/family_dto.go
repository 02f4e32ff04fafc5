package dto

import "CleanHome/internal/model"

// CreateFamilyRequest 创建家庭
type CreateFamilyRequest struct {
	Name   string `json:"name" vd:"len($)>0"`
	Color  string `json:"color"`
	Avatar string `json:"avatar"`
}

// JoinFamilyRequest 加入已有家庭
type JoinFamilyRequest struct {
	Code   string `json:"code" vd:"len($)>0"`
	Name   string `json:"name" vd:"len($)>0"`
	Color  string `json:"color"`
	Avatar string `json:"avatar"`
}

// FamilyConnection 创建/加入成功后的连接信息
type FamilyConnection struct {
	Code        string `json:"code"`
	MemberID    string `json:"member_id"`
	MemberToken string `json:"member_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// AssignTaskRequest 把任务分配给当前成员
type AssignTaskRequest struct {
	TaskID int64 `json:"task_id" vd:"$>0"`
}

// CommentTaskRequest 任务评论
type CommentTaskRequest struct {
	TaskID  int64  `json:"task_id" vd:"$>0"`
	Comment string `json:"comment" vd:"len($)>0"`
}

// FamilySnapshotView 对外快照
type FamilySnapshotView struct {
	Code        string                  `json:"code"`
	CreatedAt   string                  `json:"created_at"`
	Members     []model.FamilyMember    `json:"members"`
	History     []CompletionItem        `json:"history"`
	Assignments []model.TaskAssignment  `json:"assignments"`
	Comments    []model.TaskComment     `json:"comments"`
}
