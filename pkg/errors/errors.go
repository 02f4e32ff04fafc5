package errors

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 认证相关错误。
var (
	Unauthorized       = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	InvalidMemberToken = Definition{Code: "INVALID_MEMBER_TOKEN", Message: "Invalid member token"}
)

// 任务目录与排期模块错误。
var (
	TaskNotFound         = Definition{Code: "TASK_NOT_FOUND", Message: "Task not found"}
	UnsupportedFrequency = Definition{Code: "UNSUPPORTED_FREQUENCY", Message: "Unsupported task frequency"}
	InvalidDay           = Definition{Code: "INVALID_DAY", Message: "Invalid calendar day, expected YYYY-MM-DD"}
	InvalidDateRange     = Definition{Code: "INVALID_DATE_RANGE", Message: "Invalid date range"}
)

// 家庭共享模块错误。
var (
	FamilyCodeInvalid  = Definition{Code: "FAMILY_CODE_INVALID", Message: "Family code must be 6 characters"}
	FamilyNotFound     = Definition{Code: "FAMILY_NOT_FOUND", Message: "Family code does not exist"}
	FamilyNotJoined    = Definition{Code: "FAMILY_NOT_JOINED", Message: "Not connected to a family"}
	MemberNameRequired = Definition{Code: "MEMBER_NAME_REQUIRED", Message: "Member name is required"}
)

// 令牌生成器错误。
var (
	ErrTokenGeneratorNotInitialized = Definition{Code: "TOKEN_GENERATOR_NOT_INITIALIZED", Message: "Token generator not initialized"}
)

// 限流错误。
var (
	TooManyRequests = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests, please retry later"}
)

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	Unauthorized.Code:         Unauthorized,
	InvalidMemberToken.Code:   InvalidMemberToken,
	TaskNotFound.Code:         TaskNotFound,
	UnsupportedFrequency.Code: UnsupportedFrequency,
	InvalidDay.Code:           InvalidDay,
	InvalidDateRange.Code:     InvalidDateRange,
	FamilyCodeInvalid.Code:    FamilyCodeInvalid,
	FamilyNotFound.Code:       FamilyNotFound,
	FamilyNotJoined.Code:      FamilyNotJoined,
	MemberNameRequired.Code:   MemberNameRequired,
	TooManyRequests.Code:      TooManyRequests,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
