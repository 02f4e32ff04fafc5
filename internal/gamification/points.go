package gamification

// DefaultTaskMinutes 目录未标注时长时的积分基准
const DefaultTaskMinutes = 10

// CalculatePoints 单次完成的积分：基础 5 分 + 每 10 分钟时长 1 分
// estimatedMinutes <= 0 时按默认时长计算
func CalculatePoints(estimatedMinutes int) int {
	if estimatedMinutes <= 0 {
		estimatedMinutes = DefaultTaskMinutes
	}
	return 5 + estimatedMinutes/10
}
