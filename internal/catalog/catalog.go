package catalog

import "CleanHome/internal/model"

// 任务目录：构建期静态数据，运行期绝不修改
// ID 稳定且唯一，完成历史通过 ID 关联，调整目录时只增不改

// Zones 固定的区域集合
var Zones = []string{
	"Kitchen",
	"Bathroom",
	"Living Room",
	"Bedroom",
	"Office",
	"Laundry Room",
	"Entryway",
	"Outdoor",
}

// Tasks 全量任务目录
var Tasks = []model.Task{
	// Kitchen
	{ID: 1, Name: "Wash the dishes", Zone: "Kitchen", Frequency: model.FrequencyDaily, EstimatedMinutes: 15},
	{ID: 2, Name: "Wipe down countertops", Zone: "Kitchen", Frequency: model.FrequencyDaily, EstimatedMinutes: 5},
	{ID: 3, Name: "Sweep the kitchen floor", Zone: "Kitchen", Frequency: model.FrequencyDaily, EstimatedMinutes: 10},
	{ID: 4, Name: "Take out the trash", Zone: "Kitchen", Frequency: model.FrequencyDaily, EstimatedMinutes: 5},
	{ID: 5, Name: "Clean the stovetop", Zone: "Kitchen", Frequency: model.FrequencyWeekly, EstimatedMinutes: 20},
	{ID: 6, Name: "Mop the kitchen floor", Zone: "Kitchen", Frequency: model.FrequencyWeekly, EstimatedMinutes: 15},
	{ID: 7, Name: "Clean the microwave", Zone: "Kitchen", Frequency: model.FrequencyWeekly, EstimatedMinutes: 10},
	{ID: 8, Name: "Clean the refrigerator inside", Zone: "Kitchen", Frequency: model.FrequencyMonthly, EstimatedMinutes: 30},
	{ID: 9, Name: "Descale the kettle and coffee maker", Zone: "Kitchen", Frequency: model.FrequencyMonthly, EstimatedMinutes: 20},
	{ID: 10, Name: "Clean the oven", Zone: "Kitchen", Frequency: model.FrequencyQuarterly, EstimatedMinutes: 45},
	{ID: 11, Name: "Defrost the freezer", Zone: "Kitchen", Frequency: model.FrequencySeasonal, EstimatedMinutes: 60},
	{ID: 12, Name: "Deep clean kitchen cabinets", Zone: "Kitchen", Frequency: model.FrequencyYearly, EstimatedMinutes: 90},

	// Bathroom
	{ID: 13, Name: "Wipe the sink and faucet", Zone: "Bathroom", Frequency: model.FrequencyDaily, EstimatedMinutes: 5},
	{ID: 14, Name: "Clean the toilet", Zone: "Bathroom", Frequency: model.FrequencyWeekly, EstimatedMinutes: 15},
	{ID: 15, Name: "Scrub the shower and tub", Zone: "Bathroom", Frequency: model.FrequencyWeekly, EstimatedMinutes: 25},
	{ID: 16, Name: "Wash bathroom mats", Zone: "Bathroom", Frequency: model.FrequencyMonthly, EstimatedMinutes: 10},
	{ID: 17, Name: "Descale the showerhead", Zone: "Bathroom", Frequency: model.FrequencyQuarterly, EstimatedMinutes: 20},
	{ID: 18, Name: "Clean grout lines", Zone: "Bathroom", Frequency: model.FrequencySeasonal, EstimatedMinutes: 45},

	// Living Room
	{ID: 19, Name: "Tidy up cushions and throws", Zone: "Living Room", Frequency: model.FrequencyDaily, EstimatedMinutes: 5},
	{ID: 20, Name: "Vacuum living room", Zone: "Living Room", Frequency: model.FrequencyWeekly, EstimatedMinutes: 20},
	{ID: 21, Name: "Dust shelves and furniture", Zone: "Living Room", Frequency: model.FrequencyWeekly, EstimatedMinutes: 15},
	{ID: 22, Name: "Clean windows", Zone: "Living Room", Frequency: model.FrequencyMonthly, EstimatedMinutes: 30},
	{ID: 23, Name: "Shampoo the sofa", Zone: "Living Room", Frequency: model.FrequencySeasonal, EstimatedMinutes: 60},
	{ID: 24, Name: "Wash curtains", Zone: "Living Room", Frequency: model.FrequencyYearly, EstimatedMinutes: 45},

	// Bedroom
	{ID: 25, Name: "Make the bed", Zone: "Bedroom", Frequency: model.FrequencyDaily, EstimatedMinutes: 5},
	{ID: 26, Name: "Change bed sheets", Zone: "Bedroom", Frequency: model.FrequencyWeekly, EstimatedMinutes: 15},
	{ID: 27, Name: "Vacuum under the bed", Zone: "Bedroom", Frequency: model.FrequencyMonthly, EstimatedMinutes: 15},
	{ID: 28, Name: "Rotate the mattress", Zone: "Bedroom", Frequency: model.FrequencyQuarterly, EstimatedMinutes: 10},
	{ID: 29, Name: "Sort out the wardrobe", Zone: "Bedroom", Frequency: model.FrequencySeasonal, EstimatedMinutes: 90},
	{ID: 30, Name: "Wash pillows and duvets", Zone: "Bedroom", Frequency: model.FrequencyYearly, EstimatedMinutes: 60},

	// Office
	{ID: 31, Name: "Clear the desk", Zone: "Office", Frequency: model.FrequencyDaily, EstimatedMinutes: 5},
	{ID: 32, Name: "Wipe screens and keyboard", Zone: "Office", Frequency: model.FrequencyWeekly, EstimatedMinutes: 10},
	{ID: 33, Name: "File paperwork", Zone: "Office", Frequency: model.FrequencyMonthly, EstimatedMinutes: 30},
	{ID: 34, Name: "Untangle and check cables", Zone: "Office", Frequency: model.FrequencyQuarterly, EstimatedMinutes: 20},

	// Laundry Room
	{ID: 35, Name: "Run a load of laundry", Zone: "Laundry Room", Frequency: model.FrequencyDaily, EstimatedMinutes: 10},
	{ID: 36, Name: "Clean the lint trap", Zone: "Laundry Room", Frequency: model.FrequencyWeekly, EstimatedMinutes: 5},
	{ID: 37, Name: "Wipe washer and dryer", Zone: "Laundry Room", Frequency: model.FrequencyMonthly, EstimatedMinutes: 10},
	{ID: 38, Name: "Run washer cleaning cycle", Zone: "Laundry Room", Frequency: model.FrequencyQuarterly, EstimatedMinutes: 15},

	// Entryway
	{ID: 39, Name: "Sort the mail", Zone: "Entryway", Frequency: model.FrequencyDaily, EstimatedMinutes: 5},
	{ID: 40, Name: "Sweep the entryway", Zone: "Entryway", Frequency: model.FrequencyWeekly, EstimatedMinutes: 10},
	{ID: 41, Name: "Shake out the doormat", Zone: "Entryway", Frequency: model.FrequencyWeekly, EstimatedMinutes: 5},
	{ID: 42, Name: "Organize shoes and coats", Zone: "Entryway", Frequency: model.FrequencySeasonal, EstimatedMinutes: 30},

	// Outdoor
	{ID: 43, Name: "Water the plants", Zone: "Outdoor", Frequency: model.FrequencyDaily, EstimatedMinutes: 10},
	{ID: 44, Name: "Sweep the terrace", Zone: "Outdoor", Frequency: model.FrequencyWeekly, EstimatedMinutes: 15},
	{ID: 45, Name: "Mow the lawn", Zone: "Outdoor", Frequency: model.FrequencyMonthly, EstimatedMinutes: 45},
	{ID: 46, Name: "Clean the gutters", Zone: "Outdoor", Frequency: model.FrequencySeasonal, EstimatedMinutes: 60},
	{ID: 47, Name: "Pressure wash the facade", Zone: "Outdoor", Frequency: model.FrequencyYearly, EstimatedMinutes: 120},
}

var tasksByID = func() map[int64]model.Task {
	m := make(map[int64]model.Task, len(Tasks))
	for _, t := range Tasks {
		m[t.ID] = t
	}
	return m
}()

// TaskByID 按 ID 查任务，第二个返回值表示是否存在
func TaskByID(id int64) (model.Task, bool) {
	t, ok := tasksByID[id]
	return t, ok
}

// TasksByZone 按区域过滤
func TasksByZone(zone string) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range Tasks {
		if t.Zone == zone {
			out = append(out, t)
		}
	}
	return out
}

// ZoneExists 区域是否在固定集合内
func ZoneExists(zone string) bool {
	for _, z := range Zones {
		if z == zone {
			return true
		}
	}
	return false
}
