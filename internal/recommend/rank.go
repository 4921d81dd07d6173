package recommend

import "sort"

const topDriverCount = 3

// ScoredCourse 评分后的课程，附带标签与贡献最大的三个信号
type ScoredCourse struct {
	Course
	Score   float64  `json:"_score"`
	Tags    []Tag    `json:"_tags"`
	Drivers []Driver `json:"_drivers"`
}

// Recommend 对整个目录评分并按分数降序排序。
// 分数相同的课程保持输入顺序，结果可复现
func Recommend(courses []Course, prefs Prefs) []ScoredCourse {
	w := resolveWeights(prefs.Weights)

	scored := make([]ScoredCourse, 0, len(courses))
	for _, c := range courses {
		drivers := ComputeDrivers(c.Analytics, w)
		if len(drivers) > topDriverCount {
			drivers = drivers[:topDriverCount]
		}
		for i := range drivers {
			drivers[i].Contribution = round3(drivers[i].Contribution)
			drivers[i].Value = round3(drivers[i].Value)
		}
		scored = append(scored, ScoredCourse{
			Course:  c,
			Score:   ScoreCourse(c, prefs),
			Tags:    GenerateTags(c, prefs),
			Drivers: drivers,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func sortDriversByContribution(drivers []Driver) {
	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].Contribution > drivers[j].Contribution
	})
}
