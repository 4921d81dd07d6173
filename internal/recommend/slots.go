package recommend

import (
	"sort"
	"strings"
)

const slotCount = 3

// SlotRecommendations 从评分结果中挑出最多 3 门课，尽量三个等级各一门。
// 每个等级在等级匹配（归一化等级或 filter_tags 命中）的候选中优先取
// 命中用户选题的课程，其次比分数；候选为空时放宽为全量。
// 名额未满时按分数降序补足，评分列表为空时退回目录前 3 门
func SlotRecommendations(scored []ScoredCourse, catalog []Course) []Course {
	if len(scored) == 0 {
		out := make([]Course, 0, slotCount)
		for i := 0; i < len(catalog) && i < slotCount; i++ {
			out = append(out, catalog[i])
		}
		return out
	}

	chosen := map[string]bool{}
	var picks []Course

	for _, lv := range []string{LevelBeginner, LevelIntermediate, LevelExpert} {
		candidates := atLevel(scored, lv)
		if len(candidates) == 0 {
			candidates = scored
		}

		ordered := make([]ScoredCourse, len(candidates))
		copy(ordered, candidates)
		sort.SliceStable(ordered, func(i, j int) bool {
			mi, mj := topicMatched(ordered[i]), topicMatched(ordered[j])
			if mi != mj {
				return mi
			}
			return ordered[i].Score > ordered[j].Score
		})

		for _, c := range ordered {
			if chosen[c.Title] {
				continue
			}
			chosen[c.Title] = true
			picks = append(picks, c.Course)
			break
		}
		if len(picks) >= slotCount {
			break
		}
	}

	if len(picks) < slotCount {
		backfill := make([]ScoredCourse, len(scored))
		copy(backfill, scored)
		sort.SliceStable(backfill, func(i, j int) bool {
			return backfill[i].Score > backfill[j].Score
		})
		for _, c := range backfill {
			if len(picks) >= slotCount {
				break
			}
			if chosen[c.Title] {
				continue
			}
			chosen[c.Title] = true
			picks = append(picks, c.Course)
		}
	}

	if len(picks) > slotCount {
		picks = picks[:slotCount]
	}
	return picks
}

func atLevel(scored []ScoredCourse, level string) []ScoredCourse {
	want := strings.ToLower(level)
	var out []ScoredCourse
	for _, c := range scored {
		if strings.ToLower(normalizeLevel(c.Level)) == want || hasFilterTag(c.Course, want) {
			out = append(out, c)
		}
	}
	return out
}

func topicMatched(c ScoredCourse) bool {
	for _, t := range c.Tags {
		if t.Match {
			return true
		}
	}
	return false
}
