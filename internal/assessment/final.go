package assessment

import (
	"math"
	"sort"
)

// GenerateFinalProfile 由累计画像派生最终汇总。
//
// 新手转向路径：逐条画像题作答（单选或多选）经 ProfilerMapping 解析为
// 兴趣/目标标签取并集，等级固定 Beginner，总分 0，弱项为空。
//
// 普通路径：每个标签的百分比 = 加权分 / (该标签作答数 * 10)，
// 各标签平均作为兜底分；有作答时权威总分取简单正确率。
// 兜底平均若落在 (0,10) 的个位数区间则 ×10 —— 对上游缩放问题的
// 历史修正，行为保留，见 DESIGN.md 的待确认事项。
// 等级优先按答对数阈值（≥6 Expert、4–5 Intermediate、≤3 Beginner），
// 无作答时退回百分比阈值（≥81 / ≥61）
func GenerateFinalProfile(profile *LearnerProfile, allQuestions []Question) *FinalProfile {
	if profile == nil {
		return nil
	}

	if profile.IsBeginnerPivot {
		return beginnerFinalProfile(profile, allQuestions)
	}

	tagPercentages := make(map[string]float64, len(profile.TagLevels))
	for tag := range profile.TagLevels {
		ts := profile.TagScores[tag]
		maxPossible := float64(ts.Total) * float64(MaxDifficulty)
		if maxPossible > 0 {
			tagPercentages[tag] = ts.WeightedScore / maxPossible
		} else {
			tagPercentages[tag] = 0
		}
	}

	sum := 0.0
	for _, v := range tagPercentages {
		sum += v
	}
	avg := sum / math.Max(1, float64(len(tagPercentages)))
	computedPct := int(math.Round(avg * 100))
	if computedPct > 0 && computedPct < 10 {
		// 个位数平均分 ×10 的历史修正
		computedPct = min(100, computedPct*10)
	}

	totalCorrect := profile.TotalCorrect()
	totalAnswered := profile.TotalAnswered()

	overallPct := computedPct
	if totalAnswered > 0 {
		overallPct = int(math.Round(float64(totalCorrect) / float64(totalAnswered) * 100))
	}

	var level string
	if totalAnswered > 0 {
		switch {
		case totalCorrect >= 6:
			level = LevelExpert
		case totalCorrect >= 4:
			level = LevelIntermediate
		default:
			level = LevelBeginner
		}
	} else {
		switch {
		case overallPct >= 81:
			level = LevelExpert
		case overallPct >= 61:
			level = LevelIntermediate
		default:
			level = LevelBeginner
		}
	}

	var weaknessTags []string
	for _, tag := range sortedKeys(tagPercentages) {
		if tagPercentages[tag] < 0.5 {
			weaknessTags = append(weaknessTags, tag)
		}
	}

	// 强项标签 ≥0.7，没有则取百分比前三，再并入所有有作答记录的标签
	var strongTags []string
	for _, tag := range sortedKeys(tagPercentages) {
		if tagPercentages[tag] >= 0.7 {
			strongTags = append(strongTags, tag)
		}
	}
	if len(strongTags) == 0 {
		strongTags = topTagsByPercentage(tagPercentages, 3)
	}
	interestSet := map[string]bool{}
	var interestTags []string
	for _, t := range strongTags {
		if !interestSet[t] {
			interestSet[t] = true
			interestTags = append(interestTags, t)
		}
	}
	for _, tag := range sortedKeys(tagPercentages) {
		if ts, ok := profile.TagScores[tag]; ok && ts.Total > 0 && !interestSet[tag] {
			interestSet[tag] = true
			interestTags = append(interestTags, tag)
		}
	}

	groups := LevelTagGroups{}
	tagProfile := make(map[string]int, len(profile.TagLevels))
	for _, tag := range sortedIntKeys(profile.TagLevels) {
		lvl := profile.TagLevels[tag]
		if lvl == 0 {
			lvl = DefaultDifficulty
		}
		tagProfile[tag] = lvl
		switch {
		case lvl <= 4:
			groups.Beginner = append(groups.Beginner, tag)
		case lvl <= 7:
			groups.Intermediate = append(groups.Intermediate, tag)
		default:
			groups.Expert = append(groups.Expert, tag)
		}
	}

	return &FinalProfile{
		Level:          level,
		OverallPct:     overallPct,
		WeaknessTags:   weaknessTags,
		InterestTags:   interestTags,
		TagProfile:     tagProfile,
		LevelTagGroups: groups,
		TotalCorrect:   totalCorrect,
		TotalAnswered:  totalAnswered,
	}
}

func beginnerFinalProfile(profile *LearnerProfile, allQuestions []Question) *FinalProfile {
	mappings := map[string]map[string]ProfilerOutcome{}
	for _, q := range allQuestions {
		if q.NormalizedTag() == ProfilerTag {
			mappings[q.ID] = q.ProfilerMap
		}
	}

	interestSet := map[string]bool{}
	var interestTags []string
	add := func(v ProfilerOutcome) {
		if v.InterestTag != "" && !interestSet[v.InterestTag] {
			interestSet[v.InterestTag] = true
			interestTags = append(interestTags, v.InterestTag)
		}
		if v.Goal != "" && !interestSet[v.Goal] {
			interestSet[v.Goal] = true
			interestTags = append(interestTags, v.Goal)
		}
	}

	for _, qid := range profile.QuestionsAsked {
		answer, ok := profile.ProfilerAnswers[qid]
		if !ok {
			continue
		}
		m := mappings[qid]
		if m == nil {
			continue
		}
		if answer.IsMulti() {
			for _, a := range answer.Choices {
				if v, ok := m[a]; ok {
					add(v)
				}
			}
		} else if v, ok := m[answer.Text]; ok {
			add(v)
		}
	}

	return &FinalProfile{
		Level:          LevelBeginner,
		OverallPct:     0,
		WeaknessTags:   []string{},
		InterestTags:   interestTags,
		TagProfile:     map[string]int{},
		LevelTagGroups: LevelTagGroups{Beginner: []string{}, Intermediate: []string{}, Expert: []string{}},
		TotalCorrect:   profile.TotalCorrect(),
		TotalAnswered:  profile.TotalAnswered(),
	}
}

func topTagsByPercentage(tagPercentages map[string]float64, n int) []string {
	tags := sortedKeys(tagPercentages)
	sort.SliceStable(tags, func(i, j int) bool {
		return tagPercentages[tags[i]] > tagPercentages[tags[j]]
	})
	if len(tags) > n {
		tags = tags[:n]
	}
	return tags
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedIntKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
