package assessment

// SelectionResult 选题结果。Question 为 nil 表示题池耗尽。
// UpdatedTagsToTest 由调用方合并回画像，选题本身不修改画像
type SelectionResult struct {
	Question          *Question
	UpdatedTagsToTest []string
}

// SelectNext 根据画像从题池中选出下一题。
//
// 画像模式（触发新手转向后）：按画像题池顺序返回第一道未出过的题。
// 普通模式：维护标签轮询队列（空时用全部标签洗牌后补满），弹出队首标签，
// 在该标签的桶中以当前难度估计为中心向外搜索（目标、+1、-1、+2、-2…），
// 取第一道未出过的题并从桶中移除；队首无题则依次尝试队列中剩余标签，
// 仍无则无视队列扫描全部标签，最后才返回空。
// 被选中题目所属标签从返回队列中移除，未检查的标签保留待下次轮询
func SelectNext(profile *LearnerProfile, pool *QuestionPool, allTags []string, shuffler Shuffler) SelectionResult {
	if profile == nil {
		return SelectionResult{}
	}

	if profile.IsBeginnerPivot {
		for _, q := range pool.ProfilerQuestions() {
			if !profile.HasAsked(q.ID) {
				q := q
				return SelectionResult{Question: &q, UpdatedTagsToTest: append([]string(nil), profile.TagsToTest...)}
			}
		}
		return SelectionResult{UpdatedTagsToTest: append([]string(nil), profile.TagsToTest...)}
	}

	tagsToTest := append([]string(nil), profile.TagsToTest...)
	if len(tagsToTest) == 0 {
		tagsToTest = append(tagsToTest, allTags...)
		shuffler.Shuffle(len(tagsToTest), func(i, j int) {
			tagsToTest[i], tagsToTest[j] = tagsToTest[j], tagsToTest[i]
		})
	}
	if len(tagsToTest) == 0 {
		return SelectionResult{UpdatedTagsToTest: tagsToTest}
	}

	// 队首标签出队（无论是否出题都被消费），落空后依次尝试队列其余标签
	rest := tagsToTest[1:]
	for _, tag := range tagsToTest {
		if tag == "" {
			continue
		}
		if q, ok := findNearest(pool, profile, tag); ok {
			remaining := make([]string, 0, len(rest))
			for _, t := range rest {
				if t != tag {
					remaining = append(remaining, t)
				}
			}
			return SelectionResult{Question: &q, UpdatedTagsToTest: remaining}
		}
	}

	// 队列内全部落空：无视队列状态，扫描所有已知标签
	for _, tag := range allTags {
		if q, ok := findNearest(pool, profile, tag); ok {
			return SelectionResult{Question: &q, UpdatedTagsToTest: rest}
		}
	}

	return SelectionResult{UpdatedTagsToTest: rest}
}

// findNearest 在标签桶内以难度估计为中心向外搜索最近的未出题目，
// 命中即从桶中移除（单次会话内每题只出一次）
func findNearest(pool *QuestionPool, profile *LearnerProfile, tag string) (Question, bool) {
	target := DefaultDifficulty
	if lvl, ok := profile.TagLevels[tag]; ok && lvl != 0 {
		target = clampDifficulty(lvl)
	}

	if q, ok := takeUnasked(pool, profile, tag, target); ok {
		return q, true
	}
	for offset := 1; offset <= MaxDifficulty-1; offset++ {
		if up := target + offset; up <= MaxDifficulty {
			if q, ok := takeUnasked(pool, profile, tag, up); ok {
				return q, true
			}
		}
		if down := target - offset; down >= MinDifficulty {
			if q, ok := takeUnasked(pool, profile, tag, down); ok {
				return q, true
			}
		}
	}
	return Question{}, false
}

// takeUnasked 取出桶内第一道未出过的题
func takeUnasked(pool *QuestionPool, profile *LearnerProfile, tag string, difficulty int) (Question, bool) {
	bucket := pool.Bucket(tag, difficulty)
	for i, q := range bucket {
		if !profile.HasAsked(q.ID) {
			return pool.takeAt(tag, difficulty, i), true
		}
	}
	return Question{}, false
}
