package assessment

// firstFourWindow 新手转向判定只看最先作答的四题
const (
	firstFourWindow     = 4
	pivotWrongThreshold = 3
)

// UpdateProfile 作答后生成新画像，输入画像不被修改。
// 已出集合加入本题；作答计数 +1；标签累计 total+1、答对时 correct+1
// 且加权分累加题目难度；能力估计按对错 ±1 并收敛到 [1,10]。
// 画像题不调能力估计，作答原样记入 ProfilerAnswers。
// 前四题对错入窗，恰好记满四条且错 ≥3 时触发新手转向：
// IsBeginnerPivot 置真且轮询队列只剩 Profiler，单向且会话内不可逆
func UpdateProfile(profile LearnerProfile, q *Question, answer Answer, correct bool, written *WrittenResult) LearnerProfile {
	up := profile.Clone()

	if !up.HasAsked(q.ID) {
		up.QuestionsAsked = append(up.QuestionsAsked, q.ID)
	}
	up.AnsweredCount++

	tag := q.NormalizedTag()
	ts := up.TagScores[tag]
	ts.Total++
	if correct {
		ts.Correct++
		ts.WeightedScore += float64(q.NormalizedDifficulty())
	}
	up.TagScores[tag] = ts

	if tag != ProfilerTag {
		lvl, ok := up.TagLevels[tag]
		if !ok || lvl == 0 {
			lvl = DefaultDifficulty
		}
		if correct {
			lvl++
		} else {
			lvl--
		}
		up.TagLevels[tag] = clampDifficulty(lvl)
	} else {
		up.ProfilerAnswers[q.ID] = answer
	}

	if len(up.FirstFour) < firstFourWindow {
		up.FirstFour = append(up.FirstFour, correct)
	}
	if len(up.FirstFour) == firstFourWindow && !up.IsBeginnerPivot {
		wrong := 0
		for _, ok := range up.FirstFour {
			if !ok {
				wrong++
			}
		}
		if wrong >= pivotWrongThreshold {
			up.IsBeginnerPivot = true
			up.TagsToTest = []string{ProfilerTag}
		}
	}

	return up
}
