package assessment

import (
	"math"
	"sort"
)

// DefaultStageWeights 固定题库评估的阶段权重
var DefaultStageWeights = map[string]int{
	"Basics":   1,
	"Concepts": 3,
	"Depth":    5,
}

// FixedResult 固定题库评估（非自适应流程）的结果
type FixedResult struct {
	TotalWeightedScore int            `json:"totalWeightedScore"`
	MaxWeightedScore   int            `json:"maxWeightedScore"`
	OverallPct         int            `json:"overallScorePercentage"`
	Level              string         `json:"level"`
	DomainPerformance  map[string]int `json:"domainPerformance"`
	DomainMax          map[string]int `json:"domainMax"`
	WeakDomains        []string       `json:"weakDomains"`
}

// ScoreFixedAssessment 对整套固定题库按阶段权重计分。
// 每题按题型判题；正确计入阶段权重；按 domains（缺失则按标签）归集领域表现。
// 等级阈值：≥0.75 Expert、≥0.45 Intermediate；弱领域为得分率 <0.5 者
func ScoreFixedAssessment(questions []Question, answers map[string]Answer, stageWeights map[string]int, statedLevel string) FixedResult {
	if stageWeights == nil {
		stageWeights = DefaultStageWeights
	}

	totalWeighted := 0
	maxWeighted := 0
	domainPerformance := map[string]int{}
	domainMax := map[string]int{}

	for i := range questions {
		q := &questions[i]
		weight, ok := stageWeights[q.Stage]
		if !ok {
			weight = 1
		}

		correct := Grade(q, answers[q.ID]).Correct

		if correct {
			totalWeighted += weight
		}
		maxWeighted += weight

		domains := q.Domains
		if len(domains) == 0 {
			domains = []string{q.NormalizedTag()}
		}
		for _, d := range domains {
			domainMax[d] += weight
			if correct {
				domainPerformance[d] += weight
			}
		}
	}

	ratio := 0.0
	if maxWeighted > 0 {
		ratio = float64(totalWeighted) / float64(maxWeighted)
	}

	level := LevelBeginner
	if ratio >= 0.75 {
		level = LevelExpert
	} else if ratio >= 0.45 {
		level = LevelIntermediate
	}
	// 自述等级只向下修正，不向上拔高
	if statedLevel == LevelBeginner && level != LevelBeginner {
		level = statedLevel
	}

	var weakDomains []string
	domains := make([]string, 0, len(domainMax))
	for d := range domainMax {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	for _, d := range domains {
		maxW := domainMax[d]
		if maxW == 0 {
			maxW = 1
		}
		if float64(domainPerformance[d])/float64(maxW) < 0.5 {
			weakDomains = append(weakDomains, d)
		}
	}

	return FixedResult{
		TotalWeightedScore: totalWeighted,
		MaxWeightedScore:   maxWeighted,
		OverallPct:         int(math.Round(ratio * 100)),
		Level:              level,
		DomainPerformance:  domainPerformance,
		DomainMax:          domainMax,
		WeakDomains:        weakDomains,
	}
}
