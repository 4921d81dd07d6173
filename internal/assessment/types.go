package assessment

// 题目类型，与前端题库 JSON 保持一致
const (
	TypeMCQ         = "MCQ"
	TypeMCQMatching = "MCQ-Matching"
	TypeMCQReorder  = "MCQ-Reorder"
	TypeMCQScenario = "MCQ-Scenario"
	TypeMCMS        = "MCMS"
	TypeShortAnswer = "ShortAnswer"
	TypeLongAnswer  = "LongAnswer"
)

// ProfilerTag 保留标签：画像题不参与难度估计，只用于兴趣/目标推断
const ProfilerTag = "Profiler"

// DefaultTag 缺失标签时的兜底分组
const DefaultTag = "General"

const (
	MinDifficulty     = 1
	MaxDifficulty     = 10
	DefaultDifficulty = 5
)

// KeywordList 主观题某个子标签的关键词表
type KeywordList struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

// ProfilerOutcome 画像题某个选项映射出的兴趣/目标
type ProfilerOutcome struct {
	InterestTag string `json:"interestTag,omitempty"`
	Goal        string `json:"goal,omitempty"`
}

// Question 题库中的一道题，加载后不可变
type Question struct {
	ID             string                     `json:"id"`
	Tag            string                     `json:"tag"`
	Type           string                     `json:"type"`
	Text           string                     `json:"text"`
	Options        []string                   `json:"options,omitempty"`
	CorrectAnswer  string                     `json:"correctAnswer,omitempty"`
	CorrectAnswers []string                   `json:"correctAnswers,omitempty"`
	Difficulty     int                        `json:"difficulty,omitempty"`
	MinLength      int                        `json:"minLength,omitempty"`
	HelpText       string                     `json:"helpText,omitempty"`
	Stage          string                     `json:"stage,omitempty"`
	Domains        []string                   `json:"domains,omitempty"`
	ScoringTags    map[string]KeywordList     `json:"scoringTags,omitempty"`
	ProfilerMap    map[string]ProfilerOutcome `json:"profilerMapping,omitempty"`
}

// NormalizedTag 返回题目的有效标签
func (q *Question) NormalizedTag() string {
	if q.Tag == "" {
		return DefaultTag
	}
	return q.Tag
}

// NormalizedDifficulty 非法或缺失的难度按 5 处理，并收敛到 [1,10]
func (q *Question) NormalizedDifficulty() int {
	d := q.Difficulty
	if d == 0 {
		d = DefaultDifficulty
	}
	return clampDifficulty(d)
}

func clampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

// TagScore 单个标签的得分累计
type TagScore struct {
	Correct       int     `json:"correct"`
	Total         int     `json:"total"`
	WeightedScore float64 `json:"weightedScore"`
}

// Answer 一次作答的原始内容。单选/主观题使用 Text，多选使用 Choices
type Answer struct {
	Text    string   `json:"text,omitempty"`
	Choices []string `json:"choices,omitempty"`
}

// IsMulti 是否为多选作答
func (a Answer) IsMulti() bool {
	return a.Choices != nil
}

// WrittenResult 主观题关键词打分结果
type WrittenResult struct {
	WordCount int                `json:"wordCount"`
	TagScores map[string]float64 `json:"tagScores"`
}

// Correct 任一子标签得分达到 0.7 即视为答对
func (r *WrittenResult) Correct() bool {
	if r == nil {
		return false
	}
	for _, s := range r.TagScores {
		if s >= writtenCorrectThreshold {
			return true
		}
	}
	return false
}

const writtenCorrectThreshold = 0.7

// LearnerProfile 会话内的学习者画像。所有更新都返回新值，调用方不得原地修改
type LearnerProfile struct {
	IsActive        bool                `json:"isActive"`
	IsComplete      bool                `json:"isComplete"`
	AnsweredCount   int                 `json:"answeredCount"`
	QuestionsAsked  []string            `json:"questionsAsked"` // 有序去重集合，序列化时保持插入顺序
	TagsToTest      []string            `json:"tagsToTest"`
	TagLevels       map[string]int      `json:"tagLevels"`
	TagScores       map[string]TagScore `json:"tagScores"`
	IsBeginnerPivot bool                `json:"isBeginnerPivot"`
	ProfilerAnswers map[string]Answer   `json:"profilerAnswers"`
	FirstFour       []bool              `json:"firstFourHistory"`
}

// NewLearnerProfile 会话开始时创建画像，所有标签难度估计从 5 起步
func NewLearnerProfile(allTags []string) LearnerProfile {
	levels := make(map[string]int, len(allTags))
	for _, t := range allTags {
		levels[t] = DefaultDifficulty
	}
	return LearnerProfile{
		IsActive:        true,
		TagLevels:       levels,
		TagScores:       map[string]TagScore{},
		ProfilerAnswers: map[string]Answer{},
	}
}

// HasAsked 判断题目是否已出过
func (p *LearnerProfile) HasAsked(id string) bool {
	for _, q := range p.QuestionsAsked {
		if q == id {
			return true
		}
	}
	return false
}

// TotalCorrect 全部标签累计答对数
func (p *LearnerProfile) TotalCorrect() int {
	n := 0
	for _, ts := range p.TagScores {
		n += ts.Correct
	}
	return n
}

// TotalAnswered 全部标签累计作答数
func (p *LearnerProfile) TotalAnswered() int {
	n := 0
	for _, ts := range p.TagScores {
		n += ts.Total
	}
	return n
}

// Clone 深拷贝，保证 UpdateProfile 的纯函数语义，也供会话存储隔离内部状态
func (p *LearnerProfile) Clone() LearnerProfile {
	cp := *p
	cp.QuestionsAsked = append([]string(nil), p.QuestionsAsked...)
	cp.TagsToTest = append([]string(nil), p.TagsToTest...)
	cp.FirstFour = append([]bool(nil), p.FirstFour...)
	cp.TagLevels = make(map[string]int, len(p.TagLevels))
	for k, v := range p.TagLevels {
		cp.TagLevels[k] = v
	}
	cp.TagScores = make(map[string]TagScore, len(p.TagScores))
	for k, v := range p.TagScores {
		cp.TagScores[k] = v
	}
	cp.ProfilerAnswers = make(map[string]Answer, len(p.ProfilerAnswers))
	for k, v := range p.ProfilerAnswers {
		cp.ProfilerAnswers[k] = v
	}
	return cp
}

// 等级标签
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelExpert       = "Expert"
)

// LevelTagGroups 按当前难度估计分组的标签，便于前端筛选
type LevelTagGroups struct {
	Beginner     []string `json:"beginner"`
	Intermediate []string `json:"intermediate"`
	Expert       []string `json:"expert"`
}

// FinalProfile 评估结束后的只读汇总
type FinalProfile struct {
	Level          string         `json:"level"`
	OverallPct     int            `json:"overallPct"`
	WeaknessTags   []string       `json:"weaknessTags"`
	InterestTags   []string       `json:"interestTags"`
	TagProfile     map[string]int `json:"tagProfile"`
	LevelTagGroups LevelTagGroups `json:"levelTagGroups"`
	TotalCorrect   int            `json:"totalCorrect"`
	TotalAnswered  int            `json:"totalAnswered"`
}
