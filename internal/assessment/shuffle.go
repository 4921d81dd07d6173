package assessment

import "math/rand"

// Shuffler 抽象洗牌行为，测试时可注入确定性实现
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// randShuffler 生产环境默认实现，Fisher–Yates
type randShuffler struct {
	rng *rand.Rand
}

func (s randShuffler) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// NewRandShuffler 基于给定种子源创建洗牌器
func NewRandShuffler(src rand.Source) Shuffler {
	return randShuffler{rng: rand.New(src)}
}

// NopShuffler 保持原序，仅用于测试断言精确序列
type NopShuffler struct{}

func (NopShuffler) Shuffle(n int, swap func(i, j int)) {}
