package assessment

import "strings"

// dedupeKeyPromptLen 无 ID 题目的去重键取标签加题干前缀
const dedupeKeyPromptLen = 120

// QuestionPool 预处理后的题池：标签 -> 难度桶(1..10) -> 题目序列，
// 外加一个独立的画像题池。普通题出题即从桶中移除，画像题按已出集合过滤
type QuestionPool struct {
	buckets  map[string]map[int][]Question
	profiler []Question
}

// Preprocess 将平铺题库构建为按标签和难度分桶的题池。
// 去重键：有 ID 用 ID，否则 tag:题干前120字符，先到先得。
// 每个标签保证 1..10 全部桶存在（可为空），建池时各桶洗牌一次
func Preprocess(questions []Question, shuffler Shuffler) *QuestionPool {
	pool := &QuestionPool{buckets: map[string]map[int][]Question{}}

	seen := map[string]bool{}
	for _, q := range questions {
		key := q.ID
		if key == "" {
			text := q.Text
			if len(text) > dedupeKeyPromptLen {
				text = text[:dedupeKeyPromptLen]
			}
			key = q.NormalizedTag() + ":" + text
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		tag := q.NormalizedTag()
		if tag == ProfilerTag {
			pool.profiler = append(pool.profiler, q)
			continue
		}
		if pool.buckets[tag] == nil {
			pool.buckets[tag] = map[int][]Question{}
		}
		d := q.NormalizedDifficulty()
		pool.buckets[tag][d] = append(pool.buckets[tag][d], q)
	}

	shuffler.Shuffle(len(pool.profiler), func(i, j int) {
		pool.profiler[i], pool.profiler[j] = pool.profiler[j], pool.profiler[i]
	})

	for _, buckets := range pool.buckets {
		for d := MinDifficulty; d <= MaxDifficulty; d++ {
			if buckets[d] == nil {
				buckets[d] = []Question{}
				continue
			}
			b := buckets[d]
			shuffler.Shuffle(len(b), func(i, j int) {
				b[i], b[j] = b[j], b[i]
			})
		}
	}

	return pool
}

// Tags 返回所有普通标签（不含 Profiler）
func (p *QuestionPool) Tags() []string {
	tags := make([]string, 0, len(p.buckets))
	for t := range p.buckets {
		tags = append(tags, t)
	}
	return tags
}

// Bucket 返回指定标签与难度的剩余题目
func (p *QuestionPool) Bucket(tag string, difficulty int) []Question {
	buckets, ok := p.buckets[tag]
	if !ok {
		return nil
	}
	return buckets[difficulty]
}

// ProfilerQuestions 画像题池（建池时已洗牌，顺序固定）
func (p *QuestionPool) ProfilerQuestions() []Question {
	return p.profiler
}

// Remaining 某标签全部桶的剩余题数
func (p *QuestionPool) Remaining(tag string) int {
	n := 0
	for _, b := range p.buckets[tag] {
		n += len(b)
	}
	return n
}

// takeAt 从桶中移除并返回第 idx 个题目
func (p *QuestionPool) takeAt(tag string, difficulty, idx int) Question {
	b := p.buckets[tag][difficulty]
	q := b[idx]
	p.buckets[tag][difficulty] = append(b[:idx:idx], b[idx+1:]...)
	return q
}

// FindByID 在整个题池（含画像题）中查找题目，用于提交校验
func (p *QuestionPool) FindByID(id string) (Question, bool) {
	for _, buckets := range p.buckets {
		for _, b := range buckets {
			for _, q := range b {
				if q.ID == id {
					return q, true
				}
			}
		}
	}
	for _, q := range p.profiler {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// MatchesTag 大小写不敏感的标签比较
func MatchesTag(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
