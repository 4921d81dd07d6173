package assessment

import "math/rand"

// fixedSource 测试用固定种子源
func fixedSource(seed int64) rand.Source {
	return rand.NewSource(seed)
}
