package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// 内容源类型
const (
	ContentSourceLocal    = "local"
	ContentSourceMinio    = "minio"
	ContentSourceDatabase = "database"
)
