package repository

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v7"
)

// ContentSource 按名称读取一份内容文档（题库或课程目录的 JSON 文件）
type ContentSource interface {
	ReadDocument(ctx context.Context, name string) ([]byte, error)
}

// LocalContentSource 从本地目录读取内容文档
type LocalContentSource struct {
	Dir string
}

func NewLocalContentSource(dir string) *LocalContentSource {
	return &LocalContentSource{Dir: dir}
}

func (s *LocalContentSource) ReadDocument(_ context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Dir, filepath.Clean(name)))
}

// MinioContentSource 从对象存储桶读取内容文档
type MinioContentSource struct {
	Client *minio.Client
	Bucket string
}

func NewMinioContentSource(client *minio.Client, bucket string) *MinioContentSource {
	return &MinioContentSource{Client: client, Bucket: bucket}
}

func (s *MinioContentSource) ReadDocument(ctx context.Context, name string) ([]byte, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}
