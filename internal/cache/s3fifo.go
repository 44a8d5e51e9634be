package cache

import "github.com/scalalang2/golang-fifo/s3fifo"

type s3fifoMemo struct {
	c *s3fifo.S3FIFO[int64, []int64]
}

func NewS3FIFO(capacity int) Memo {
	capacity = clampCapacity(capacity)
	return &s3fifoMemo{c: s3fifo.New[int64, []int64](capacity, 0)}
}

func (m *s3fifoMemo) Get(n int64) ([]int64, bool) {
	return m.c.Get(n)
}

func (m *s3fifoMemo) Set(n int64, factors []int64) {
	m.c.Set(n, factors)
}

func (*s3fifoMemo) Name() string {
	return "s3-fifo"
}

func (*s3fifoMemo) Close() {}
