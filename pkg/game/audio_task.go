package game

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// defaultAudioQueueSize 音频任务队列长度
const defaultAudioQueueSize = 32

type audioTask struct {
	name string
	fn   func() error
}

// AudioTaskRunner 音效任务执行器
// 在独立 goroutine 中加载并播放音效，Update 循环不等待解码
//
// 队列满或已关闭时任务被丢弃（音效丢一次无关紧要，不能阻塞游戏循环）
type AudioTaskRunner struct {
	mu     sync.RWMutex
	closed bool
	tasks  chan audioTask

	group  *errgroup.Group
	cancel context.CancelFunc

	dropped atomic.Int64
	failed  atomic.Int64
}

// NewAudioTaskRunner 创建并启动音效任务执行器
// queueSize <= 0 时使用默认长度
func NewAudioTaskRunner(ctx context.Context, queueSize int) *AudioTaskRunner {
	if queueSize <= 0 {
		queueSize = defaultAudioQueueSize
	}
	ctx, cancel := context.WithCancel(ctx)
	group, ctx := errgroup.WithContext(ctx)

	r := &AudioTaskRunner{
		tasks:  make(chan audioTask, queueSize),
		group:  group,
		cancel: cancel,
	}
	group.Go(func() error {
		return r.run(ctx)
	})
	return r
}

func (r *AudioTaskRunner) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case task, ok := <-r.tasks:
			if !ok {
				return nil
			}
			if err := task.fn(); err != nil {
				r.failed.Add(1)
				log.Printf("[AudioTaskRunner] Warning: task %s failed: %v", task.name, err)
			}
		}
	}
}

// Submit 提交任务，不阻塞
// 返回 false 表示任务被丢弃
func (r *AudioTaskRunner) Submit(name string, fn func() error) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.dropped.Add(1)
		return false
	}

	select {
	case r.tasks <- audioTask{name: name, fn: fn}:
		return true
	default:
		r.dropped.Add(1)
		return false
	}
}

// Close 停止接收任务，执行完队列中剩余任务后返回
// 可重复调用
func (r *AudioTaskRunner) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.tasks)
	r.mu.Unlock()

	err := r.group.Wait()
	r.cancel()
	return err
}

// Dropped 被丢弃的任务数
func (r *AudioTaskRunner) Dropped() int64 {
	return r.dropped.Load()
}

// Failed 执行失败的任务数
func (r *AudioTaskRunner) Failed() int64 {
	return r.failed.Load()
}
