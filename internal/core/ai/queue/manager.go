package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"fridge-planner/internal/core/ai/provider"
	"fridge-planner/internal/infrastructure/config"
	"fridge-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// Request キューに積まれるリクエスト
type Request struct {
	Context context.Context
	Request *provider.Request
	Result  chan Result
}

// Result 処理結果
type Result struct {
	Response *provider.Response
	Error    error
}

// Status キューの状態
type Status struct {
	QueueLength    int `json:"queue_length"`
	ProcessedCount int `json:"processed_count"`
	MaxQueueSize   int `json:"max_queue_size"`
	Workers        int `json:"workers"`
}

// Manager リクエストキューの管理器
// AI 呼び出しをワーカープール経由に直列化し、同時リクエスト数を抑える
type Manager struct {
	config    *config.Config
	queue     chan *Request
	done      chan struct{}
	processed int64
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewManager キュー管理器を生成する
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config: cfg,
		queue:  make(chan *Request, cfg.Queue.MaxSize),
		done:   make(chan struct{}),
	}
}

// Start ワーカーを起動してキューの消化を開始する
func (m *Manager) Start(p provider.Provider) {
	for i := 0; i < m.config.Queue.Workers; i++ {
		m.wg.Add(1)
		go m.worker(i, p)
	}
	common.LogInfo("キューワーカー起動",
		zap.Int("workers", m.config.Queue.Workers),
		zap.Int("max_queue_size", m.config.Queue.MaxSize),
	)
}

func (m *Manager) worker(id int, p provider.Provider) {
	defer m.wg.Done()
	for {
		select {
		case req, ok := <-m.queue:
			if !ok {
				return
			}
			resp, err := p.Generate(req.Context, req.Request)
			atomic.AddInt64(&m.processed, 1)
			req.Result <- Result{Response: resp, Error: err}
		case <-m.done:
			return
		}
	}
}

// Enqueue リクエストをキューに積み、結果チャネルを返す
func (m *Manager) Enqueue(ctx context.Context, req *provider.Request) (chan Result, error) {
	if len(m.queue) >= m.config.Queue.MaxSize {
		return nil, fmt.Errorf("queue is full")
	}

	queueReq := Request{
		Context: ctx,
		Request: req,
		Result:  make(chan Result, 1),
	}

	select {
	case m.queue <- &queueReq:
		common.LogDebug("リクエストをキューに追加",
			zap.Int("queue_length", len(m.queue)),
			zap.Int("max_queue_size", m.config.Queue.MaxSize),
		)
		return queueReq.Result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-m.done:
		return nil, fmt.Errorf("queue manager is closed")
	}
}

// Dispatch リクエストを積んで結果を待つ
func (m *Manager) Dispatch(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	resultCh, err := m.Enqueue(ctx, req)
	if err != nil {
		return nil, err
	}

	select {
	case result := <-resultCh:
		return result.Response, result.Error
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// GetQueueStatus キューの状態を返す
func (m *Manager) GetQueueStatus() *Status {
	return &Status{
		QueueLength:    len(m.queue),
		ProcessedCount: int(atomic.LoadInt64(&m.processed)),
		MaxQueueSize:   m.config.Queue.MaxSize,
		Workers:        m.config.Queue.Workers,
	}
}

// Close キューを閉じてワーカーの終了を待つ
// queue チャネル自体は閉じない（閉じると遅れてきた Enqueue が panic する）
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
		m.wg.Wait()
	})
}
