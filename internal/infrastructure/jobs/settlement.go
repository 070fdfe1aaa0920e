package jobs

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"ghala.backend/internal/config"
	"ghala.backend/internal/domain/entities"
	"ghala.backend/internal/domain/repositories"
	"ghala.backend/internal/infrastructure/metrics"
)

// SettlementJob simulates the payment provider callback: after a fixed
// delay each scheduled order resolves to paid or failed. A bounded worker
// pool drains the queue so a burst of orders never spawns a goroutine per
// request.
type SettlementJob struct {
	orders  repositories.OrderRepository
	metrics *metrics.OrderMetrics

	delay     time.Duration
	paidRatio float64
	workers   int

	tasks chan settlementTask
	stop  chan struct{}
	wg    sync.WaitGroup

	// outcome draws the settlement result. Swappable in tests.
	outcome func() entities.OrderStatus
}

type settlementTask struct {
	merchantID string
	orderID    string
	enqueuedAt time.Time
}

func NewSettlementJob(orders repositories.OrderRepository, m *metrics.OrderMetrics, cfg config.SettlementConfig) *SettlementJob {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	queueSize := cfg.QueueSize
	if queueSize < 1 {
		queueSize = 1
	}

	j := &SettlementJob{
		orders:    orders,
		metrics:   m,
		delay:     cfg.Delay,
		paidRatio: cfg.PaidRatio,
		workers:   workers,
		tasks:     make(chan settlementTask, queueSize),
		stop:      make(chan struct{}),
	}
	j.outcome = j.drawOutcome
	return j
}

// Start launches the worker pool
func (j *SettlementJob) Start(ctx context.Context) {
	log.Printf("🕐 Starting settlement workers (%d workers, %v delay)...", j.workers, j.delay)

	for i := 0; i < j.workers; i++ {
		j.wg.Add(1)
		go j.run(ctx)
	}
}

// Stop abandons queued and in-flight tasks; those orders stay pending.
func (j *SettlementJob) Stop() {
	close(j.stop)
	j.wg.Wait()
	log.Println("⏹️ Settlement workers stopped")
}

// Schedule queues an order for settlement. It never blocks: when the
// queue is full the task is dropped and the order stays pending.
func (j *SettlementJob) Schedule(merchantID, orderID string) bool {
	task := settlementTask{merchantID: merchantID, orderID: orderID, enqueuedAt: time.Now()}
	select {
	case j.tasks <- task:
		return true
	default:
		log.Printf("❌ Settlement queue full, dropping order %s/%s", merchantID, orderID)
		if j.metrics != nil {
			j.metrics.RecordTaskDropped(merchantID)
		}
		return false
	}
}

func (j *SettlementJob) run(ctx context.Context) {
	defer j.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-j.stop:
			return
		case task := <-j.tasks:
			j.settle(ctx, task)
		}
	}
}

func (j *SettlementJob) settle(ctx context.Context, task settlementTask) {
	timer := time.NewTimer(j.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-j.stop:
		return
	case <-timer.C:
	}

	status := j.outcome()
	processedAt := time.Now().UTC()

	if err := j.orders.Resolve(ctx, task.merchantID, task.orderID, status, processedAt); err != nil {
		// The order may have been deleted while the timer ran.
		log.Printf("❌ Settlement for order %s/%s not applied: %v", task.merchantID, task.orderID, err)
		return
	}

	if j.metrics != nil {
		j.metrics.RecordSettlement(task.merchantID, string(status), time.Since(task.enqueuedAt).Seconds())
	}
}

func (j *SettlementJob) drawOutcome() entities.OrderStatus {
	if rand.Float64() < j.paidRatio {
		return entities.OrderStatusPaid
	}
	return entities.OrderStatusFailed
}
