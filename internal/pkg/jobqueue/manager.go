package jobqueue

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/MHollmann/VendGuard/app/repository"
	"github.com/MHollmann/VendGuard/internal/pkg/compliance"
	metrics "github.com/MHollmann/VendGuard/internal/pkg/metrics/counter"
)

const sweepPageSize = 200

// ManagerConfig carries the tunables for the background manager.
type ManagerConfig struct {
	Workers       int
	SweepInterval time.Duration
	FlushInterval time.Duration
}

// Manager manages the global job queue and background tasks
type Manager struct {
	queue              *Queue
	companies          repository.CompanyRepository
	grace              *compliance.GraceEvaluator
	sweepTicker        *time.Ticker
	counterFlushTicker *time.Ticker
	sweepInterval      time.Duration
	flushInterval      time.Duration
	stopCh             chan struct{}
	wg                 sync.WaitGroup
	mu                 sync.Mutex
	running            bool
}

var (
	globalManager *Manager
	managerOnce   sync.Once
)

// InitializeManager builds the global manager (singleton). Must be called
// once during startup before GetManager.
func InitializeManager(
	service *compliance.Service,
	companies repository.CompanyRepository,
	grace *compliance.GraceEvaluator,
	cfg ManagerConfig,
) *Manager {
	managerOnce.Do(func() {
		sweep := cfg.SweepInterval
		if sweep <= 0 {
			sweep = 6 * time.Hour
		}
		flush := cfg.FlushInterval
		if flush <= 0 {
			flush = 5 * time.Second
		}

		globalManager = &Manager{
			queue:         NewQueue(cfg.Workers, service),
			companies:     companies,
			grace:         grace,
			sweepInterval: sweep,
			flushInterval: flush,
			stopCh:        make(chan struct{}),
		}
	})
	return globalManager
}

// GetManager returns the global job queue manager
func GetManager() *Manager {
	return globalManager
}

// GetQueue returns the managed job queue
func (m *Manager) GetQueue() *Queue {
	return m.queue
}

// Start starts the job queue and background tasks
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}

	// Recreate stop channel for each start cycle so the manager can be restarted safely.
	m.stopCh = make(chan struct{})
	m.running = true
	log.Info("[JobQueue Manager] Starting job queue and background tasks")

	m.queue.Start()

	m.sweepTicker = time.NewTicker(m.sweepInterval)
	m.wg.Add(1)
	go m.sweepWorker()

	m.counterFlushTicker = time.NewTicker(m.flushInterval)
	m.wg.Add(1)
	go m.counterFlushWorker()

	log.Info("[JobQueue Manager] Started successfully")
}

// Stop stops the job queue and background tasks
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}

	log.Info("[JobQueue Manager] Stopping job queue and background tasks...")

	if m.sweepTicker != nil {
		m.sweepTicker.Stop()
	}
	if m.counterFlushTicker != nil {
		m.counterFlushTicker.Stop()
	}

	close(m.stopCh)
	m.stopCh = nil
	m.running = false

	m.wg.Wait()
	m.queue.Stop()

	log.Info("[JobQueue Manager] Stopped successfully")
}

// sweepWorker periodically re-evaluates every vendor past its grace window
func (m *Manager) sweepWorker() {
	defer m.wg.Done()
	log.Infof("[JobQueue Manager] Started compliance sweep worker (interval: %s)", m.sweepInterval)

	for {
		select {
		case <-m.stopCh:
			log.Info("[JobQueue Manager] Sweep worker stopping")
			return
		case <-m.sweepTicker.C:
			if err := m.RunComplianceSweepOnce(); err != nil {
				log.Errorf("[JobQueue Manager] Compliance sweep error: %v", err)
			}
		}
	}
}

// counterFlushWorker periodically flushes pending counters from Redis to DB
func (m *Manager) counterFlushWorker() {
	defer m.wg.Done()
	for {
		select {
		case <-m.stopCh:
			log.Info("[JobQueue Manager] Counter flush worker stopping")
			return
		case <-m.counterFlushTicker.C:
			if err := metrics.FlushAll(); err != nil {
				log.Errorf("[JobQueue Manager] Counter flush error: %v", err)
			}
		}
	}
}

// RunComplianceSweepOnce pages through all vendors and enqueues a check for
// every account that is past its grace window and not brand new. Exposed
// for a manual admin trigger.
func (m *Manager) RunComplianceSweepOnce() error {
	now := time.Now()
	enqueued := 0

	for offset := 0; ; offset += sweepPageSize {
		companies, err := m.companies.List(offset, sweepPageSize)
		if err != nil {
			return err
		}
		if len(companies) == 0 {
			break
		}

		for _, company := range companies {
			if company.IsNew() {
				continue
			}
			if m.grace.InGracePeriod(company.ID, now) {
				continue
			}

			payload := ComplianceCheckJobPayload{CompanyID: company.ID, Reason: "sweep"}
			if _, err := m.queue.EnqueueJob(JobTypeComplianceCheck, payload.ToMap()); err != nil {
				log.Errorf("[JobQueue Manager] Failed to enqueue sweep check for company %d: %v", company.ID, err)
				continue
			}
			enqueued++
		}

		if len(companies) < sweepPageSize {
			break
		}
	}

	log.Infof("[JobQueue Manager] Compliance sweep enqueued %d checks", enqueued)
	return nil
}

// IsRunning returns whether the manager is currently running
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}
