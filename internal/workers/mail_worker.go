package workers

import (
	"context"
	"fmt"
	"sync"

	"portfolio_backend/internal/email"
	"portfolio_backend/internal/logger"
)

const mailWorkerName = "mail_dispatcher"

// MailJob - одно письмо в очереди. Kind попадает в лог как операция.
type MailJob struct {
	Kind  string
	Email *email.Email
}

// MailDispatcher отправляет письма в отдельной горутине.
// Очередь ограничена: при переполнении письмо отбрасывается, Enqueue не блокируется.
type MailDispatcher struct {
	provider email.Provider
	queue    chan MailJob

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewMailDispatcher(provider email.Provider, queueSize int) *MailDispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &MailDispatcher{
		provider: provider,
		queue:    make(chan MailJob, queueSize),
	}
}

// Start запускает обработку очереди до Stop или отмены ctx
func (d *MailDispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go d.run(ctx)
}

func (d *MailDispatcher) run(ctx context.Context) {
	defer d.wg.Done()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Mail dispatcher stopped", "pending", len(d.queue))
			return
		case job, ok := <-d.queue:
			if !ok {
				logger.Info("Mail dispatcher drained")
				return
			}
			d.deliver(job)
		}
	}
}

func (d *MailDispatcher) deliver(job MailJob) {
	defer func() {
		if r := recover(); r != nil {
			logger.WorkerLog(mailWorkerName, job.Kind, fmt.Errorf("panic: %v", r))
		}
	}()

	err := d.provider.Send(job.Email)
	logger.WorkerLog(mailWorkerName, job.Kind, err, "to", job.Email.To, "subject", job.Email.Subject)
}

// Enqueue ставит письмо в очередь. false - очередь заполнена или диспетчер остановлен.
func (d *MailDispatcher) Enqueue(job MailJob) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		logger.Warn("Mail job rejected, dispatcher stopped", "kind", job.Kind)
		return false
	}

	select {
	case d.queue <- job:
		return true
	default:
		logger.Warn("Mail queue is full, job dropped", "kind", job.Kind, "capacity", cap(d.queue))
		return false
	}
}

// Stop закрывает очередь и ждет, пока уже принятые письма будут отправлены
func (d *MailDispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}
