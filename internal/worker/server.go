package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"goxu-service/internal/consumers"
	"goxu-service/internal/services"
)

type Worker struct {
	Processor *consumers.Processor
}

func NewWorker(processor *consumers.Processor) *Worker {
	return &Worker{Processor: processor}
}

func (w *Worker) HandleNotifyDispatch(ctx context.Context, t *asynq.Task) error {
	var p services.NotifyPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}
	return w.Processor.ProcessNotifyDispatch(p)
}

func (w *Worker) HandleWalletReceipt(ctx context.Context, t *asynq.Task) error {
	var p services.ReceiptPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("json.Unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}
	return w.Processor.ProcessReceipt(p)
}

func StartWorker(redisOpt asynq.RedisClientOpt, processor *consumers.Processor) {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	worker := NewWorker(processor)
	mux := asynq.NewServeMux()
	mux.HandleFunc(services.TypeNotifyDispatch, worker.HandleNotifyDispatch)
	mux.HandleFunc(services.TypeWalletReceipt, worker.HandleWalletReceipt)

	if err := srv.Run(mux); err != nil {
		log.Fatalf("Worker failed to start: %v", err)
	}
}
