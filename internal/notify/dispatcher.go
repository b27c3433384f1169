package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"student-coin/internal/config"
)

const defaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

const defaultQueueSize = 64

// job is one template send. Events expand into one job per recipient so a
// failing send never blocks the others.
type job struct {
	templateID string
	params     map[string]any
}

// Dispatcher pushes transactional emails through the EmailJS REST API from a
// single background worker. Enqueue methods never block: when the queue is
// full the event is dropped with a log line. Send failures are logged, never
// returned.
type Dispatcher struct {
	log      *slog.Logger
	cfg      config.EmailConfig
	endpoint string
	client   *http.Client

	queue chan job
	wg    sync.WaitGroup
}

type Option func(*Dispatcher)

func WithHTTPClient(client *http.Client) Option {
	return func(d *Dispatcher) {
		d.client = client
	}
}

func WithEndpoint(endpoint string) Option {
	return func(d *Dispatcher) {
		d.endpoint = endpoint
	}
}

func WithQueueSize(n int) Option {
	return func(d *Dispatcher) {
		d.queue = make(chan job, n)
	}
}

func NewDispatcher(log *slog.Logger, cfg config.EmailConfig, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		log:      log,
		cfg:      cfg,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		queue:    make(chan job, defaultQueueSize),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// Configured reports whether sends are enabled. Without a service id and
// public key every enqueue is a no-op.
func (d *Dispatcher) Configured() bool {
	return d.cfg.ServiceID != "" && d.cfg.PublicKey != ""
}

// Close stops accepting jobs and waits for the queue to drain.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for j := range d.queue {
		if err := d.send(j); err != nil {
			d.log.Error("Email send failed",
				slog.String("template", j.templateID),
				slog.String("error", err.Error()),
			)
			continue
		}
		d.log.Debug("Email sent", slog.String("template", j.templateID))
	}
}

func (d *Dispatcher) enqueue(templateID string, params map[string]any) {
	if !d.Configured() || templateID == "" {
		d.log.Debug("Email provider not configured, skipping send")
		return
	}

	select {
	case d.queue <- job{templateID: templateID, params: params}:
	default:
		d.log.Warn("Email queue full, dropping send", slog.String("template", templateID))
	}
}

func (d *Dispatcher) send(j job) error {
	const op = "notify.send"

	body, err := json.Marshal(map[string]any{
		"service_id":      d.cfg.ServiceID,
		"template_id":     j.templateID,
		"user_id":         d.cfg.PublicKey,
		"template_params": j.params,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	resp, err := d.client.Post(d.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	return nil
}
