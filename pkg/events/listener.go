package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// NotificationHandler receives every NOTIFY payload delivered on a
// subscribed channel. Called from the listener's receive loop; handlers
// must not block.
type NotificationHandler func(channel string, payload []byte)

// connCmd is a LISTEN or UNLISTEN statement queued for the receive loop.
// Only the loop may touch the pgx connection, so subscription changes are
// funneled through it instead of executed directly.
type connCmd struct {
	sql  string
	done chan error
}

// NotifyListener is the consumption side of the publisher's
// persist-and-notify contract. It holds one dedicated pgx connection in
// LISTEN mode and dispatches notifications to a handler; observers replay
// anything missed out of queue_events through CatchupReader, keyed by the
// db_event_id cursor carried in each payload.
type NotifyListener struct {
	connString string
	handler    NotificationHandler

	mu       sync.Mutex
	conn     *pgx.Conn
	channels map[string]bool

	cmds    chan connCmd
	running atomic.Bool

	stopLoop context.CancelFunc
	loopDone chan struct{}
}

// NewNotifyListener creates a listener; Start opens the connection.
func NewNotifyListener(connString string, handler NotificationHandler) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		handler:    handler,
		channels:   make(map[string]bool),
		cmds:       make(chan connCmd, 16),
	}
}

// Start opens the dedicated LISTEN connection and spawns the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	l.mu.Lock()
	l.conn = conn
	l.mu.Unlock()
	l.running.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.stopLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("NotifyListener started")
	return nil
}

// Subscribe issues LISTEN for the channel. Idempotent per channel.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	if l.isSubscribed(channel) {
		return nil
	}
	if !l.running.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	sanitized := pgx.Identifier{channel}.Sanitize()
	if err := l.runOnLoop(ctx, "LISTEN "+sanitized); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", sanitized, err)
	}

	l.mu.Lock()
	l.channels[channel] = true
	l.mu.Unlock()
	slog.Debug("Subscribed to NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe issues UNLISTEN for the channel. A no-op when not subscribed
// or when the listener never started.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	if !l.isSubscribed(channel) || !l.running.Load() {
		return nil
	}

	sanitized := pgx.Identifier{channel}.Sanitize()
	if err := l.runOnLoop(ctx, "UNLISTEN "+sanitized); err != nil {
		return fmt.Errorf("UNLISTEN %s failed: %w", sanitized, err)
	}

	l.mu.Lock()
	delete(l.channels, channel)
	l.mu.Unlock()
	return nil
}

func (l *NotifyListener) isSubscribed(channel string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.channels[channel]
}

// runOnLoop hands one statement to the receive loop and waits for the
// result. Routing through the loop avoids the "conn busy" race between
// WaitForNotification and Exec on a shared pgx connection.
func (l *NotifyListener) runOnLoop(ctx context.Context, sql string) error {
	cmd := connCmd{sql: sql, done: make(chan error, 1)}
	select {
	case l.cmds <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop alternates between draining queued LISTEN/UNLISTEN commands
// and waiting for notifications. The wait uses a short timeout so new
// commands never sit longer than one tick.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for ctx.Err() == nil {
		l.drainCmds(ctx)

		conn := l.currentConn()
		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.handler(notification.Channel, []byte(notification.Payload))
	}
}

func (l *NotifyListener) currentConn() *pgx.Conn {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn
}

func (l *NotifyListener) drainCmds(ctx context.Context) {
	for {
		select {
		case cmd := <-l.cmds:
			conn := l.currentConn()
			if conn == nil {
				cmd.done <- fmt.Errorf("LISTEN connection not established")
				continue
			}
			_, err := conn.Exec(ctx, cmd.sql)
			cmd.done <- err
		default:
			return
		}
	}
}

// reconnect re-opens the connection with capped exponential backoff and
// replays LISTEN for every tracked channel.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	delay := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", delay)
			delay = min(delay*2, 30*time.Second)
			continue
		}
		l.conn = conn

		for ch := range l.channels {
			sanitized := pgx.Identifier{ch}.Sanitize()
			if _, err := conn.Exec(ctx, "LISTEN "+sanitized); err != nil {
				slog.Error("Re-LISTEN failed", "channel", ch, "error", err)
			}
		}

		slog.Info("NotifyListener reconnected")
		return
	}
}

// Stop halts the receive loop, waits for it, then closes the connection.
// Ordering matters: closing the connection while WaitForNotification is
// blocked on it corrupts the pgx state.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)

	if l.stopLoop != nil {
		l.stopLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
