package apiclient

import (
	"context"
	"time"
)

const defaultWatchInterval = 30 * time.Second

// DashboardSnapshot is one poll of the owner dashboard data.
type DashboardSnapshot struct {
	Blogs    BlogStats
	Projects ProjectStats
	Messages ContactStats
	Unread   []ContactMessage
	Taken    time.Time
}

// DashboardUpdate carries a snapshot or the error that prevented one.
type DashboardUpdate struct {
	Snapshot *DashboardSnapshot
	Err      error
}

// DashboardWatcher polls the stats and unread-message endpoints on a fixed
// interval.
type DashboardWatcher struct {
	client   *Client
	interval time.Duration
}

// NewDashboardWatcher creates a watcher over this client. A non-positive
// interval falls back to 30 seconds.
func (c *Client) NewDashboardWatcher(interval time.Duration) *DashboardWatcher {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	return &DashboardWatcher{client: c, interval: interval}
}

func (w *DashboardWatcher) poll(ctx context.Context) (*DashboardSnapshot, error) {
	blogs, err := w.client.BlogStats(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := w.client.ProjectStats(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := w.client.ContactStats(ctx)
	if err != nil {
		return nil, err
	}
	unread := false
	list, err := w.client.ListMessages(ctx, ListParams{Limit: 5, IsRead: &unread})
	if err != nil {
		return nil, err
	}
	return &DashboardSnapshot{
		Blogs:    *blogs,
		Projects: *projects,
		Messages: *messages,
		Unread:   list.Data,
		Taken:    time.Now(),
	}, nil
}

// Watch polls immediately and then on every interval tick until ctx is
// cancelled. The returned channel is closed on cancellation.
func (w *DashboardWatcher) Watch(ctx context.Context) <-chan DashboardUpdate {
	updates := make(chan DashboardUpdate, 1)
	go func() {
		defer close(updates)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		send := func() {
			snapshot, err := w.poll(ctx)
			select {
			case updates <- DashboardUpdate{Snapshot: snapshot, Err: err}:
			case <-ctx.Done():
			}
		}

		send()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				send()
			}
		}
	}()
	return updates
}
