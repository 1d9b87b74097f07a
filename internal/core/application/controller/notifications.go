package controller

import "time"

// ToastKind classifies a toast notification.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// Toast is the transient notification shown after a workflow completes.
// Only one toast exists at a time: showing a new one replaces the displayed
// message and restarts the auto-dismiss timer. There is no queue.
type Toast struct {
	Message string
	Kind    ToastKind
	Visible bool
}

// showToast replaces the current toast and restarts its deadline.
// Callers must hold the controller lock.
func (c *Controller) showToast(message string, kind ToastKind, now time.Time) {
	c.toast = Toast{Message: message, Kind: kind, Visible: true}
	c.toastDeadline = now.Add(c.cfg.ToastDuration)
}

// showOverlay raises the success overlay pulse and arms its deadline.
// Callers must hold the controller lock.
func (c *Controller) showOverlay(now time.Time) {
	c.overlayVisible = true
	c.overlayDeadline = now.Add(c.cfg.OverlayDuration)
}

// DismissToast hides the toast immediately, ahead of its deadline.
func (c *Controller) DismissToast() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.toast = Toast{}
}

// ExpireNotifications hides the toast and the success overlay once their
// deadlines have passed. It is driven by the notification sweeper job but
// may be called directly with any reference time.
//
// When the overlay hides, the configured OnOverlayHidden callback (if any)
// is invoked outside the controller lock so caller-held state can reset.
func (c *Controller) ExpireNotifications(now time.Time) {
	var overlayHidden bool

	c.mu.Lock()
	if c.toast.Visible && !now.Before(c.toastDeadline) {
		c.toast = Toast{}
	}
	if c.overlayVisible && !now.Before(c.overlayDeadline) {
		c.overlayVisible = false
		overlayHidden = true
	}
	c.mu.Unlock()

	if overlayHidden && c.cfg.OnOverlayHidden != nil {
		c.cfg.OnOverlayHidden()
	}
}

// CurrentToast returns the toast state.
func (c *Controller) CurrentToast() Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.toast
}

// OverlayVisible reports whether the success overlay pulse is showing.
func (c *Controller) OverlayVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.overlayVisible
}
