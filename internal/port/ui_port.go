package port

// Notifier surfaces short user-visible messages.
type Notifier interface {
	Success(msg string)
	Failure(msg string)
}

type Viewport interface {
	ScrollToTop()
}
