package ports

// CancellationRecorder is told why an order ended Canceled. The order status itself does
// not carry the reason.
type CancellationRecorder interface {
	OrderCanceled(reason string)
}
