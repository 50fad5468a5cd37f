package interfaces

// ProducerHandler is the outbound event port. The mail/notification side
// consumes these events in a separate service.
type ProducerHandler interface {
	PublishMessage(key, value []byte) error
}
