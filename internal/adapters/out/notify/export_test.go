package notify

import "io"

// AttachConnection stands in for the connection DialRabbitMQNotifier opens.
func AttachConnection(n *RabbitMQNotifier, conn io.Closer) {
	n.conn = conn
}
