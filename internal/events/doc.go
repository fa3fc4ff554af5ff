// Package events publishes task status-change notifications.
//
// Publisher is the outbound contract used by the task service. RabbitMQPublisher
// delivers events to a durable fanout exchange; InMemoryPublisher dispatches
// them to registered in-process handlers for local runs and tests.
package events
