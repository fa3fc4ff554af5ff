// Package mocks provides centralized mock implementations for testing.
//
// Two styles are offered, matching how tests use them:
//
//   - Testify* types embed mock.Mock for expectation-driven tests.
//   - Mock* types use function fields with recorded calls, and
//     InMemoryTaskStore is a working fake for behaviour-level tests.
//
// Usage:
//
//	taskStore := mocks.NewInMemoryTaskStore()
//	publisher := &mocks.MockPublisher{}
//	svc, _ := service.NewTaskService(taskStore, cache, publisher, nil)
package mocks
