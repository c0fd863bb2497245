// Package mocks provides gomock implementations of the client's collaborator
// interfaces.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/client/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	fetcher := mocks.NewMockProfileFetcher(ctrl)
//	fetcher.EXPECT().GetProfile(gomock.Any()).Return(&models.User{ID: 1}, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=profile_fetcher_mock.go github.com/dmitrijs2005/taskease/internal/client/session ProfileFetcher
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=store_mock.go github.com/dmitrijs2005/taskease/internal/client/credstore Store

// Service collaborators: AuthAPI (Login, Register), ProfileAPI (UpdateProfile)
// and TaskAPI (ListTasks, TaskSummary, GetTask, CreateTask, UpdateTask, DeleteTask).
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auth_api_mock.go github.com/dmitrijs2005/taskease/internal/client/services AuthAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=profile_api_mock.go github.com/dmitrijs2005/taskease/internal/client/services ProfileAPI
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=task_api_mock.go github.com/dmitrijs2005/taskease/internal/client/services TaskAPI
