// Package mocks provides shared test doubles for the service and storage
// interfaces.
//
// Two styles live side by side. MockJWTService and MockPasswordVerifier use
// function fields with fixed defaults, which suits handlers that only need a
// canned answer. The store and service mocks embed testify's mock.Mock so
// tests can assert on the exact calls made:
//
//	posts := new(mocks.MockPostStore)
//	posts.On("GetByID", mock.Anything, id).Return(nil, store.ErrPostNotFound)
//	...
//	posts.AssertExpectations(t)
package mocks
