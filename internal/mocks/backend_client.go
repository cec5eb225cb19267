package mocks

import (
	"context"
	"net/url"

	"food-console/internal/backend"

	"github.com/stretchr/testify/mock"
)

// BackendClient is a hand-maintained testify mock for service.BackendClient.
type BackendClient struct {
	mock.Mock
}

func NewBackendClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *BackendClient {
	m := &BackendClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *BackendClient) AbsoluteURL(path string) string {
	ret := m.Called(path)
	return ret.String(0)
}

func (m *BackendClient) RelativePath(href string) string {
	ret := m.Called(href)
	return ret.String(0)
}

func (m *BackendClient) Get(ctx context.Context, path string, query url.Values) (*backend.Response, error) {
	ret := m.Called(ctx, path, query)
	resp, _ := ret.Get(0).(*backend.Response)
	return resp, ret.Error(1)
}

func (m *BackendClient) Post(ctx context.Context, path string, body interface{}) (*backend.Response, error) {
	ret := m.Called(ctx, path, body)
	resp, _ := ret.Get(0).(*backend.Response)
	return resp, ret.Error(1)
}

func (m *BackendClient) Put(ctx context.Context, path string, body interface{}, query url.Values) (*backend.Response, error) {
	ret := m.Called(ctx, path, body, query)
	resp, _ := ret.Get(0).(*backend.Response)
	return resp, ret.Error(1)
}

func (m *BackendClient) Patch(ctx context.Context, path string, body interface{}) (*backend.Response, error) {
	ret := m.Called(ctx, path, body)
	resp, _ := ret.Get(0).(*backend.Response)
	return resp, ret.Error(1)
}

func (m *BackendClient) Delete(ctx context.Context, path string) (*backend.Response, error) {
	ret := m.Called(ctx, path)
	resp, _ := ret.Get(0).(*backend.Response)
	return resp, ret.Error(1)
}
