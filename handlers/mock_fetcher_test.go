package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	m "github.com/ChrisTheAbysswalker/animals-web/models"
)

// MockFetcher - mock AnimalFetcher implementation
type MockFetcher struct {
	mock.Mock
}

func (f *MockFetcher) FetchAnimals(ctx context.Context, animalName string) []m.AnimalRecord {
	args := f.Called(ctx, animalName)
	return args.Get(0).([]m.AnimalRecord)
}

func (f *MockFetcher) HasAPIKey() bool {
	args := f.Called()
	return args.Bool(0)
}
