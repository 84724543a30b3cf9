package lexicon

import (
	"context"
	"sync"

	"github.com/heartmarshall/tugalex-backend/internal/dataset"
)

var _ datasetStore = &datasetStoreMock{}

type datasetStoreMock struct {
	ArchaismsFunc   func(ctx context.Context) (*dataset.Archaisms, error)
	OrthographyFunc func(ctx context.Context) (*dataset.Orthography, error)
	RegionalFunc    func(ctx context.Context) (*dataset.Regional, error)
	StatsFunc       func(ctx context.Context) (dataset.Stats, error)

	calls struct {
		Archaisms []struct {
			Ctx context.Context
		}
		Orthography []struct {
			Ctx context.Context
		}
		Regional []struct {
			Ctx context.Context
		}
		Stats []struct {
			Ctx context.Context
		}
	}
	lockArchaisms   sync.RWMutex
	lockOrthography sync.RWMutex
	lockRegional    sync.RWMutex
	lockStats       sync.RWMutex
}

func (mock *datasetStoreMock) Archaisms(ctx context.Context) (*dataset.Archaisms, error) {
	if mock.ArchaismsFunc == nil {
		panic("datasetStoreMock.ArchaismsFunc: method is nil but datasetStore.Archaisms was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockArchaisms.Lock()
	mock.calls.Archaisms = append(mock.calls.Archaisms, callInfo)
	mock.lockArchaisms.Unlock()
	return mock.ArchaismsFunc(ctx)
}

func (mock *datasetStoreMock) ArchaismsCalls() []struct {
	Ctx context.Context
} {
	mock.lockArchaisms.RLock()
	calls := mock.calls.Archaisms
	mock.lockArchaisms.RUnlock()
	return calls
}

func (mock *datasetStoreMock) Orthography(ctx context.Context) (*dataset.Orthography, error) {
	if mock.OrthographyFunc == nil {
		panic("datasetStoreMock.OrthographyFunc: method is nil but datasetStore.Orthography was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockOrthography.Lock()
	mock.calls.Orthography = append(mock.calls.Orthography, callInfo)
	mock.lockOrthography.Unlock()
	return mock.OrthographyFunc(ctx)
}

func (mock *datasetStoreMock) OrthographyCalls() []struct {
	Ctx context.Context
} {
	mock.lockOrthography.RLock()
	calls := mock.calls.Orthography
	mock.lockOrthography.RUnlock()
	return calls
}

func (mock *datasetStoreMock) Regional(ctx context.Context) (*dataset.Regional, error) {
	if mock.RegionalFunc == nil {
		panic("datasetStoreMock.RegionalFunc: method is nil but datasetStore.Regional was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRegional.Lock()
	mock.calls.Regional = append(mock.calls.Regional, callInfo)
	mock.lockRegional.Unlock()
	return mock.RegionalFunc(ctx)
}

func (mock *datasetStoreMock) RegionalCalls() []struct {
	Ctx context.Context
} {
	mock.lockRegional.RLock()
	calls := mock.calls.Regional
	mock.lockRegional.RUnlock()
	return calls
}

func (mock *datasetStoreMock) Stats(ctx context.Context) (dataset.Stats, error) {
	if mock.StatsFunc == nil {
		panic("datasetStoreMock.StatsFunc: method is nil but datasetStore.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *datasetStoreMock) StatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
