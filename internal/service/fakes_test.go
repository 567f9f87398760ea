package service

import (
	"context"
	"sync"

	"github.com/spec-kit/admin-dashboard/internal/domain"
	"github.com/spec-kit/admin-dashboard/internal/events"
)

type fakeDirectory struct {
	listFn   func(ctx context.Context) ([]domain.User, error)
	deleteFn func(ctx context.Context, id int) error
}

func (f *fakeDirectory) List(ctx context.Context) ([]domain.User, error) {
	return f.listFn(ctx)
}

func (f *fakeDirectory) Delete(ctx context.Context, id int) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingDispatcher) Publish(_ context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (r *recordingDispatcher) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func directoryUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Leanne Graham", Email: "Sincere@april.biz"},
		{ID: 2, Name: "Ervin Howell", Email: "Shanna@melissa.tv"},
		{ID: 3, Name: "Clementine Bauch", Email: "Nathan@yesenia.net"},
		{ID: 4, Name: "Patricia Lebsack", Email: "Julianne.OConner@kory.org"},
	}
}
