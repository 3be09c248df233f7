package usecase

import (
	"context"
	"sync"
)

// runGuard — защита от повторного входа: по одному актуальному прогону на сессию.
// Новый прогон отменяет контекст предыдущего.
type runGuard struct {
	mu       sync.Mutex
	sessions map[string]*sessionRun
	seq      uint64
}

type sessionRun struct {
	token  uint64
	cancel context.CancelFunc
}

func newRunGuard() *runGuard {
	return &runGuard{sessions: make(map[string]*sessionRun)}
}

// begin — выдать токен прогона; ctx прогона отменяется, когда сессию занимает более новый прогон.
// end снимает флаг обработки только если токен ещё актуален; повторный вызов end безопасен.
func (g *runGuard) begin(ctx context.Context, sessionID string) (runCtx context.Context, token uint64, end func()) {
	runCtx, cancel := context.WithCancel(ctx)

	g.mu.Lock()
	g.seq++
	token = g.seq
	if prev, ok := g.sessions[sessionID]; ok {
		prev.cancel()
	}
	g.sessions[sessionID] = &sessionRun{token: token, cancel: cancel}
	g.mu.Unlock()

	var once sync.Once
	end = func() {
		once.Do(func() {
			g.mu.Lock()
			if cur, ok := g.sessions[sessionID]; ok && cur.token == token {
				delete(g.sessions, sessionID)
			}
			g.mu.Unlock()
			cancel()
		})
	}
	return runCtx, token, end
}

// current — токен всё ещё принадлежит последнему прогону сессии.
func (g *runGuard) current(sessionID string, token uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	cur, ok := g.sessions[sessionID]
	return ok && cur.token == token
}

// processing — у сессии есть незавершённый прогон.
func (g *runGuard) processing(sessionID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.sessions[sessionID]
	return ok
}
